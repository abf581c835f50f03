// Package scene provides built-in demo scene bootstraps: fully-constructed
// worlds and matching camera configurations, for callers that don't want
// to author a TOML scene file via pkg/loaders.
package scene

import (
	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/geometry"
	"github.com/Jabolol/raytracer/pkg/material"
	"github.com/Jabolol/raytracer/pkg/renderer"
)

// Bootstrap pairs a constructed world with the camera configuration it was
// designed to be viewed from.
type Bootstrap struct {
	World  geometry.Hittable
	Camera renderer.CameraConfig
}

// NewDefaultScene is a large checkered ground sphere under three spheres
// (matte, metal, and glass), viewed from a slightly elevated three-quarter
// angle.
func NewDefaultScene() Bootstrap {
	groundMat := material.NewLambertianTexture(
		material.NewChecker(0.32, material.NewSolidColor(core.NewVec3(0.2, 0.3, 0.1)), material.NewSolidColor(core.NewVec3(0.9, 0.9, 0.9))),
	)
	matteMat := material.NewLambertian(core.NewVec3(0.7, 0.2, 0.2))
	metalMat := material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.05)
	glassMat := material.NewDielectric(1.5)

	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundMat),
		geometry.NewSphere(core.NewVec3(-2.2, 1, 0), 1, matteMat),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glassMat),
		geometry.NewSphere(core.NewVec3(2.2, 1, 0), 1, metalMat),
	}

	cam := renderer.DefaultCameraConfig()
	cam.AspectRatio = 16.0 / 9.0
	cam.ImageWidth = 400
	cam.SamplesPerPixel = 50
	cam.MaxDepth = 20
	cam.Background = core.NewVec3(0.7, 0.8, 1.0)
	cam.VFov = 20
	cam.LookFrom = core.NewVec3(13, 2, 3)
	cam.LookAt = core.NewVec3(0, 0, 0)
	cam.VUp = core.NewVec3(0, 1, 0)
	cam.DefocusAngle = 0.6
	cam.FocusDistance = 10

	return Bootstrap{World: geometry.NewBVHFromScene(objects), Camera: cam}
}

// NewSingleSphereScene is the minimal end-to-end scenario: a unit sphere
// at the origin, Lambertian white, lit only by a uniform background.
func NewSingleSphereScene() Bootstrap {
	white := material.NewLambertian(core.NewVec3(1, 1, 1))
	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, white),
	}

	cam := renderer.DefaultCameraConfig()
	cam.AspectRatio = 1
	cam.ImageWidth = 64
	cam.SamplesPerPixel = 16
	cam.MaxDepth = 1
	cam.Background = core.NewVec3(1, 1, 1)
	cam.VFov = 40
	cam.LookFrom = core.NewVec3(0, 0, 3)
	cam.LookAt = core.NewVec3(0, 0, 0)
	cam.VUp = core.NewVec3(0, 1, 0)

	return Bootstrap{World: geometry.NewBVHFromScene(objects), Camera: cam}
}

// NewCornellScene is the classic box: red/green side walls, white
// floor/ceiling/back wall, a ceiling light, a metal box, and a glass
// sphere, viewed from directly in front.
func NewCornellScene() Bootstrap {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	metal := material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.0)
	glass := material.NewDielectric(1.5)

	objects := []geometry.Hittable{
		geometry.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red),
		geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),
		geometry.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white),
		geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white),
		geometry.NewBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 165, 460), metal),
		geometry.NewSphere(core.NewVec3(190, 90, 190), 90, glass),
	}

	cam := renderer.DefaultCameraConfig()
	cam.AspectRatio = 1
	cam.ImageWidth = 64
	cam.SamplesPerPixel = 32
	cam.MaxDepth = 10
	cam.Background = core.Color{}
	cam.VFov = 40
	cam.LookFrom = core.NewVec3(278, 278, -800)
	cam.LookAt = core.NewVec3(278, 278, 0)
	cam.VUp = core.NewVec3(0, 1, 0)

	return Bootstrap{World: geometry.NewBVHFromScene(objects), Camera: cam}
}
