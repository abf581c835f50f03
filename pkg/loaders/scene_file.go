package loaders

// CameraFile mirrors the [camera] section of a scene TOML file, one field
// per parameter named in spec.md's external-interfaces table.
type CameraFile struct {
	AspectRatio     float64   `toml:"aspect_ratio"`
	ImageWidth      int       `toml:"image_width"`
	SamplesPerPixel int       `toml:"samples_per_pixel"`
	MaxDepth        int       `toml:"max_depth"`
	BackgroundColor []float64 `toml:"background_color"`
	VFov            float64   `toml:"v_fov"`
	LookFrom        []float64 `toml:"look_from"`
	LookAt          []float64 `toml:"look_at"`
	VUp             []float64 `toml:"v_up"`
	DefocusAngle    float64   `toml:"defocus_angle"`
	FocusDistance   float64   `toml:"focus_distance"`
}

// TextureFile is one [[textures]] entry. Type selects which of the
// optional fields below are consulted; unused fields are simply absent
// from the TOML table.
type TextureFile struct {
	ID          string    `toml:"id"`
	Type        string    `toml:"type"`
	Color       []float64 `toml:"color"`
	Scale       float64   `toml:"scale"`
	Path        string    `toml:"path"`
	ColorEven   []float64 `toml:"color_even"`
	ColorOdd    []float64 `toml:"color_odd"`
	TextureEven string    `toml:"texture_even"`
	TextureOdd  string    `toml:"texture_odd"`
}

// MaterialFile is one [[materials]] entry.
type MaterialFile struct {
	ID              string    `toml:"id"`
	Type            string    `toml:"type"`
	Color           []float64 `toml:"color"`
	Texture         string    `toml:"texture"`
	Fuzz            float64   `toml:"fuzz"`
	RefractionIndex float64   `toml:"refraction_index"`
}

// ShapeFile is one [[shapes]] entry.
type ShapeFile struct {
	ID        string    `toml:"id"`
	Type      string    `toml:"type"`
	Center    []float64 `toml:"center"`
	CenterOne []float64 `toml:"center_one"`
	CenterTwo []float64 `toml:"center_two"`
	Radius    float64   `toml:"radius"`
	Material  string    `toml:"material"`
	Q         []float64 `toml:"q"`
	U         []float64 `toml:"u"`
	V         []float64 `toml:"v"`
	Point     []float64 `toml:"point"`
	Normal    []float64 `toml:"normal"`
	Height    float64   `toml:"height"`
}

// EffectFile is one [[effects]] entry; it replaces its Target shape in
// the scene with the decorator it describes.
type EffectFile struct {
	ID      string    `toml:"id"`
	Type    string    `toml:"type"`
	Target  string    `toml:"target"`
	Offset  []float64 `toml:"offset"`
	Angle   float64   `toml:"angle"`
	Density float64   `toml:"density"`
	Color   []float64 `toml:"color"`
	Texture string    `toml:"texture"`
}

// SceneFile is the top-level decoded shape of one scene TOML document.
type SceneFile struct {
	Camera    CameraFile     `toml:"camera"`
	Textures  []TextureFile  `toml:"textures"`
	Materials []MaterialFile `toml:"materials"`
	Shapes    []ShapeFile    `toml:"shapes"`
	Effects   []EffectFile   `toml:"effects"`
	Imports   []string       `toml:"imports"`
}
