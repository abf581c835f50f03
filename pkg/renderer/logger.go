package renderer

import (
	"log"
	"os"

	"github.com/Jabolol/raytracer/pkg/core"
)

// stdLogger implements core.Logger by wrapping the standard library's log
// package, matching the teacher's pattern of a thin Logger seam over
// *log.Logger.
type stdLogger struct {
	l *log.Logger
}

// NewDefaultLogger writes one line per call to stderr, with no timestamp
// prefix (render progress lines carry their own context).
func NewDefaultLogger() core.Logger {
	return &stdLogger{l: log.New(os.Stderr, "", 0)}
}

func (sl *stdLogger) Printf(format string, args ...interface{}) {
	sl.l.Printf(format, args...)
}
