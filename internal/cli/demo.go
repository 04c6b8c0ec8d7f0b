package cli

import (
	"strings"
	"sync"

	"github.com/perchui/perch/pkg/geo"
)

// element is a mutable screen region the demos hand to the controller as
// an externally managed anchor element. Models mutate it on resize; the
// polling subscription picks the move up.
type element struct {
	mu   sync.Mutex
	rect geo.Rect
}

func (e *element) BoundingRect() geo.Rect {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rect
}

func (e *element) moveTo(r geo.Rect) {
	e.mu.Lock()
	e.rect = r
	e.mu.Unlock()
}

// blankCanvas returns a width x height field of spaces for overlay
// compositing.
func blankCanvas(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
