package xgraph

import (
	"math"

	"xgraph/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a transformed sample ready for upload.
type Vertex = graphics.Vertex

// ClipPolicy selects which components decide whether a sample is visible.
type ClipPolicy int

const (
	// ClipX drops a sample only when its x coordinate leaves [-1, 1].
	// Samples far outside the y span are kept and left to the rasterizer.
	ClipX ClipPolicy = iota
	// ClipBoth drops a sample when either coordinate leaves [-1, 1].
	ClipBoth
)

func (p ClipPolicy) String() string {
	switch p {
	case ClipX:
		return "x"
	case ClipBoth:
		return "both"
	default:
		return "unknown"
	}
}

// Viewport is the origin placement and visible range of both axes.
// Origins are -1, 0 or 1; ranges must be positive.
type Viewport struct {
	OriginX, OriginY int
	RangeX, RangeY   float64
}

// Validate reports ErrInvalidRange for a non-positive or NaN range.
func (v Viewport) Validate() error {
	if !(v.RangeX > 0) || !(v.RangeY > 0) {
		return ErrInvalidRange
	}
	return nil
}

// Normalize maps one raw coordinate into device space. A centered axis shows
// [-rng, rng]; an axis pinned to an edge shows [0, rng] or [-rng, 0].
func Normalize(raw float64, origin int, rng float64) float64 {
	scale := 2.0
	if origin == 0 {
		scale = 1
	}
	return raw*scale/rng + float64(origin)
}

func visible(n float64) bool {
	return math.Abs(n) <= 1
}

// Project maps an x,y sample into device space and reports whether it
// survives clipping under policy. NaN coordinates never survive.
func (v Viewport) Project(x, y float64, policy ClipPolicy) (mgl32.Vec2, bool) {
	nx := Normalize(x, v.OriginX, v.RangeX)
	ny := Normalize(y, v.OriginY, v.RangeY)
	ok := visible(nx)
	if policy == ClipBoth {
		ok = ok && visible(ny)
	} else if math.IsNaN(ny) {
		ok = false
	}
	return mgl32.Vec2{float32(nx), float32(ny)}, ok
}

// Transform appends the visible samples of data, colored c, to dst. Pairs
// are kept or dropped together; a dropped pair simply removes its segments
// from the strip.
func Transform(dst []Vertex, data []float64, c mgl32.Vec4, v Viewport, policy ClipPolicy) ([]Vertex, error) {
	if err := v.Validate(); err != nil {
		return dst, err
	}
	if len(data)%2 != 0 {
		return dst, ErrOddLength
	}
	for i := 0; i < len(data); i += 2 {
		pos, ok := v.Project(data[i], data[i+1], policy)
		if !ok {
			continue
		}
		dst = append(dst, Vertex{Pos: pos, Color: c})
	}
	return dst, nil
}
