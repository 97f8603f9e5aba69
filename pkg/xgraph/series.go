package xgraph

import (
	"image/color"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Element is a series as supplied by callers: an RGBA color with channels in
// 0..255 and flat x,y sample pairs.
type Element struct {
	Color [4]float64
	Data  []float64
}

// ElementColor converts c to the 0..255 channel form Element expects.
func ElementColor(c color.Color) [4]float64 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return [4]float64{float64(n.R), float64(n.G), float64(n.B), float64(n.A)}
}

// Series is a stored series. Color channels are normalized to 0..1.
type Series struct {
	Color mgl32.Vec4
	Data  []float64
}

func (s Series) clone() Series {
	return Series{Color: s.Color, Data: slices.Clone(s.Data)}
}

// Store is an ordered list of series. Indices are positions, so removing a
// series shifts every later index down by one.
type Store struct {
	series []Series
}

// Add copies e into the store and returns its index.
func (s *Store) Add(e Element) (int, error) {
	if len(e.Data)%2 != 0 {
		return -1, ErrOddLength
	}
	var c mgl32.Vec4
	for i, ch := range e.Color {
		c[i] = float32(ch / 255)
	}
	data := slices.Clone(e.Data)
	if data == nil {
		data = []float64{}
	}
	s.series = append(s.series, Series{Color: c, Data: data})
	return len(s.series) - 1, nil
}

// Remove deletes the series at index. An index outside [0, Len) returns
// ErrIndexOutOfRange and leaves the store unchanged.
func (s *Store) Remove(index int) error {
	if index < 0 || index >= len(s.series) {
		return ErrIndexOutOfRange
	}
	s.series = slices.Delete(s.series, index, index+1)
	return nil
}

// Clear removes every series.
func (s *Store) Clear() {
	clear(s.series)
	s.series = s.series[:0]
}

func (s *Store) Len() int {
	return len(s.series)
}

// At returns a copy of the series at index.
func (s *Store) At(index int) (Series, bool) {
	if index < 0 || index >= len(s.series) {
		return Series{}, false
	}
	return s.series[index].clone(), true
}
