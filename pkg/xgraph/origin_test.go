package xgraph

import "testing"

func TestOriginOffsets(t *testing.T) {
	tests := []struct {
		origin Origin
		x, y   int
	}{
		{0, 0, 0},
		{OriginCenter, 0, 0},
		{OriginLeft, -1, 0},
		{OriginRight, 1, 0},
		{OriginTop, 0, 1},
		{OriginBottom, 0, -1},
		{OriginLeft | OriginRight, -1, 0},
		{OriginTop | OriginBottom, 0, -1},
		{OriginLeft | OriginBottom, -1, -1},
		{OriginRight | OriginTop, 1, 1},
		{OriginLeft | OriginRight | OriginTop | OriginBottom, -1, -1},
		{OriginCenter | OriginRight, 1, 0},
		{0b1001, -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.origin.String(), func(t *testing.T) {
			x, y := tt.origin.Offsets()
			if x != tt.x || y != tt.y {
				t.Errorf("Expected (%d, %d), got (%d, %d)", tt.x, tt.y, x, y)
			}
		})
	}
}

func TestOriginString(t *testing.T) {
	if got := (OriginLeft | OriginBottom).String(); got != "left|bottom" {
		t.Errorf("Expected left|bottom, got %q", got)
	}
	if got := Origin(0).String(); got != "none" {
		t.Errorf("Expected none, got %q", got)
	}
}
