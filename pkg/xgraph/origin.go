package xgraph

import "strings"

// Origin is a bit set selecting where the data origin is pinned.
type Origin uint32

const (
	OriginLeft   Origin = 0x0001
	OriginRight  Origin = 0x0002
	OriginTop    Origin = 0x0004
	OriginBottom Origin = 0x0008
	OriginCenter Origin = 0x0010
)

// Offsets decodes the flags into per-axis origin positions in device space.
// Left wins over right and bottom wins over top; an axis with neither flag
// set stays centered.
func (o Origin) Offsets() (x, y int) {
	if o&OriginLeft != 0 {
		x = -1
	} else if o&OriginRight != 0 {
		x = 1
	}
	if o&OriginBottom != 0 {
		y = -1
	} else if o&OriginTop != 0 {
		y = 1
	}
	return x, y
}

func (o Origin) String() string {
	if o == 0 {
		return "none"
	}
	var parts []string
	for _, f := range []struct {
		flag Origin
		name string
	}{
		{OriginLeft, "left"},
		{OriginRight, "right"},
		{OriginTop, "top"},
		{OriginBottom, "bottom"},
		{OriginCenter, "center"},
	} {
		if o&f.flag != 0 {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}
