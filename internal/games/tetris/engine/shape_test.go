package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShapeMarkers(t *testing.T) {
	s := NewShape(3, 2, " X ", "XXX")

	assert.Equal(t, 3, s.W)
	assert.Equal(t, 2, s.H)
	assert.False(t, s.Filled(0, 0))
	assert.True(t, s.Filled(0, 1))
	assert.True(t, s.Filled(1, 2))
	assert.False(t, s.Filled(2, 0), "row outside bounding box")
	assert.Equal(t, 4, s.Area())
	assert.Equal(t, Cell('X'), s.Marker())
	assert.Equal(t, " X \nXXX", s.String())
}

func TestRotateClockwise(t *testing.T) {
	tests := []struct {
		name     string
		in       Shape
		expected string
		w, h     int
	}{
		{"tee points right", NewShape(3, 2, " X ", "XXX"), "X \nXX\nX ", 2, 3},
		{"bar stands up", NewShape(4, 1, "@@@@"), "@\n@\n@\n@", 1, 4},
		{"hook", NewShape(2, 3, "OO", "O ", "O "), "OOO\n  O", 3, 2},
		{"square unchanged", NewShape(2, 2, "##", "##"), "##\n##", 2, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Rotate(tc.in)
			assert.Equal(t, tc.w, r.W)
			assert.Equal(t, tc.h, r.H)
			assert.Equal(t, tc.expected, r.String())
		})
	}
}

func TestRotateDoesNotMutateInput(t *testing.T) {
	in := NewShape(3, 2, "ZZ ", " ZZ")
	before := in

	_ = Rotate(in)

	assert.Equal(t, before, in)
}

func TestRotateFourTimesRestoresCatalog(t *testing.T) {
	for i, s := range Shapes() {
		r := s
		for turn := 1; turn <= 4; turn++ {
			prev := r
			r = Rotate(r)
			require.Equal(t, prev.W, r.H, "shape %d turn %d: width/height swap", i, turn)
			require.Equal(t, prev.H, r.W, "shape %d turn %d: width/height swap", i, turn)
			require.Equal(t, s.Area(), r.Area(), "shape %d turn %d: area", i, turn)
		}
		assert.Equal(t, s, r, "shape %d after four turns", i)
	}
}

func TestRotateTwiceRestoresDimensions(t *testing.T) {
	s := NewShape(4, 1, "@@@@")
	r := Rotate(Rotate(s))

	assert.Equal(t, s.W, r.W)
	assert.Equal(t, s.H, r.H)
}
