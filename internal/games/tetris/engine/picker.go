package engine

import (
	"math/rand"
	"time"
)

// Picker chooses the next shape to spawn.
type Picker interface {
	Next() Shape
}

// PickerFunc adapts a function to the Picker interface.
type PickerFunc func() Shape

// Next calls f.
func (f PickerFunc) Next() Shape {
	return f()
}

// RandomPicker picks catalog shapes uniformly at random.
type RandomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker creates a picker seeded once with seed.
// A zero seed uses the current time.
func NewRandomPicker(seed int64) *RandomPicker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomPicker{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly chosen catalog shape.
func (p *RandomPicker) Next() Shape {
	return catalog[p.rng.Intn(len(catalog))]
}

// SequencePicker cycles through a fixed list of shapes. Used for
// scripted games and tests.
type SequencePicker struct {
	shapes []Shape
	next   int
}

// NewSequencePicker creates a picker returning shapes in order, wrapping around.
func NewSequencePicker(shapes ...Shape) *SequencePicker {
	return &SequencePicker{shapes: shapes}
}

// Next returns the next shape of the sequence.
func (p *SequencePicker) Next() Shape {
	if len(p.shapes) == 0 {
		return catalog[0]
	}
	s := p.shapes[p.next%len(p.shapes)]
	p.next++
	return s
}
