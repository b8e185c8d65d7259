package engine

import "time"

// catalog is the fixed shape table. Index order is stable and used by pickers.
var catalog = [...]Shape{
	NewShape(2, 2, "##", "##"),
	NewShape(3, 2, " X ", "XXX"),
	NewShape(4, 1, "@@@@"),
	NewShape(2, 3, "OO", "O ", "O "),
	NewShape(2, 3, "&&", " &", " &"),
	NewShape(3, 2, "ZZ ", " ZZ"),
}

// Level is one speed tier: reaching Score selects Interval as the base tick.
type Level struct {
	Score    int
	Interval time.Duration
}

// levels is sorted ascending by Score and starts at 0.
var levels = [...]Level{
	{Score: 0, Interval: 1200 * time.Microsecond},
	{Score: 1500, Interval: 900 * time.Microsecond},
	{Score: 8000, Interval: 700 * time.Microsecond},
	{Score: 20000, Interval: 500 * time.Microsecond},
	{Score: 40000, Interval: 400 * time.Microsecond},
	{Score: 75000, Interval: 300 * time.Microsecond},
	{Score: 100000, Interval: 200 * time.Microsecond},
}

// ShapeCount returns the number of shapes in the catalog.
func ShapeCount() int {
	return len(catalog)
}

// ShapeAt returns a copy of the catalog shape at index i.
// Panics if i is out of range.
func ShapeAt(i int) Shape {
	return catalog[i]
}

// Shapes returns a copy of the whole catalog.
func Shapes() []Shape {
	out := make([]Shape, len(catalog))
	copy(out, catalog[:])
	return out
}

// Levels returns a copy of the level table.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels[:])
	return out
}

// LevelFor resolves the level reached at score and its tick interval.
// The level is 1 plus the number of leading thresholds not above score.
func LevelFor(score int) (level int, interval time.Duration) {
	level = 1
	for i, l := range levels {
		if score < l.Score {
			break
		}
		level = i + 1
	}
	return level, levels[level-1].Interval
}
