package levels

import "fmt"

// Level is one fixed puzzle stage of the game.
type Level struct {
	// Index is the 1-based position of the level in the catalog.
	Index int

	// Title is the display name, e.g. "Foundations of Logic".
	Title string

	// Category labels the kind of thinking being probed.
	Category string

	// Puzzle is the prompt shown to the player. May contain newlines.
	Puzzle string
}

// IndexOutOfRangeError is returned when a level index falls outside the
// catalog. It signals a programming error, not bad user input.
type IndexOutOfRangeError struct {
	Index int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("level index %d out of range [1, %d]", e.Index, len(catalog))
}

// Get returns the level at the given 1-based index.
func Get(index int) (Level, error) {
	if index < 1 || index > len(catalog) {
		return Level{}, &IndexOutOfRangeError{Index: index}
	}
	return catalog[index-1], nil
}

// All returns a copy of every level in order.
func All() []Level {
	out := make([]Level, len(catalog))
	copy(out, catalog)
	return out
}

// Count returns the number of levels in the catalog.
func Count() int {
	return len(catalog)
}

// IsLast reports whether index is the final level.
func IsLast(index int) bool {
	return index == len(catalog)
}
