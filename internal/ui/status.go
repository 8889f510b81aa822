package ui

import "fmt"

// StatusLine formats the text shown by the overlay.
func StatusLine(generation uint64, population int, paused bool) string {
	s := fmt.Sprintf("gen %d  pop %d", generation, population)
	if paused {
		s += "  [paused]"
	}
	return s
}
