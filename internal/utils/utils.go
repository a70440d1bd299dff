package utils

import (
	"fmt"
	"strings"
)

// Returns the average of all given numbers n (0 when n is empty)
func Average(n ...int) int {
	if len(n) == 0 {
		return 0
	}

	// Sum all numbers
	var sum int
	for _, num := range n {
		sum += num
	}

	// Divide sum by total numbers
	return sum / len(n)
}

// Print a Colored Block in terminal
func ColoredBlock(block string, red int, green int, blue int) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", red, green, blue, block)
}

// Returns a row of colored blocks, one per (red, green, blue) triple in rgb
func ColoredRow(block string, rgb []byte, gray bool) string {
	var sb strings.Builder
	for i := 0; i+2 < len(rgb); i += 3 {
		r, g, b := int(rgb[i]), int(rgb[i+1]), int(rgb[i+2])
		if gray {
			avg := Average(r, g, b)
			r, g, b = avg, avg, avg
		}
		sb.WriteString(ColoredBlock(block, r, g, b))
	}
	return sb.String()
}
