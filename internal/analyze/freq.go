// Package analyze turns a fetched timeline into the analytics report:
// frequency counting, top-term ranking, time-series graphs, and the
// assembler that wires them together with the text scorers.
package analyze

// CountValues maps each distinct value to its number of occurrences.
// Zero values mark absent entries (a rule that extracted nothing) and are
// excluded from the count.
func CountValues[T comparable](values []T) map[T]int {
	var absent T
	counts := make(map[T]int)
	for _, v := range values {
		if v == absent {
			continue
		}
		counts[v]++
	}
	return counts
}
