package roster

// Sum adds grades with a divide and conquer split at the midpoint, so
// recursion depth grows with log2 of the grade count instead of linearly.
func Sum(grades []float64) float64 {
	if len(grades) == 0 {
		return 0
	}
	if len(grades) == 1 {
		return grades[0]
	}
	mid := len(grades) / 2
	return Sum(grades[:mid]) + Sum(grades[mid:])
}

// Average is 0 for an empty grade list.
func Average(grades []float64) float64 {
	if len(grades) == 0 {
		return 0
	}
	return Sum(grades) / float64(len(grades))
}
