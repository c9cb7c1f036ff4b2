package roster

// MaxNameLen bounds student names in runes. Longer names are truncated
// silently by the mutating operations.
const MaxNameLen = 50

type Student struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Grades  []float64 `json:"grades"`
	Average float64   `json:"average"`
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= MaxNameLen {
		return name
	}
	return string(runes[:MaxNameLen])
}
