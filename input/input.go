package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader supplies validated values line by line, re-prompting on bad input.
// The core never reads from it directly, only the menu does.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadLine prints prompt and returns the next trimmed line. ok is false
// once the input is exhausted.
func (r *Reader) ReadLine(prompt string) (line string, ok bool) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.scanner.Text()), true
}

// ReadInt keeps prompting until it gets a valid integer.
func (r *Reader) ReadInt(prompt string) (int, bool) {
	for {
		line, ok := r.ReadLine(prompt)
		if !ok {
			return 0, false
		}
		v, err := strconv.Atoi(line)
		if err == nil {
			return v, true
		}
		fmt.Fprintln(r.out, "Invalid integer, try again.")
	}
}

// ReadFloat keeps prompting until it gets a valid number.
func (r *Reader) ReadFloat(prompt string) (float64, bool) {
	for {
		line, ok := r.ReadLine(prompt)
		if !ok {
			return 0, false
		}
		v, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return v, true
		}
		fmt.Fprintln(r.out, "Invalid number, try again.")
	}
}
