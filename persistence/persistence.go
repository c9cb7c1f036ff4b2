package persistence

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-json-experiment/json/jsontext"

	"rosterdb/roster"
)

// The snapshot is a single JSON document:
//
//	{
//	  "students": [
//	    {"id": 1, "name": "Alice", "grades": [90.50], "average": 90.50}
//	  ]
//	}
//
// Grades and averages carry two decimals, matching the files the program
// has always written.

// Save overwrites filename with a snapshot of the whole roster. The write
// goes to a temporary file first and replaces the target with a rename.
func Save(store *roster.Store, filename string) error {

	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp := filename + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("open file for write: %w", err)
	}

	err = writeSnapshot(f, store)
	if err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode snapshot: %w", err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("close file: %w", err)
	}

	err = os.Rename(tmp, filename)
	if err != nil {
		return fmt.Errorf("replace file: %w", err)
	}

	return nil
}

// Load rebuilds the store from filename by replaying Add and AppendGrade in
// file order. A missing file is not an error: the roster just starts empty.
// Averages are always re-derived, never trusted from the file.
func Load(store *roster.Store, filename string) error {

	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open file for read: %w", err)
	}
	defer f.Close()

	return readSnapshot(f, store)
}

// snapshotWriter keeps the first encoder error so the happy path reads as a
// plain token sequence.
type snapshotWriter struct {
	enc *jsontext.Encoder
	err error
}

func (sw *snapshotWriter) token(t jsontext.Token) {
	if sw.err == nil {
		sw.err = sw.enc.WriteToken(t)
	}
}

func (sw *snapshotWriter) number(v float64) {
	if sw.err == nil {
		sw.err = sw.enc.WriteValue(jsontext.Value(strconv.FormatFloat(v, 'f', 2, 64)))
	}
}

func writeSnapshot(w io.Writer, store *roster.Store) error {

	sw := &snapshotWriter{
		enc: jsontext.NewEncoder(w, jsontext.WithIndent("  ")),
	}

	sw.token(jsontext.ObjectStart)
	sw.token(jsontext.String("students"))
	sw.token(jsontext.ArrayStart)

	for i := 0; i < store.Count(); i++ {
		student := store.Get(i)

		sw.token(jsontext.ObjectStart)
		sw.token(jsontext.String("id"))
		sw.token(jsontext.Int(int64(student.ID)))
		sw.token(jsontext.String("name"))
		sw.token(jsontext.String(student.Name))
		sw.token(jsontext.String("grades"))
		sw.token(jsontext.ArrayStart)
		for _, grade := range student.Grades {
			sw.number(grade)
		}
		sw.token(jsontext.ArrayEnd)
		sw.token(jsontext.String("average"))
		sw.number(student.Average)
		sw.token(jsontext.ObjectEnd)
	}

	sw.token(jsontext.ArrayEnd)
	sw.token(jsontext.ObjectEnd)

	return sw.err
}

// readSnapshot walks the document token by token, best effort: unknown
// fields are skipped, students missing an id or a name are dropped, and a
// malformed tail keeps every record decoded before it.
func readSnapshot(r io.Reader, store *roster.Store) error {

	dec := jsontext.NewDecoder(r)

	tok, err := dec.ReadToken()
	if err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	if tok.Kind() != '{' {
		return fmt.Errorf("decode snapshot: top level must be an object")
	}

	for dec.PeekKind() == '"' {
		key, err := dec.ReadToken()
		if err != nil {
			return fmt.Errorf("decode snapshot: %w", err)
		}
		if key.String() != "students" || dec.PeekKind() != '[' {
			if err := dec.SkipValue(); err != nil {
				return fmt.Errorf("decode snapshot: %w", err)
			}
			continue
		}
		if err := readStudents(dec, store); err != nil {
			return err
		}
	}

	return nil
}

func readStudents(dec *jsontext.Decoder, store *roster.Store) error {

	if _, err := dec.ReadToken(); err != nil { // '['
		return fmt.Errorf("decode students: %w", err)
	}

	for dec.PeekKind() == '{' {
		if err := readStudent(dec, store); err != nil {
			return err
		}
	}

	if _, err := dec.ReadToken(); err != nil { // ']'
		return fmt.Errorf("decode students: %w", err)
	}

	return nil
}

func readStudent(dec *jsontext.Decoder, store *roster.Store) error {

	if _, err := dec.ReadToken(); err != nil { // '{'
		return fmt.Errorf("decode student: %w", err)
	}

	id := 0
	hasID := false
	name := ""
	grades := []float64{}

	for dec.PeekKind() == '"' {
		key, err := dec.ReadToken()
		if err != nil {
			return fmt.Errorf("decode student: %w", err)
		}

		switch key.String() {
		case "id":
			if dec.PeekKind() != '0' {
				if err := dec.SkipValue(); err != nil {
					return fmt.Errorf("decode student: %w", err)
				}
				continue
			}
			tok, err := dec.ReadToken()
			if err != nil {
				return fmt.Errorf("decode student: %w", err)
			}
			id = int(tok.Int())
			hasID = true
		case "name":
			if dec.PeekKind() != '"' {
				if err := dec.SkipValue(); err != nil {
					return fmt.Errorf("decode student: %w", err)
				}
				continue
			}
			tok, err := dec.ReadToken()
			if err != nil {
				return fmt.Errorf("decode student: %w", err)
			}
			name = tok.String()
		case "grades":
			if dec.PeekKind() != '[' {
				if err := dec.SkipValue(); err != nil {
					return fmt.Errorf("decode student: %w", err)
				}
				continue
			}
			grades, err = readGrades(dec)
			if err != nil {
				return err
			}
		default:
			if err := dec.SkipValue(); err != nil {
				return fmt.Errorf("decode student: %w", err)
			}
		}
	}

	if _, err := dec.ReadToken(); err != nil { // '}'
		return fmt.Errorf("decode student: %w", err)
	}

	if !hasID || name == "" {
		return nil
	}
	if !store.Add(id, name) {
		// duplicate id in the file, first record wins
		return nil
	}
	for _, grade := range grades {
		store.AppendGrade(id, grade)
	}

	return nil
}

func readGrades(dec *jsontext.Decoder) ([]float64, error) {

	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, fmt.Errorf("decode grades: %w", err)
	}

	grades := []float64{}
	for dec.PeekKind() != ']' && dec.PeekKind() > 0 {
		if dec.PeekKind() != '0' {
			if err := dec.SkipValue(); err != nil {
				return nil, fmt.Errorf("decode grades: %w", err)
			}
			continue
		}
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, fmt.Errorf("decode grades: %w", err)
		}
		grades = append(grades, tok.Float())
	}

	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, fmt.Errorf("decode grades: %w", err)
	}

	return grades, nil
}
