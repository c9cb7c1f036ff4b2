package persistence

import (
	"os"
	"strings"
	"testing"

	. "github.com/fulldump/biff"

	"rosterdb/roster"
)

func TestRoundTrip(t *testing.T) {
	Environment(func(filename string) {

		// Setup
		original := roster.NewStore()
		original.Add(1, "Alice")
		original.Add(2, "Bob")
		original.AppendGrade(1, 90.5)
		original.AppendGrade(1, 80)
		original.AppendGrade(2, 60.25)

		// Run
		AssertNil(Save(original, filename))
		loaded := roster.NewStore()
		AssertNil(Load(loaded, filename))

		// Check: same (id, name, grades-in-order) triples
		AssertEqual(loaded.Count(), original.Count())
		for i := 0; i < original.Count(); i++ {
			AssertEqual(loaded.Get(i).ID, original.Get(i).ID)
			AssertEqual(loaded.Get(i).Name, original.Get(i).Name)
			AssertEqual(loaded.Get(i).Grades, original.Get(i).Grades)
			AssertEqual(loaded.Get(i).Average, original.Get(i).Average)
		}
	})
}

func TestSaveTwoDecimalPrecision(t *testing.T) {
	Environment(func(filename string) {

		store := roster.NewStore()
		store.Add(1, "Alice")
		store.AppendGrade(1, 90.5)
		store.AppendGrade(1, 80)

		AssertNil(Save(store, filename))

		content, err := os.ReadFile(filename)
		AssertNil(err)
		AssertTrue(strings.Contains(string(content), `90.50`))
		AssertTrue(strings.Contains(string(content), `80.00`))
		AssertTrue(strings.Contains(string(content), `85.25`))
		AssertTrue(strings.Contains(string(content), `"students"`))
	})
}

func TestLoadMissingFile(t *testing.T) {
	store := roster.NewStore()

	err := Load(store, "does-not-exist.json")

	AssertNil(err)
	AssertEqual(store.Count(), 0)
}

func TestLoadLegacyInlineFormat(t *testing.T) {
	Environment(func(filename string) {

		// Setup: the format the original program wrote, grades inline
		legacy := `{
  "students": [
    {
      "id": 7,
      "name": "Alice",
      "grades": [90.50, 80.00],
      "average": 85.25
    },
    {
      "id": 9,
      "name": "Bob",
      "grades": [],
      "average": 0.00
    }
  ]
}
`
		AssertNil(os.WriteFile(filename, []byte(legacy), 0666))

		// Run
		store := roster.NewStore()
		AssertNil(Load(store, filename))

		// Check
		AssertEqual(store.Count(), 2)
		AssertEqual(store.Get(0).ID, 7)
		AssertEqual(store.Get(0).Grades, []float64{90.5, 80})
		AssertEqual(store.Get(0).Average, 85.25)
		AssertEqual(store.Get(1).Name, "Bob")
		AssertEqual(store.Get(1).Average, 0.0)
	})
}

func TestLoadRederivesAverage(t *testing.T) {
	Environment(func(filename string) {

		// Setup: stored average is nonsense on purpose
		snapshot := `{"students":[{"id":1,"name":"Alice","grades":[70.00,90.00],"average":999.00}]}`
		AssertNil(os.WriteFile(filename, []byte(snapshot), 0666))

		store := roster.NewStore()
		AssertNil(Load(store, filename))

		AssertEqual(store.Get(0).Average, 80.0)
	})
}

func TestLoadSkipsIncompleteStudents(t *testing.T) {
	Environment(func(filename string) {

		snapshot := `{"students":[
			{"name":"NoId","grades":[50.00]},
			{"id":2,"grades":[60.00]},
			{"id":3,"name":"Carol","grades":[70.00]}
		]}`
		AssertNil(os.WriteFile(filename, []byte(snapshot), 0666))

		store := roster.NewStore()
		AssertNil(Load(store, filename))

		AssertEqual(store.Count(), 1)
		AssertEqual(store.Get(0).Name, "Carol")
	})
}

func TestLoadDuplicateIdFirstWins(t *testing.T) {
	Environment(func(filename string) {

		snapshot := `{"students":[
			{"id":1,"name":"Alice","grades":[70.00]},
			{"id":1,"name":"Mallory","grades":[10.00]}
		]}`
		AssertNil(os.WriteFile(filename, []byte(snapshot), 0666))

		store := roster.NewStore()
		AssertNil(Load(store, filename))

		AssertEqual(store.Count(), 1)
		AssertEqual(store.Get(0).Name, "Alice")
		AssertEqual(store.Get(0).Grades, []float64{70})
	})
}

func TestLoadMalformedTailKeepsPrefix(t *testing.T) {
	Environment(func(filename string) {

		snapshot := `{"students":[{"id":1,"name":"Alice","grades":[70.00]},{"id":2,"na%%%`
		AssertNil(os.WriteFile(filename, []byte(snapshot), 0666))

		store := roster.NewStore()
		err := Load(store, filename)

		AssertNotNil(err)
		AssertEqual(store.Count(), 1)
		AssertEqual(store.Get(0).Name, "Alice")
	})
}

func TestLoadUnknownFieldsIgnored(t *testing.T) {
	Environment(func(filename string) {

		snapshot := `{"version":3,"students":[{"id":1,"name":"Alice","grades":[70.00],"room":{"building":"A"}}]}`
		AssertNil(os.WriteFile(filename, []byte(snapshot), 0666))

		store := roster.NewStore()
		AssertNil(Load(store, filename))

		AssertEqual(store.Count(), 1)
		AssertEqual(store.Get(0).Grades, []float64{70})
	})
}

func TestSaveThenClearThenLoad(t *testing.T) {
	Environment(func(filename string) {

		store := roster.NewStore()
		store.Add(1, "Alice")
		store.AppendGrade(1, 90)
		AssertNil(Save(store, filename))

		store.Clear()
		AssertEqual(store.Count(), 0)

		AssertNil(Load(store, filename))
		AssertEqual(store.Count(), 1)
		AssertEqual(store.Get(0).Grades, []float64{90})
	})
}
