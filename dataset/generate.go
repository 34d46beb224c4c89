package dataset

import (
	"strconv"

	"github.com/brianvoe/gofakeit/v6"
)

// StudentColumns are the columns of a generated table.
var StudentColumns = []string{"student_ID", "student_name", "grade", "grade_letter"}

// Generate makes n students with ids 1..n, a random name and a grade from 90 to 100.
// The same seed gives the same table.
func Generate(n int, seed int64) *Table {
	f := gofakeit.New(seed)

	t := &Table{Columns: append([]string{}, StudentColumns...)}

	for i := 1; i <= n; i++ {
		g := f.Number(90, 100)

		_, _ = t.Append([]string{
			strconv.Itoa(i),
			f.Name(),
			strconv.Itoa(g),
			GradeLetter(g),
		})
	}

	return t
}

func GradeLetter(grade int) string {
	switch {
	case grade <= 93:
		return "A-"
	case grade <= 96:
		return "A"
	default:
		return "A+"
	}
}
