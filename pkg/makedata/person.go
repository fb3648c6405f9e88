package makedata

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Status is a relationship status label.
type Status string

const (
	StatusRelationship Status = "relationship"
	StatusComplicated  Status = "complicated"
	StatusSingle       Status = "single"
)

// MaxAge is the inclusive upper bound for generated ages.
const MaxAge = 40

var statuses = []Status{StatusRelationship, StatusComplicated, StatusSingle}

// Statuses returns every valid status in declaration order.
func Statuses() []Status {
	return slices.Clone(statuses)
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return slices.Contains(statuses, s)
}

// Person is a single synthetic record. SubRows is nil for leaves.
type Person struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Age       int       `json:"age"`
	Status    Status    `json:"status"`
	Date      time.Time `json:"date"`
	SubRows   []Person  `json:"sub_rows,omitempty"`
}

// FullName joins first and last name with a single space.
func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// HasSubRows reports whether p carries a child level.
func (p Person) HasSubRows() bool {
	return p.SubRows != nil
}

// Count returns the total number of records across all levels.
func Count(people []Person) int {
	n := len(people)
	for _, p := range people {
		n += Count(p.SubRows)
	}
	return n
}

// Depth returns the number of populated levels in the forest.
// An empty forest has depth 0.
func Depth(people []Person) int {
	if len(people) == 0 {
		return 0
	}
	deepest := 0
	for _, p := range people {
		if d := Depth(p.SubRows); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Walk visits every record in depth-first pre-order, passing the level each
// record sits on (0 for top-level records).
func Walk(people []Person, fn func(p Person, depth int)) {
	walk(people, 0, fn)
}

func walk(level []Person, depth int, fn func(Person, int)) {
	for _, p := range level {
		fn(p, depth)
		walk(p.SubRows, depth+1, fn)
	}
}

// Flatten returns every record in depth-first pre-order: each parent is
// followed immediately by its descendants. The returned records keep their
// SubRows.
func Flatten(people []Person) []Person {
	out := make([]Person, 0, Count(people))
	Walk(people, func(p Person, _ int) {
		out = append(out, p)
	})
	return out
}
