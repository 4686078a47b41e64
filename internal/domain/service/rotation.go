package service

import (
	"time"

	"github.com/diegoclair/chore-board/internal/catalog"
	"github.com/diegoclair/chore-board/internal/domain"
	"github.com/diegoclair/chore-board/internal/domain/entity"
	"github.com/diegoclair/chore-board/pkg/isoweek"
)

// RotationEngine assigns the catalog's weekly categories to its persons.
type RotationEngine struct {
	persons    []string
	categories []string
	baseDate   time.Time
}

// NewRotationEngine reads persons, weekly categories and base date from c.
func NewRotationEngine(c *catalog.Catalog) *RotationEngine {
	return &RotationEngine{
		persons:    c.Persons,
		categories: c.Categories(domain.PeriodWeekly),
		baseDate:   c.BaseDate,
	}
}

// ForDate returns the rotation for the ISO week containing target. Without a
// base date the target week itself is the base, so the rotation is offset 0.
func (e *RotationEngine) ForDate(target time.Time) entity.Rotation {
	base := e.baseDate
	if base.IsZero() {
		base = target
	}
	return ComputeRotation(e.persons, e.categories, base, target)
}

// ComputeRotation is the whole weekly algorithm: shift persons left by the
// number of weeks since base, hand out categories in order, and make the next
// person the joker if there is one.
func ComputeRotation(persons, categories []string, base, target time.Time) entity.Rotation {
	offset := isoweek.WeeksBetween(base, target)
	rotated := Rotate(persons, offset)

	r := entity.Rotation{
		WeekKey:     isoweek.KeyOf(target),
		Offset:      offset,
		Persons:     rotated,
		Assignments: make([]entity.CategoryAssignment, 0, len(categories)),
	}

	for i, category := range categories {
		a := entity.CategoryAssignment{Category: category}
		if i < len(rotated) {
			a.Person = rotated[i]
		}
		r.Assignments = append(r.Assignments, a)
	}

	if len(rotated) > len(categories) {
		r.Joker = rotated[len(categories)]
		r.HasJoker = true
	}

	return r
}

// Rotate returns a copy of items shifted left by amount, modulo its length.
// Negative amounts shift right.
func Rotate(items []string, amount int) []string {
	n := len(items)
	if n == 0 {
		return []string{}
	}

	step := ((amount % n) + n) % n
	out := make([]string, 0, n)
	out = append(out, items[step:]...)
	return append(out, items[:step]...)
}
