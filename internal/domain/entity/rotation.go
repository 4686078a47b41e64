package entity

// CategoryAssignment pairs a weekly category with its person for the week.
// Person is empty when there are fewer persons than categories.
type CategoryAssignment struct {
	Category string `json:"category"`
	Person   string `json:"person"`
}

// Rotation is the weekly assignment for one ISO week.
type Rotation struct {
	WeekKey     string               `json:"weekKey"`
	Offset      int                  `json:"offset"`
	Persons     []string             `json:"persons"` // rotated order
	Assignments []CategoryAssignment `json:"assignments"`
	Joker       string               `json:"joker,omitempty"`
	HasJoker    bool                 `json:"hasJoker"`
}

// PersonFor returns who has category this week.
func (r *Rotation) PersonFor(category string) (string, bool) {
	for _, a := range r.Assignments {
		if a.Category == category {
			return a.Person, a.Person != ""
		}
	}
	return "", false
}

// CategoriesOf lists the categories assigned to person, in category order.
func (r *Rotation) CategoriesOf(person string) []string {
	var categories []string
	for _, a := range r.Assignments {
		if a.Person == person {
			categories = append(categories, a.Category)
		}
	}
	return categories
}
