package entity

import "github.com/diegoclair/chore-board/pkg/isoweek"

// Board is one week of the chore board as data.
type Board struct {
	Week    isoweek.Info `json:"week"`
	Weekly  WeeklyLane   `json:"weekly"`
	Monthly MonthlyLane  `json:"monthly"`
}

// WeeklyLane holds a card per person in rotated order.
type WeeklyLane struct {
	Period    string       `json:"period"`
	Rotation  Rotation     `json:"rotation"`
	Cards     []PersonCard `json:"cards"`
	Completed int          `json:"completed"`
	Total     int          `json:"total"`
}

// PersonCard is one person's weekly work.
type PersonCard struct {
	Person     string          `json:"person"`
	Joker      bool            `json:"joker"`
	Categories []CategoryTasks `json:"categories"`
	AllDone    bool            `json:"allDone"`
}

// CategoryTasks lists the tasks of one category.
type CategoryTasks struct {
	Category string     `json:"category"`
	Tasks    []TaskItem `json:"tasks"`
}

// TaskItem is a task label with its instance key and state.
type TaskItem struct {
	TaskKey
	Text string `json:"text"`
	ID   string `json:"id"`
	Done bool   `json:"done"`
}

// MonthlyLane holds one card per monthly group.
type MonthlyLane struct {
	Period     string      `json:"period"`
	Assignment string      `json:"assignment"`
	Groups     []GroupCard `json:"groups"`
	Completed  int         `json:"completed"`
	Total      int         `json:"total"`
}

// GroupCard is one monthly group's work.
type GroupCard struct {
	MonthlyGroup
	Tasks   []TaskItem `json:"tasks"`
	AllDone bool       `json:"allDone"`
}

// Keys lists the task keys of one weekly person or one monthly group
// assignee id. Unknown owners give no keys.
func (b *Board) Keys(period, owner string) []TaskKey {
	var keys []TaskKey
	switch period {
	case b.Weekly.Period:
		for _, card := range b.Weekly.Cards {
			if card.Person != owner {
				continue
			}
			for _, c := range card.Categories {
				for _, t := range c.Tasks {
					keys = append(keys, t.TaskKey)
				}
			}
		}
	case b.Monthly.Period:
		for _, g := range b.Monthly.Groups {
			if g.AssigneeID != owner {
				continue
			}
			for _, t := range g.Tasks {
				keys = append(keys, t.TaskKey)
			}
		}
	}
	return keys
}
