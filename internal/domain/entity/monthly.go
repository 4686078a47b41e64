package entity

import (
	"strings"

	"github.com/diegoclair/chore-board/internal/domain"
)

// MonthlyGroups is the persisted split of all persons into two groups.
type MonthlyGroups struct {
	GroupA []string `json:"groupA"`
	GroupB []string `json:"groupB"`
}

// Valid reports whether both groups have members.
func (g *MonthlyGroups) Valid() bool {
	return g != nil && len(g.GroupA) > 0 && len(g.GroupB) > 0
}

// MonthlyGroup is one group resolved to its current monthly category.
type MonthlyGroup struct {
	Label      string   `json:"label"`
	Members    []string `json:"members"`
	AssigneeID string   `json:"assigneeId"`
	Category   string   `json:"category"`
}

// MonthlyPlan says which group does which monthly category.
type MonthlyPlan struct {
	Assignment string       `json:"assignment"`
	GroupA     MonthlyGroup `json:"groupA"`
	GroupB     MonthlyGroup `json:"groupB"`
}

// NewMonthlyPlan resolves groups against an assignment flag.
func NewMonthlyPlan(groups MonthlyGroups, assignment string) MonthlyPlan {
	if assignment != domain.SurfacesOnGroupA {
		assignment = domain.SurfacesOnGroupB
	}

	catA, catB := domain.CategoryKitchen, domain.CategorySurfaces
	if assignment == domain.SurfacesOnGroupA {
		catA, catB = domain.CategorySurfaces, domain.CategoryKitchen
	}

	return MonthlyPlan{
		Assignment: assignment,
		GroupA: MonthlyGroup{
			Label:      "groupA",
			Members:    groups.GroupA,
			AssigneeID: GroupAssigneeID(groups.GroupA, domain.EmptyGroupAKey),
			Category:   catA,
		},
		GroupB: MonthlyGroup{
			Label:      "groupB",
			Members:    groups.GroupB,
			AssigneeID: GroupAssigneeID(groups.GroupB, domain.EmptyGroupBKey),
			Category:   catB,
		},
	}
}

// Kitchen returns the group on kitchen duty.
func (p MonthlyPlan) Kitchen() MonthlyGroup {
	if p.GroupA.Category == domain.CategoryKitchen {
		return p.GroupA
	}
	return p.GroupB
}

// Surfaces returns the group cleaning surfaces.
func (p MonthlyPlan) Surfaces() MonthlyGroup {
	if p.GroupA.Category == domain.CategorySurfaces {
		return p.GroupA
	}
	return p.GroupB
}

// GroupAssigneeID joins members with "+", falling back to fallback when empty.
func GroupAssigneeID(members []string, fallback string) string {
	if len(members) == 0 {
		return fallback
	}
	return strings.Join(members, domain.GroupMemberSeparator)
}
