package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/chore-board/internal/catalog"
	"github.com/diegoclair/chore-board/internal/domain"
	"github.com/diegoclair/chore-board/internal/domain/contract"
	"github.com/diegoclair/chore-board/internal/domain/entity"
	"github.com/diegoclair/chore-board/pkg/isoweek"
)

type boardService struct {
	dm        contract.DataManager
	catalog   *catalog.Catalog
	rotation  *RotationEngine
	allocator contract.AllocatorService
}

func newBoard(dm contract.DataManager, c *catalog.Catalog, rotation *RotationEngine, allocator contract.AllocatorService) *boardService {
	return &boardService{
		dm:        dm,
		catalog:   c,
		rotation:  rotation,
		allocator: allocator,
	}
}

// Week assembles the board for the ISO week containing date, with done flags
// taken from the stored state of that week.
func (s *boardService) Week(ctx context.Context, date time.Time) (*entity.Board, error) {
	info := isoweek.Of(date)

	done, err := s.dm.TaskState().Snapshot(ctx, entity.TaskFilter{Week: info.Key})
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	plan, err := s.allocator.Plan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly plan: %w", err)
	}

	return &entity.Board{
		Week:    info,
		Weekly:  s.weeklyLane(info.Key, s.rotation.ForDate(date), done),
		Monthly: s.monthlyLane(info.Key, plan, done),
	}, nil
}

func (s *boardService) weeklyLane(week string, rot entity.Rotation, done map[string]entity.TaskRecord) entity.WeeklyLane {
	lane := entity.WeeklyLane{
		Period:   domain.PeriodWeekly,
		Rotation: rot,
		Cards:    make([]entity.PersonCard, 0, len(rot.Persons)),
	}

	for _, a := range rot.Assignments {
		for _, item := range s.items(week, domain.PeriodWeekly, a.Person, a.Category, done) {
			lane.Total++
			if item.Done && a.Person != "" {
				lane.Completed++
			}
		}
	}

	for _, person := range rot.Persons {
		card := entity.PersonCard{
			Person: person,
			Joker:  rot.HasJoker && person == rot.Joker,
		}

		allDone := true
		for _, category := range rot.CategoriesOf(person) {
			tasks := s.items(week, domain.PeriodWeekly, person, category, done)
			for _, t := range tasks {
				allDone = allDone && t.Done
			}
			card.Categories = append(card.Categories, entity.CategoryTasks{Category: category, Tasks: tasks})
		}
		card.AllDone = len(card.Categories) > 0 && allDone

		lane.Cards = append(lane.Cards, card)
	}

	return lane
}

func (s *boardService) monthlyLane(week string, plan entity.MonthlyPlan, done map[string]entity.TaskRecord) entity.MonthlyLane {
	lane := entity.MonthlyLane{
		Period:     domain.PeriodMonthly,
		Assignment: plan.Assignment,
	}

	for _, group := range []entity.MonthlyGroup{plan.GroupA, plan.GroupB} {
		card := entity.GroupCard{
			MonthlyGroup: group,
			Tasks:        s.items(week, domain.PeriodMonthly, group.AssigneeID, group.Category, done),
		}

		allDone := len(card.Tasks) > 0
		for _, t := range card.Tasks {
			lane.Total++
			if t.Done {
				lane.Completed++
			}
			allDone = allDone && t.Done
		}
		card.AllDone = allDone

		lane.Groups = append(lane.Groups, card)
	}

	return lane
}

func (s *boardService) items(week, period, assignee, category string, done map[string]entity.TaskRecord) []entity.TaskItem {
	labels := s.catalog.Tasks(period, category)
	items := make([]entity.TaskItem, 0, len(labels))

	for i, label := range labels {
		key := entity.TaskKey{
			Week:     week,
			Period:   period,
			Assignee: assignee,
			Category: category,
			Index:    i,
		}
		id := key.ID()
		items = append(items, entity.TaskItem{
			TaskKey: key,
			Text:    label,
			ID:      id,
			Done:    done[id].Done,
		})
	}

	return items
}
