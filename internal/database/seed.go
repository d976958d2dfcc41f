package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-track-tower/internal/domain"
)

type seedColumn struct {
	title string
	tasks [][2]string // title, description
}

var demoBoards = []domain.Board{
	{Title: "Project Alpha", Color: "bg-purple-500"},
	{Title: "Marketing Campaign", Color: "bg-blue-500"},
	{Title: "Website Redesign", Color: "bg-indigo-500"},
	{Title: "Personal Tasks", Color: "bg-pink-500"},
}

var demoColumns = []seedColumn{
	{"To Do", [][2]string{
		{"Research competitors", "Look at similar products and identify strengths and weaknesses"},
		{"Create wireframes", "Design preliminary wireframes for key screens"},
		{"Setup development environment", ""},
	}},
	{"In Progress", [][2]string{
		{"Implement authentication", "Create login and registration flows"},
		{"Build dashboard UI", ""},
	}},
	{"Review", [][2]string{
		{"Code review: API endpoints", "Review and optimize API endpoints"},
	}},
	{"Done", [][2]string{
		{"Setup project repo", "Initialize repository and configure CI/CD"},
		{"Create project plan", ""},
	}},
}

// SeedDemoData inserts sample boards when the boards table is empty.
// The first board receives four columns with tasks. It reports whether
// anything was inserted.
func SeedDemoData(ctx context.Context, db *gorm.DB, logger *zap.Logger) (bool, error) {
	seeded := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Board{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count boards: %w", err)
		}
		if count > 0 {
			return nil
		}

		boards := make([]domain.Board, len(demoBoards))
		copy(boards, demoBoards)
		if err := tx.Create(&boards).Error; err != nil {
			return fmt.Errorf("failed to insert demo boards: %w", err)
		}

		for i, sc := range demoColumns {
			column := domain.Column{
				BoardID:  boards[0].ID,
				Title:    sc.title,
				Position: i,
			}
			for j, t := range sc.tasks {
				column.Tasks = append(column.Tasks, domain.Task{
					Title:       t[0],
					Description: t[1],
					Position:    j,
				})
			}
			if err := tx.Create(&column).Error; err != nil {
				return fmt.Errorf("failed to insert demo column %q: %w", sc.title, err)
			}
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if seeded {
		logger.Info("Inserted demo data",
			zap.Int("boards", len(demoBoards)),
			zap.Int("columns", len(demoColumns)),
		)
	}
	return seeded, nil
}
