package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitgoals/internal/config"
	"fitgoals/internal/db"
	"fitgoals/internal/model"
	"fitgoals/internal/repository"
	"fitgoals/internal/service"
)

const (
	demoEmail    = "demo@fitgoals.local"
	demoPassword = "Fitness-Demo1"
)

// seedGoal pairs a goal with the progress entries seeded against it.
type seedGoal struct {
	goal    model.Goal
	entries []model.Progress
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Goal{}, &model.Progress{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	goalRepo := repository.NewGoalRepository(gormDB)
	progressRepo := repository.NewProgressRepository(gormDB)
	ctx := context.Background()

	user, err := ensureDemoUser(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}
	log.Printf("Demo user ready: %s (id=%d)", user.Email, user.ID)

	goals, entries, err := seedGoals(ctx, goalRepo, progressRepo, user.ID)
	if err != nil {
		log.Fatalf("Failed to seed goals: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Goals created: %d", goals)
	log.Printf("  - Progress entries created: %d", entries)
}

// ensureDemoUser creates the demo user if it does not already exist.
func ensureDemoUser(ctx context.Context, repo repository.UserRepository) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, demoEmail)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
	if err != nil {
		return nil, err
	}
	user := &model.User{Email: demoEmail, PasswordHash: string(hash)}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// seedGoals inserts the sample goals and their progress for the demo user,
// skipping goals that already exist by name.
func seedGoals(ctx context.Context, goals repository.GoalRepository, progress repository.ProgressRepository, userID uint) (int, int, error) {
	now := time.Now()
	start := service.FormatDate(now.AddDate(0, -1, 0))
	end := service.FormatDate(now.AddDate(0, 2, 0))

	samples := []seedGoal{
		{
			goal: model.Goal{
				UserID:      userID,
				Name:        "Run 5k",
				Description: "Build up to a five kilometer run",
				Target:      5,
				Unit:        "km",
				StartDate:   &start,
				EndDate:     &end,
			},
			entries: []model.Progress{
				{Value: 2, Date: service.FormatDate(now.AddDate(0, 0, -14))},
				{Value: 3, Date: service.FormatDate(now.AddDate(0, 0, -7))},
				{Value: 4, Date: service.FormatDate(now.AddDate(0, 0, -1))},
			},
		},
		{
			goal: model.Goal{
				UserID:      userID,
				Name:        "Daily pushups",
				Description: "Work towards fifty pushups a day",
				Target:      50,
				Unit:        "reps",
			},
			entries: []model.Progress{
				{Value: 20, Date: service.FormatDate(now.AddDate(0, 0, -3))},
				{Value: 25, Date: service.FormatDate(now.AddDate(0, 0, -2))},
			},
		},
		{
			goal: model.Goal{
				UserID: userID,
				Name:   "Weekly swim",
				Target: 1000,
				Unit:   "m",
			},
		},
	}

	existing, err := goals.FindByUserID(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	seen := map[string]bool{}
	for _, g := range existing {
		seen[g.Name] = true
	}

	var goalCount, entryCount int
	for _, sample := range samples {
		if seen[sample.goal.Name] {
			log.Printf("Skipping existing goal: %s", sample.goal.Name)
			continue
		}
		goal := sample.goal
		if err := goals.Create(ctx, &goal); err != nil {
			return goalCount, entryCount, err
		}
		goalCount++

		for _, entry := range sample.entries {
			entry.GoalID = goal.ID
			if err := progress.Create(ctx, &entry); err != nil {
				return goalCount, entryCount, err
			}
			entryCount++
		}
	}

	return goalCount, entryCount, nil
}
