// Seeds a demo classroom: a teacher account, a class of students and a
// document with one problem per registered kind. Intended for local
// development against a fresh database.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"taskgen/internal/config"
	"taskgen/internal/database"
	"taskgen/internal/domain"
	"taskgen/internal/logger"
	"taskgen/internal/problems/kinds"
	"taskgen/internal/repository"

	"go.uber.org/zap"
)

const seedFilePath = "config/seed_data/demo_classroom.json"

type seedData struct {
	Teacher struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"teacher"`
	ClassName string   `json:"class_name"`
	Students  []string `json:"students"`
	Document  struct {
		Title string `json:"title"`
	} `json:"document"`
	Problems []struct {
		KindID          string `json:"kind_id"`
		SubproblemCount int    `json:"subproblem_count"`
	} `json:"problems"`
}

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(logger.Config{Level: cfg.Logger.Level, Env: cfg.Env}); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	raw, err := os.ReadFile(seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", seedFilePath), zap.Error(err))
	}
	var seed seedData
	if err := json.Unmarshal(raw, &seed); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}

	registry := kinds.NewDefaultRegistry()
	for _, problem := range seed.Problems {
		if _, err := registry.Resolve(problem.KindID); err != nil {
			log.Fatal("Seed file references an unregistered kind",
				zap.String("kind_id", problem.KindID), zap.Error(err))
		}
	}

	userRepo := repository.NewSQLXUserRepository(db)
	studentRepo := repository.NewSQLXStudentRepository(db)
	documentRepo := repository.NewSQLXDocumentRepository(db)
	problemRepo := repository.NewSQLXProblemRepository(db)

	teacher := &domain.User{
		GoogleID: "seed-demo-teacher",
		Email:    seed.Teacher.Email,
		Name:     seed.Teacher.Name,
	}
	existing, err := userRepo.GetUserByGoogleID(ctx, teacher.GoogleID)
	if err != nil {
		log.Fatal("Failed to look up seed teacher", zap.Error(err))
	}
	if existing != nil {
		log.Info("Seed teacher already exists, skipping seeding", zap.String("userID", existing.ID))
		return
	}
	if err := userRepo.CreateUser(ctx, teacher); err != nil {
		log.Fatal("Failed to create seed teacher", zap.Error(err))
	}
	log.Info("Created seed teacher", zap.String("userID", teacher.ID))

	for _, name := range seed.Students {
		student := &domain.Student{Name: name, ClassName: seed.ClassName}
		if err := studentRepo.CreateStudent(ctx, student); err != nil {
			log.Fatal("Failed to create student", zap.String("name", name), zap.Error(err))
		}
	}
	log.Info("Created students", zap.Int("count", len(seed.Students)), zap.String("class", seed.ClassName))

	document := &domain.Document{UserID: teacher.ID, Title: seed.Document.Title}
	if err := documentRepo.CreateDocument(ctx, document); err != nil {
		log.Fatal("Failed to create document", zap.Error(err))
	}

	for _, p := range seed.Problems {
		problem := domain.NewProblem(document.ID, p.KindID)
		if p.SubproblemCount > 0 {
			problem.SubproblemCount = p.SubproblemCount
		}
		if err := problemRepo.CreateProblem(ctx, problem); err != nil {
			log.Fatal("Failed to create problem", zap.String("kind_id", p.KindID), zap.Error(err))
		}
	}
	log.Info("Created document with problems",
		zap.String("documentID", document.ID),
		zap.Int("problems", len(seed.Problems)))

	log.Info("Initial data seeding process completed.")
}
