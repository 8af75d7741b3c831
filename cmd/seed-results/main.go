package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gradehub/resultportal-backend/internal/config"
	"github.com/gradehub/resultportal-backend/internal/database"
	"github.com/gradehub/resultportal-backend/internal/logger"
	"github.com/gradehub/resultportal-backend/internal/model"
	"github.com/gradehub/resultportal-backend/internal/repository"
)

// seed-results inserts a handful of sample result records for local
// development of the student lookup and admin screens.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, db, err := database.NewMongoDatabase(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	resultRepo := repository.NewResultRepository(db)
	if err := resultRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure indexes")
	}

	fmt.Println("=== Seeding Sample Results ===")

	records := []model.ResultRecord{
		{
			RollNo: "21CS001", Name: "Ananya Sharma", DOB: "2003-04-12", Course: "B.Tech",
			Subjects: []model.SubjectGrade{
				{Code: "CS101", Semester: "1", Grade: "A+"},
				{Code: "MA101", Semester: "1", Grade: "A"},
				{Code: "PH101", Semester: "1", Grade: "B+"},
			},
		},
		{
			RollNo: "21CS002", Name: "Rahul Verma", DOB: "2002-11-30", Course: "B.Tech",
			Subjects: []model.SubjectGrade{
				{Code: "CS101", Semester: "1", Grade: "B"},
				{Code: "MA101", Semester: "1", Grade: "F"},
			},
		},
		{
			RollNo: "22BC010", Name: "Priya Nair", DOB: "2004-01-05", Course: "B.Com",
			Subjects: []model.SubjectGrade{
				{Code: "AC201", Semester: "3", Grade: "O"},
				{Code: "EC202", Semester: "3", Grade: "C"},
			},
		},
		{
			RollNo: "20MC004", Name: "Vikram Singh", DOB: "2001-07-22", Course: "MCA",
			Subjects: []model.SubjectGrade{
				{Code: "MC301", Semester: "5", Grade: "A"},
				{Code: "MC302", Semester: "5", Grade: "A+"},
				{Code: "MC303", Semester: "5", Grade: "D"},
			},
		},
	}

	for i := range records {
		created, err := resultRepo.Upsert(ctx, &records[i])
		if err != nil {
			log.Fatal().Err(err).Str("roll_no", records[i].RollNo).Msg("Seed failed")
		}
		action := "updated"
		if created {
			action = "created"
		}
		fmt.Printf("  %s %s (%s)\n", action, records[i].RollNo, records[i].Name)
	}

	fmt.Printf("\nDone. Seeded %d records.\n", len(records))
}
