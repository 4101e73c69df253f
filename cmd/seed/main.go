package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/repository/postgres"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/database"
	"go-jobportal-backend/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// seed creates the admin account and the starter job templates.
// Both steps are idempotent: an existing admin email or a non-empty template catalog is left alone.
func main() {
	withAdmin := flag.Bool("admin", true, "create the admin account from ADMIN_EMAIL / ADMIN_PASSWORD")
	withTemplates := flag.Bool("templates", true, "insert starter job templates when none exist")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.AppEnv)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.RunMigrations(cfg.DBUrl); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	if *withAdmin {
		if err := seedAdmin(ctx, postgres.NewAccountRepository(dbPool), cfg.AdminSeedEmail, cfg.AdminSeedPasswd); err != nil {
			logger.Log.Error("Admin seed failed", "error", err)
			os.Exit(1)
		}
	}

	if *withTemplates {
		templates := usecase.NewJobTemplateUsecase(
			postgres.NewJobTemplateRepository(dbPool),
			postgres.NewJobRepository(dbPool),
			postgres.NewEmployerProfileRepository(dbPool),
		)
		if err := seedTemplates(ctx, templates); err != nil {
			logger.Log.Error("Template seed failed", "error", err)
			os.Exit(1)
		}
	}
}

func seedAdmin(ctx context.Context, accounts domain.AccountRepository, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		logger.Log.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	_, err := accounts.GetByEmail(ctx, email)
	if err == nil {
		logger.Log.Info("Admin account already exists", "email", email)
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	err = accounts.Create(ctx, &domain.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsApproved:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return err
	}
	logger.Log.Info("Admin account created", "email", email)
	return nil
}

func seedTemplates(ctx context.Context, uc domain.JobTemplateUsecase) error {
	existing, err := uc.ListAll(ctx, domain.TemplateFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Log.Info("Job templates already present, skipping", "count", len(existing))
		return nil
	}

	for i := range starterTemplates {
		tmpl := starterTemplates[i]
		if err := uc.Create(ctx, &tmpl); err != nil {
			return err
		}
		logger.Log.Info("Job template created", "id", tmpl.ID, "title", tmpl.Title)
	}
	return nil
}

var starterTemplates = []domain.JobTemplate{
	{
		Title:            "Social Media Content Creator - 1 Hour/Day",
		Description:      "Create and post engaging content on Instagram, Facebook and Twitter. Work from anywhere, anytime.",
		Category:         "Marketing",
		JobType:          "Remote",
		WorkingHours:     "1 Hour/Day",
		SuggestedSalary:  domain.Salary{Min: 3000, Max: 6000, Currency: domain.DefaultCurrency, Period: "monthly"},
		Requirements:     []string{"Active on social media", "Basic phone/computer", "Creative mindset"},
		Responsibilities: []string{"Post daily content", "Engage with followers", "Create simple graphics using Canva"},
		Skills:           []string{"Social Media", "Content Creation", "Canva"},
	},
	{
		Title:            "Online Tutor - 2 Hours/Day (Evening)",
		Description:      "Teach school students (Class 6-10) in subjects you excel at. Flexible evening slots.",
		Category:         "Education",
		JobType:          "Remote",
		WorkingHours:     "Evening",
		SuggestedSalary:  domain.Salary{Min: 200, Max: 500, Currency: domain.DefaultCurrency, Period: "hourly"},
		Requirements:     []string{"Strong subject knowledge", "Good communication", "Patience with students"},
		Responsibilities: []string{"Conduct 1-on-1 online classes", "Explain concepts clearly", "Assign homework"},
		Skills:           []string{"Teaching", "Subject Knowledge", "Communication"},
	},
	{
		Title:            "Data Entry Operator - Weekend Only",
		Description:      "Simple Excel data entry work on Saturdays and Sundays. No experience needed, training provided.",
		Category:         "Data Entry",
		JobType:          "Remote",
		WorkingHours:     "Weekends",
		SuggestedSalary:  domain.Salary{Min: 150, Max: 300, Currency: domain.DefaultCurrency, Period: "daily"},
		Requirements:     []string{"Basic Excel knowledge", "Computer with internet", "Good typing speed"},
		Responsibilities: []string{"Enter data into spreadsheets", "Verify accuracy", "Submit completed work"},
		Skills:           []string{"Excel", "Data Entry", "Typing"},
	},
	{
		Title:            "Food Delivery Partner - Flexible Hours",
		Description:      "Deliver food orders in your area using your bike or scooter. Earn per delivery plus tips.",
		Category:         "Delivery",
		JobType:          "Onsite",
		WorkingHours:     "Flexible",
		SuggestedSalary:  domain.Salary{Min: 30, Max: 60, Currency: domain.DefaultCurrency, Period: "hourly"},
		Requirements:     []string{"Own bike/scooter", "Valid license", "Smartphone", "Know local area"},
		Responsibilities: []string{"Pick up food from restaurants", "Deliver to customers", "Maintain delivery time"},
		Skills:           []string{"Driving", "Time Management", "Customer Service"},
	},
	{
		Title:            "Content Writer - 2 Hours/Day",
		Description:      "Write blog posts, articles and website content from home at your convenience.",
		Category:         "Writing",
		JobType:          "Remote",
		WorkingHours:     "2 Hours/Day",
		SuggestedSalary:  domain.Salary{Min: 5000, Max: 10000, Currency: domain.DefaultCurrency, Period: "monthly"},
		Requirements:     []string{"Good English writing", "Basic computer skills", "Meet deadlines"},
		Responsibilities: []string{"Write 2-3 articles per week", "Research topics", "Proofread content"},
		Skills:           []string{"Content Writing", "English", "Research"},
	},
	{
		Title:            "Customer Support Chat Agent - 3-4 Hours/Day",
		Description:      "Answer customer queries via chat and WhatsApp. Work from home, training provided.",
		Category:         "Customer Service",
		JobType:          "Remote",
		WorkingHours:     "3-4 Hours/Day",
		SuggestedSalary:  domain.Salary{Min: 6000, Max: 10000, Currency: domain.DefaultCurrency, Period: "monthly"},
		Requirements:     []string{"Good communication", "Basic computer", "Problem-solving skills"},
		Responsibilities: []string{"Respond to customer queries", "Resolve issues", "Maintain chat records"},
		Skills:           []string{"Communication", "Customer Service", "Problem Solving"},
	},
	{
		Title:            "App/Website Tester - 1-2 Hours/Day",
		Description:      "Test apps and websites and report bugs. No coding needed.",
		Category:         "Technology",
		JobType:          "Remote",
		WorkingHours:     "Flexible",
		SuggestedSalary:  domain.Salary{Min: 3000, Max: 6000, Currency: domain.DefaultCurrency, Period: "monthly"},
		Requirements:     []string{"Smartphone/computer", "Good observation skills", "Detail-oriented"},
		Responsibilities: []string{"Test apps/websites", "Report bugs and issues", "Provide user feedback"},
		Skills:           []string{"Testing", "Attention to Detail", "Communication"},
	},
}
