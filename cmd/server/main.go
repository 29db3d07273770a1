package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fekaduabera/Financial-Freedom/internal/adapter/httpapi"
	"github.com/fekaduabera/Financial-Freedom/internal/adapter/repository/memory"
	"github.com/fekaduabera/Financial-Freedom/internal/adapter/repository/postgres"
	"github.com/fekaduabera/Financial-Freedom/internal/domain"
	"github.com/fekaduabera/Financial-Freedom/internal/usecase/contribution"
	"github.com/fekaduabera/Financial-Freedom/internal/usecase/dashboard"
	"github.com/fekaduabera/Financial-Freedom/internal/usecase/goal"
	"github.com/fekaduabera/Financial-Freedom/internal/usecase/investment"
	"github.com/fekaduabera/Financial-Freedom/internal/usecase/loan"
	"github.com/fekaduabera/Financial-Freedom/internal/usecase/seeder"
)

const defaultPort = "8080"

// repositories groups the persistence implementations behind one struct so
// the store backend is swappable via the STORE env var
type repositories struct {
	investments   domain.InvestmentRepository
	history       domain.InvestmentHistoryRepository
	contributions domain.ContributionRepository
	loans         domain.LoanRepository
	payments      domain.LoanPaymentRepository
	goals         domain.GoalRepository
}

func main() {
	// 1. Setup storage
	repos, cleanup, err := buildRepositories()
	if err != nil {
		log.Fatalf("Failed to set up storage: %v", err)
	}
	defer cleanup()

	// 2. Initialize Services (Use Cases)
	investmentService := investment.NewInvestmentService(repos.investments, repos.history)
	contributionService := contribution.NewContributionService(repos.contributions)
	loanService := loan.NewLoanService(repos.loans, repos.payments)
	goalService := goal.NewGoalService(repos.goals)
	dashboardService := dashboard.NewDashboardService(repos.contributions, repos.loans, repos.goals)

	// 3. Optionally seed demo data
	if os.Getenv("SEED_DEMO") == "1" {
		demoSeeder := seeder.NewDemoSeeder(investmentService, contributionService, loanService, goalService)
		if err := demoSeeder.Seed(context.Background()); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Println("Demo data seeded successfully")
	}

	// 4. Start HTTP server
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	apiServer := httpapi.NewServer(investmentService, contributionService, loanService, goalService, dashboardService)
	server := &http.Server{
		Addr:    ":" + port,
		Handler: apiServer.Router(),
	}

	go func() {
		log.Printf("HTTP server listening on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve HTTP server: %v", err)
		}
	}()

	waitForShutdown(server)
}

// buildRepositories selects the store backend. STORE=memory runs without a
// database; anything else connects to Postgres.
func buildRepositories() (*repositories, func(), error) {
	if os.Getenv("STORE") == "memory" {
		log.Println("Using in-memory store")
		return &repositories{
			investments:   memory.NewInvestmentRepo(),
			history:       memory.NewInvestmentHistoryRepo(),
			contributions: memory.NewContributionRepo(),
			loans:         memory.NewLoanRepo(),
			payments:      memory.NewLoanPaymentRepo(),
			goals:         memory.NewGoalRepo(),
		}, func() {}, nil
	}

	dbConnStr := os.Getenv("DB_CONN_STR")
	if dbConnStr == "" {
		// If explicit string is missing, build it from individual vars (Docker friendly)
		host := os.Getenv("DB_HOST")
		if host == "" {
			host = "localhost" // Default for local run without docker
		}
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "5432"
		}
		user := os.Getenv("DB_USER")
		if user == "" {
			user = "postgres"
		}
		password := os.Getenv("DB_PASSWORD")
		if password == "" {
			password = "postgres"
		}
		dbname := os.Getenv("DB_NAME")
		if dbname == "" {
			dbname = "finance"
		}

		dbConnStr = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, password, dbname)
	}

	// Add 2-second delay to ensure Postgres is up (Simple retry)
	time.Sleep(2 * time.Second)

	db, err := postgres.NewDB(dbConnStr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &repositories{
		investments:   postgres.NewInvestmentRepository(db),
		history:       postgres.NewInvestmentHistoryRepository(db),
		contributions: postgres.NewContributionRepository(db),
		loans:         postgres.NewLoanRepository(db),
		payments:      postgres.NewLoanPaymentRepository(db),
		goals:         postgres.NewGoalRepository(db),
	}, func() { db.Close() }, nil
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(server *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	log.Println("HTTP server stopped")
}
