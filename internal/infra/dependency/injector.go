// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kakeibo/backend/config"
	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/application/usecase/expense"
	"github.com/kakeibo/backend/internal/application/usecase/income"
	"github.com/kakeibo/backend/internal/application/usecase/savings"
	"github.com/kakeibo/backend/internal/application/usecase/summary"
	"github.com/kakeibo/backend/internal/infra/server/router"
	"github.com/kakeibo/backend/internal/integration/cache"
	"github.com/kakeibo/backend/internal/integration/entrypoint/controller"
	"github.com/kakeibo/backend/internal/integration/entrypoint/middleware"
	"github.com/kakeibo/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The Redis client may be nil, in which case the summary endpoint recomputes
// on every request.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	incomeRepo := persistence.NewIncomeRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	savingsRepo := persistence.NewSavingsRepository(db)

	// Create summary cache
	var summaryCache adapter.SummaryCache
	if redisClient != nil {
		summaryCache = cache.NewSummaryCache(redisClient, cfg.Cache.SummaryTTL)
	}

	// Create income use cases
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo)
	getIncomeUseCase := income.NewGetIncomeUseCase(incomeRepo)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)

	// Create savings use cases
	getLedgerUseCase := savings.NewGetLedgerUseCase(savingsRepo)
	addToPoolUseCase := savings.NewAddToPoolUseCase(savingsRepo)
	withdrawUseCase := savings.NewWithdrawFromPoolUseCase(savingsRepo)
	allocateUseCase := savings.NewAllocateUseCase(savingsRepo)
	returnToPoolUseCase := savings.NewReturnToPoolUseCase(savingsRepo)
	createGoalUseCase := savings.NewCreateGoalUseCase(savingsRepo)
	deleteGoalUseCase := savings.NewDeleteGoalUseCase(savingsRepo)

	// Create summary use case
	getOverviewUseCase := summary.NewGetOverviewUseCase(incomeRepo, expenseRepo, savingsRepo, summaryCache)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	incomeController := controller.NewIncomeController(
		updateIncomeUseCase,
		getIncomeUseCase,
		summaryCache,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		listExpensesUseCase,
		summaryCache,
	)

	savingsController := controller.NewSavingsController(
		getLedgerUseCase,
		addToPoolUseCase,
		withdrawUseCase,
		allocateUseCase,
		returnToPoolUseCase,
		createGoalUseCase,
		deleteGoalUseCase,
		summaryCache,
	)

	summaryController := controller.NewSummaryController(getOverviewUseCase)

	// Create middleware
	// Use a higher rate limit for test environments to prevent flaky tests
	var writeRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		writeRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		writeRateLimiter = middleware.NewRateLimiter()
	}

	defaultUserID, err := uuid.Parse(cfg.Profile.DefaultUserID)
	if err != nil {
		slog.Warn("Invalid DEFAULT_USER_ID, falling back to the nil profile", "error", err)
		defaultUserID = uuid.Nil
	}
	userMiddleware := middleware.NewUserMiddleware(defaultUserID)

	// Create router
	r := router.NewRouter(
		healthController,
		incomeController,
		expenseController,
		savingsController,
		summaryController,
		writeRateLimiter,
		userMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
