// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/kakeibo/backend/internal/integration/entrypoint/controller"
	"github.com/kakeibo/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	incomeController  *controller.IncomeController
	expenseController *controller.ExpenseController
	savingsController *controller.SavingsController
	summaryController *controller.SummaryController
	writeRateLimiter  *middleware.RateLimiter
	userMiddleware    *middleware.UserMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	incomeController *controller.IncomeController,
	expenseController *controller.ExpenseController,
	savingsController *controller.SavingsController,
	summaryController *controller.SummaryController,
	writeRateLimiter *middleware.RateLimiter,
	userMiddleware *middleware.UserMiddleware,
) *Router {
	return &Router{
		healthController:  healthController,
		incomeController:  incomeController,
		expenseController: expenseController,
		savingsController: savingsController,
		summaryController: summaryController,
		writeRateLimiter:  writeRateLimiter,
		userMiddleware:    userMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.userMiddleware.Resolve())
	{
		income := v1.Group("/income")
		{
			income.GET("", r.incomeController.Get)
			income.PUT("", r.writeRateLimiter.Middleware(), r.incomeController.Update)
		}

		expenses := v1.Group("/expenses")
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.writeRateLimiter.Middleware(), r.expenseController.Create)
			expenses.PATCH("/:id", r.writeRateLimiter.Middleware(), r.expenseController.Update)
			expenses.DELETE("/:id", r.writeRateLimiter.Middleware(), r.expenseController.Delete)
		}

		savings := v1.Group("/savings")
		{
			savings.GET("", r.savingsController.GetLedger)

			pool := savings.Group("/pool")
			pool.Use(r.writeRateLimiter.Middleware())
			{
				pool.POST("/add", r.savingsController.AddToPool)
				pool.POST("/withdraw", r.savingsController.WithdrawFromPool)
			}

			goals := savings.Group("/goals")
			{
				goals.POST("", r.writeRateLimiter.Middleware(), r.savingsController.CreateGoal)
				goals.POST("/:id/allocate", r.writeRateLimiter.Middleware(), r.savingsController.Allocate)
				goals.POST("/:id/return", r.writeRateLimiter.Middleware(), r.savingsController.ReturnToPool)
				goals.DELETE("/:id", r.writeRateLimiter.Middleware(), r.savingsController.DeleteGoal)
			}
		}

		v1.GET("/summary", r.summaryController.GetOverview)
	}
}
