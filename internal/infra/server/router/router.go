// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/village-banking/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	memberController      *controller.MemberController
	transactionController *controller.TransactionController
	loanController        *controller.LoanController
	socialLoanController  *controller.LoanController
	interestController    *controller.InterestController
	cycleController       *controller.CycleController
	settingsController    *controller.SettingsController
	dashboardController   *controller.DashboardController
	backupController      *controller.BackupController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	memberController *controller.MemberController,
	transactionController *controller.TransactionController,
	loanController *controller.LoanController,
	socialLoanController *controller.LoanController,
	interestController *controller.InterestController,
	cycleController *controller.CycleController,
	settingsController *controller.SettingsController,
	dashboardController *controller.DashboardController,
	backupController *controller.BackupController,
) *Router {
	return &Router{
		healthController:      healthController,
		memberController:      memberController,
		transactionController: transactionController,
		loanController:        loanController,
		socialLoanController:  socialLoanController,
		interestController:    interestController,
		cycleController:       cycleController,
		settingsController:    settingsController,
		dashboardController:   dashboardController,
		backupController:      backupController,
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

	r.engine.GET("/health", r.healthController.Check)
	r.setupAPIRoutes()

	return r.engine
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		members := v1.Group("/members")
		{
			members.GET("", r.memberController.List)
			members.POST("", r.memberController.Create)
			members.GET("/:id", r.memberController.Get)
			members.PATCH("/:id", r.memberController.Update)
			members.DELETE("/:id", r.memberController.Delete)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Record)
		}

		r.mountLoanRoutes(v1.Group("/loans"), r.loanController)
		r.mountLoanRoutes(v1.Group("/social-loans"), r.socialLoanController)

		v1.POST("/interest/preview", r.interestController.Preview)

		cycles := v1.Group("/cycles")
		{
			cycles.GET("", r.cycleController.List)
			cycles.POST("", r.cycleController.Create)
			cycles.GET("/active", r.cycleController.GetActive)
			cycles.POST("/:id/close", r.cycleController.Close)
			cycles.GET("/:id/share-out", r.cycleController.ShareOut)
		}

		settings := v1.Group("/settings")
		{
			settings.GET("", r.settingsController.Get)
			settings.PATCH("", r.settingsController.Update)
		}

		v1.GET("/pots", r.dashboardController.Pots)
		v1.GET("/social-fund/summary", r.dashboardController.SocialFund)
		v1.GET("/dashboard/stats", r.dashboardController.Stats)

		backupRoutes := v1.Group("/backup")
		{
			backupRoutes.GET("/export", r.backupController.Export)
			backupRoutes.POST("/import", r.backupController.Import)
			backupRoutes.POST("/clear", r.backupController.Clear)
			backupRoutes.POST("/seed", r.backupController.Seed)
		}
	}
}

// mountLoanRoutes wires the shared loan surface onto a route group. Main and
// social loans expose identical operations.
func (r *Router) mountLoanRoutes(group *gin.RouterGroup, c *controller.LoanController) {
	group.GET("", c.List)
	group.POST("", c.Create)
	group.POST("/eligibility", c.CheckEligibility)
	group.GET("/:id", c.Get)
	group.POST("/:id/approve", c.Approve)
	group.POST("/:id/payments", c.MakePayment)
	group.POST("/:id/penalty", c.Penalise)
	group.POST("/:id/rollover", c.Rollover)
	group.POST("/:id/default", c.MarkDefaulted)
	group.GET("/:id/schedule", c.Schedule)
}
