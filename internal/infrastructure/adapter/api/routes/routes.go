package routes

import (
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/api/handler"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	betHandler *handler.BetHandler,
	matchHandler *handler.MatchHandler,
	walletHandler *handler.WalletHandler,
	userHandler *handler.UserHandler,
) {
	// Public match listings
	matchRoutes := router.Group("/matches")
	{
		matchRoutes.GET("/active", matchHandler.ListActive)
		matchRoutes.GET("/completed", matchHandler.ListCompleted)
		matchRoutes.GET("/:matchId", matchHandler.GetMatch)
	}

	// Account registration is open
	router.POST("/users", userHandler.Register)

	// Betting requires a caller identity
	betRoutes := router.Group("/bets", middleware.RequireAuth())
	{
		betRoutes.POST("", betHandler.PlaceBet)
		betRoutes.GET("/:betId", betHandler.GetBet)
		betRoutes.DELETE("/:betId", betHandler.CancelBet)
	}

	// Per-user reads are visible to the user and to admins
	userRoutes := router.Group("/users/:userId", middleware.RequireAuth(), middleware.RequireSelfOrAdmin("userId"))
	{
		userRoutes.GET("/balance", walletHandler.GetBalance)
		userRoutes.GET("/transactions", walletHandler.ListTransactions)
		userRoutes.GET("/bets", betHandler.ListUserBets)
		userRoutes.GET("/bets/open", betHandler.ListUserOpenBets)
		userRoutes.POST("/deposits", walletHandler.Deposit)
		userRoutes.POST("/withdrawals", walletHandler.RequestWithdrawal)
	}

	// Operator surface
	adminRoutes := router.Group("/admin", middleware.RequireAuth(), middleware.RequireAdmin())
	{
		adminRoutes.GET("/overview", userHandler.GetOverview)

		adminRoutes.GET("/users", userHandler.ListUsers)
		adminRoutes.GET("/users/:userId", userHandler.GetUser)
		adminRoutes.PATCH("/users/:userId/role", userHandler.UpdateRole)

		adminRoutes.GET("/matches", matchHandler.ListAll)
		adminRoutes.GET("/matches/archived", matchHandler.ListArchived)
		adminRoutes.POST("/matches", matchHandler.CreateMatch)
		adminRoutes.PUT("/matches/:matchId", matchHandler.UpdateMatch)
		adminRoutes.POST("/matches/:matchId/live", matchHandler.MarkLive)
		adminRoutes.POST("/matches/:matchId/settle", matchHandler.SettleMatch)
		adminRoutes.POST("/matches/:matchId/archive", matchHandler.ArchiveMatch)
		adminRoutes.POST("/matches/:matchId/restore", matchHandler.RestoreMatch)
		adminRoutes.GET("/matches/:matchId/bets", betHandler.ListMatchBets)
		adminRoutes.GET("/bets", betHandler.ListRecentBets)

		adminRoutes.GET("/transactions", walletHandler.ListRecentTransactions)
		adminRoutes.GET("/withdrawals", walletHandler.ListPendingWithdrawals)
		adminRoutes.POST("/withdrawals/:txnId/approve", walletHandler.ApproveWithdrawal)
		adminRoutes.POST("/withdrawals/:txnId/reject", walletHandler.RejectWithdrawal)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, limiter *middleware.RateLimiter) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.Identity())
	router.Use(limiter.Middleware())
}
