// internal/api/routes.go
// Central route registration for all API endpoints

package api

import (
	"badminton-court-engine/internal/middleware"
	"badminton-court-engine/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers authentication-related routes
func RegisterAuthRoutes(router *gin.RouterGroup, services *services.Container) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", HandleRegister(services.Auth))
		auth.POST("/login", HandleLogin(services.Auth))
		auth.POST("/logout", middleware.RequireAuth(services.Auth), HandleLogout(services.Auth))
		auth.POST("/refresh", HandleRefreshToken(services.Auth))
	}
}

// RegisterUserRoutes registers organizer profile routes
func RegisterUserRoutes(router *gin.RouterGroup, services *services.Container) {
	users := router.Group("/users")
	users.Use(middleware.RequireAuth(services.Auth))
	{
		users.GET("/me", HandleGetCurrentUser(services.User))
		users.PUT("/me", HandleUpdateProfile(services.User))
		users.PUT("/me/password", HandleChangePassword(services.Auth))
	}
}

// RegisterSessionRoutes registers session, roster, round and history routes
func RegisterSessionRoutes(router *gin.RouterGroup, services *services.Container) {
	sessions := router.Group("/sessions")
	sessions.Use(middleware.RequireAuth(services.Auth))
	{
		sessions.POST("", HandleCreateSession(services.Session))
		sessions.GET("", HandleListSessions(services.Session))
		sessions.GET("/:id", HandleGetSession(services.Session, services.Roster))
		sessions.DELETE("/:id", middleware.RequireSessionOwner(services), HandleDeleteSession(services.Session))

		// Roster management
		sessions.POST("/:id/players", middleware.RequireSessionOwner(services), HandleAddPlayer(services.Roster))
		sessions.PUT("/:id/players/:playerId", middleware.RequireSessionOwner(services), HandleUpdatePlayer(services.Roster))
		sessions.DELETE("/:id/players/:playerId", middleware.RequireSessionOwner(services), HandleRemovePlayer(services.Roster))

		// Round generation and winner recording
		sessions.POST("/:id/rounds/generate", middleware.RequireSessionOwner(services), HandleGenerateRound(services.Session))
		sessions.GET("/:id/rounds/current", HandleGetCurrentRound(services.Session))
		sessions.POST("/:id/rounds/current/winner", middleware.RequireSessionOwner(services), HandleUpdateWinner(services.Session))
		sessions.POST("/:id/rounds/current/winner/reverse", middleware.RequireSessionOwner(services), HandleReverseWinner(services.Session))
		sessions.GET("/:id/rounds/archive", HandleGetRoundArchive(services.Session))

		// History counters
		sessions.GET("/:id/history/wins", HandleGetWinCounts(services.Session))
		sessions.GET("/:id/history/bench", HandleGetBenchCounts(services.Session))
		sessions.POST("/:id/history/reset", middleware.RequireSessionOwner(services), HandleResetHistory(services.Session))
		sessions.POST("/:id/history/clear-session", middleware.RequireSessionOwner(services), HandleClearCurrentSession(services.Session))

		// Persisted state
		sessions.GET("/:id/state", HandleGetState(services.Session))
		sessions.PUT("/:id/state", middleware.RequireSessionOwner(services), HandleLoadState(services.Session))
	}
}

// RegisterAdminRoutes registers admin-only routes
func RegisterAdminRoutes(router *gin.RouterGroup, services *services.Container) {
	admin := router.Group("/admin")
	admin.Use(middleware.RequireAuth(services.Auth))
	admin.Use(middleware.RequireRole("admin"))
	{
		admin.GET("/stats", HandleGetPlatformStats(services.Analytics))
		admin.GET("/sessions", HandleListAllSessions(services.Session))
	}
}
