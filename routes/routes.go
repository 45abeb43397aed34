package routes

import (
	"net/http"
	"time"

	"tourvia/handlers"
	"tourvia/middleware"
	"tourvia/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers identity endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.AuthSessions))
		api.POST("/logout", hb.Auth.LogoutHandler)
		api.GET("/me", hb.Auth.GetMeHandler)
		api.PUT("/profile", hb.Auth.UpdateProfileHandler)
	}
}

// RegisterTourRoutes registers public catalog reads.
func RegisterTourRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tours")
	{
		api.GET("", hb.Tours.ListToursHandler)
		api.GET("/:id", hb.Tours.GetTourHandler)
		api.POST("/filter", hb.Tours.FilterToursHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking workflow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.AuthSessions))
		api.POST("", hb.Bookings.SubmitBookingHandler)
		api.GET("", hb.Bookings.ListMyBookingsHandler)
		api.GET("/session/:sessionID", hb.Bookings.GetSubmissionSessionHandler)
	}
}

// RegisterReceiptRoutes sets up confirmation artifact endpoints.
func RegisterReceiptRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/receipts")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.AuthSessions))
		api.GET("/:id", hb.Receipts.ViewReceiptHandler)
		api.GET("/:id/download", hb.Receipts.DownloadReceiptHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterTourRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReceiptRoutes(r, hb)
	RegisterHealthRoute(r)
}
