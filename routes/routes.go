package routes

import (
	"net/http"
	"time"

	"darshanam/handlers"
	"darshanam/middleware"
	"darshanam/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers sign-in/sign-out endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signin", hb.Auth.SignInHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.POST("/signout", hb.Auth.SignOutHandler)
		api.GET("/me", hb.Auth.MeHandler)
	}
}

// RegisterDarshanRoutes sets up the slot picker and booking endpoints.
func RegisterDarshanRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/darshan")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.GET("/slots", hb.Darshan.GetSlotsHandler)
		api.POST("/book", hb.Darshan.BookDarshanHandler)
		api.GET("/bookings", hb.Darshan.MyBookingsHandler)
	}
}

// RegisterProfileRoutes sets up profile endpoints. The by-id read is public.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/profiles/:id", hb.Profile.GetPublicProfileHandler)

	api := r.Group("/api/profile")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.GET("", hb.Profile.GetMyProfileHandler)
		api.PUT("", hb.Profile.SaveProfileHandler)
		api.POST("/avatar", hb.Profile.UploadAvatarHandler)
	}
}

// RegisterNotificationRoutes exposes the confirmation dispatcher. Any-method
// registration lets the handler answer 405 for non-POST.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Any("/api/send-confirmation", hb.Notification.SendConfirmationHandler)
}

// RegisterLocaleRoutes registers the localization table endpoints.
func RegisterLocaleRoutes(r *gin.Engine) {
	api := r.Group("/api/locale")
	{
		api.GET("/languages", handlers.GetLanguagesHandler)
		api.GET("/strings/:lang", handlers.GetStringsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterDarshanRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterLocaleRoutes(r)
	RegisterHealthRoute(r)
}
