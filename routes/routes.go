package routes

import (
	"time"

	"clubhub/handlers"
	"clubhub/middleware"
	"clubhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers wired in main.
type HandlerBundle struct {
	Reminder    *handlers.ReminderHandler
	Event       *handlers.EventHandler
	Member      *handlers.MemberHandler
	Resource    *handlers.ResourceHandler
	Opportunity *handlers.OpportunityHandler
}

// RegisterReminderRoutes registers the reminder engine trigger. The route is
// POST-only with no body; the scheduler's preflight OPTIONS is answered by
// the CORS middleware.
func RegisterReminderRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/api/reminders/run", hb.Reminder.RunRemindersHandler)
}

// RegisterEventRoutes registers calendar endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/events")
	{
		api.GET("", hb.Event.ListEventsHandler)
		api.GET("/:id", hb.Event.GetEventHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("", hb.Event.CreateEventHandler)
		protected.PUT("/:id", hb.Event.UpdateEventHandler)
		protected.DELETE("/:id", hb.Event.DeleteEventHandler)
	}
}

// RegisterMemberRoutes registers member profile endpoints.
func RegisterMemberRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/members")
	{
		me := api.Group("")
		me.Use(middleware.JWTAuthMemberMiddleware())
		me.GET("/me", hb.Member.GetMeHandler)
		me.PUT("/me", hb.Member.UpdateMeHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.GET("", hb.Member.ListMembersHandler)
		admin.POST("", hb.Member.CreateMemberHandler)
		admin.DELETE("/:id", hb.Member.DeleteMemberHandler)
	}
}

// RegisterResourceRoutes registers resource library endpoints.
func RegisterResourceRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/resources")
	{
		api.GET("", hb.Resource.ListResourcesHandler)
		api.GET("/:id", hb.Resource.GetResourceHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("", hb.Resource.CreateResourceHandler)
		protected.PUT("/:id", hb.Resource.UpdateResourceHandler)
		protected.DELETE("/:id", hb.Resource.DeleteResourceHandler)
	}
}

// RegisterOpportunityRoutes registers opportunity board endpoints.
func RegisterOpportunityRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/opportunities")
	{
		api.GET("", hb.Opportunity.ListOpportunitiesHandler)
		api.GET("/:id", hb.Opportunity.GetOpportunityHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("", hb.Opportunity.CreateOpportunityHandler)
		protected.PUT("/:id", hb.Opportunity.UpdateOpportunityHandler)
		protected.DELETE("/:id", hb.Opportunity.DeleteOpportunityHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", utils.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterReminderRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterMemberRoutes(r, hb)
	RegisterResourceRoutes(r, hb)
	RegisterOpportunityRoutes(r, hb)
	RegisterHealthRoute(r)
}
