package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"record-management-api/internal/middleware"
)

// Routes assembles the gateway: permissive CORS for the browser frontend,
// request ids, and one route per entity operation. Register and login sit
// behind the rate limiter.
func Routes(h *Handler, rl *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))
	r.HandleMethodNotAllowed = true

	limited := middleware.RateLimit(rl)
	r.POST("/register", limited, h.Register)
	r.POST("/login", limited, h.Login)
	r.GET("/users", h.ListUsers)

	r.POST("/appointments", h.CreateAppointment)
	r.GET("/appointments", h.ListAppointments)
	r.DELETE("/appointments/:id", h.DeleteAppointment)

	r.GET("/plans", h.ListPlans)
	r.POST("/buy", h.BuyPlan)

	r.NoRoute(func(c *gin.Context) { detail(c, http.StatusNotFound, "Not found") })
	r.NoMethod(func(c *gin.Context) { detail(c, http.StatusMethodNotAllowed, "Method not allowed") })

	return r
}
