package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter assembles the gin engine with all routes. Capsule and patient
// endpoints stay outside the auth gate for compatibility with existing
// clients of the original backend.
func NewRouter(h *Handler, authRequired gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default()) // the original backend allows all origins

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
			auth.PUT("/edit", authRequired, h.EditProfile)
			auth.GET("/user", authRequired, h.GetProfile)
		}

		api.GET("/capsules", h.ListCapsules)
		api.GET("/capsules/:id", h.GetCapsule)
		api.POST("/capsules", h.UpsertCapsule)

		api.GET("/patients", h.ListPatients)
		api.POST("/patients", h.CreatePatient)
		api.GET("/patients/:id", h.GetPatient)
		api.DELETE("/patients/:id", h.DeletePatient)
	}

	return r
}
