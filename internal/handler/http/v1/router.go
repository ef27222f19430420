package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_response_system/internal/auth"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Регистрация и вход - без токена
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/users", h.registerUser)
		authGroup.POST("/users/login", h.loginUser)
		authGroup.POST("/hospitals", h.registerHospital)
		authGroup.POST("/hospitals/login", h.loginHospital)
		authGroup.POST("/hospitals/reset-password", h.resetHospitalPassword)
	}

	// Профиль заявителя
	users := api.Group("/users", JWTAuthMiddleware(h.cfg, h.logger, auth.RoleGeneral))
	{
		users.GET("/me", h.getOwnProfile)
		users.PUT("/me", h.updateOwnProfile)
	}

	// Жизненный цикл инцидентов: чтение доступно обеим ролям,
	// мутации разведены по ролям
	incidents := api.Group("/incidents", JWTAuthMiddleware(h.cfg, h.logger, auth.RoleGeneral, auth.RoleHospital))
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
	}

	reporterOps := api.Group("/incidents", JWTAuthMiddleware(h.cfg, h.logger, auth.RoleGeneral))
	{
		reporterOps.POST("", h.dispatchIncident)
		reporterOps.POST("/:id/resolve", h.resolveIncident)
		reporterOps.POST("/:id/reject", h.rejectIncident)
		reporterOps.POST("/:id/log", h.appendIncidentLog)
		reporterOps.PATCH("/:id/type", h.updateIncidentType)
		reporterOps.PATCH("/:id/evidence", h.attachEvidence)
		reporterOps.PATCH("/:id/location", h.updateIncidentLocation)
	}

	hospitalOps := api.Group("/incidents", JWTAuthMiddleware(h.cfg, h.logger, auth.RoleHospital))
	{
		hospitalOps.POST("/:id/accept", h.acceptIncident)
		hospitalOps.POST("/:id/status", h.advanceIncidentStatus)
	}

	// Живая лента
	api.GET("/feed", JWTAuthMiddleware(h.cfg, h.logger, auth.RoleGeneral, auth.RoleHospital), h.streamFeed)

	// Административная проверка больниц
	admin := api.Group("/admin", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		admin.GET("/hospitals", h.listHospitals)
		admin.PATCH("/hospitals/:id/status", h.setHospitalStatus)
		admin.GET("/feed", h.streamAdminFeed)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
