package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.Use(RequestLogger(h.logger))

	// Начальный вид карты и команда камеры
	mapGroup := api.Group("/map")
	{
		mapGroup.GET("/initial-view", h.getInitialView)
		mapGroup.GET("/camera", h.getCameraCommand)
	}

	mission := api.Group("/mission")
	{
		mission.GET("", h.getMission)
		mission.PUT("", h.putMission)
		mission.DELETE("", h.deleteMission)
		mission.GET("/aoi/entities", h.getAOIEntities)
	}

	settings := api.Group("/settings")
	{
		settings.GET("/map-default", h.getMapDefault)
		settings.PUT("/map-default", h.putMapDefault)
		settings.DELETE("/map-default", h.deleteMapDefault)
		settings.GET("/theme", h.getTheme)
		settings.PUT("/theme", h.putTheme)
	}

	// CRUD мок-бэкенда
	drones := api.Group("/drones")
	{
		drones.GET("", h.listDrones)
		drones.POST("", h.createDrone)
		drones.GET("/:id", h.getDrone)
		drones.PATCH("/:id", h.patchDrone)
		drones.DELETE("/:id", h.deleteDrone)
	}

	k9Units := api.Group("/k9-units")
	{
		k9Units.GET("", h.listK9Units)
		k9Units.POST("", h.createK9Unit)
		k9Units.GET("/:id", h.getK9Unit)
		k9Units.PATCH("/:id", h.patchK9Unit)
		k9Units.DELETE("/:id", h.deleteK9Unit)
	}

	responders := api.Group("/responders")
	{
		responders.GET("", h.listResponders)
		responders.POST("", h.createResponder)
		responders.GET("/:id", h.getResponder)
		responders.PATCH("/:id", h.patchResponder)
		responders.DELETE("/:id", h.deleteResponder)
	}

	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("", h.createIncident)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id", h.patchIncident)
		incidents.DELETE("/:id", h.deleteIncident)
	}

	zones := api.Group("/zones")
	{
		zones.GET("", h.listZones)
		zones.POST("", h.createZone)
		zones.GET("/:id", h.getZone)
		zones.PATCH("/:id", h.patchZone)
		zones.DELETE("/:id", h.deleteZone)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
