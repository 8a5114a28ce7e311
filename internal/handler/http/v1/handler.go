package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/sar_dashboard/internal/models"
	"github.com/shenikar/sar_dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	dashboardService service.DashboardService
	logger           *logrus.Logger
	validate         *validator.Validate

	drones     collectionOps[models.Drone]
	k9Units    collectionOps[models.K9Unit]
	responders collectionOps[models.Responder]
	incidents  collectionOps[models.Incident]
	zones      collectionOps[models.Zone]
}

func NewHandler(dashboardService service.DashboardService, logger *logrus.Logger) *Handler {
	s := dashboardService
	return &Handler{
		dashboardService: s,
		logger:           logger,
		validate:         validator.New(),

		drones:     collectionOps[models.Drone]{name: "drone", list: s.ListDrones, get: s.GetDrone, update: s.UpdateDrone, remove: s.DeleteDrone},
		k9Units:    collectionOps[models.K9Unit]{name: "k9 unit", list: s.ListK9Units, get: s.GetK9Unit, update: s.UpdateK9Unit, remove: s.DeleteK9Unit},
		responders: collectionOps[models.Responder]{name: "responder", list: s.ListResponders, get: s.GetResponder, update: s.UpdateResponder, remove: s.DeleteResponder},
		incidents:  collectionOps[models.Incident]{name: "incident", list: s.ListIncidents, get: s.GetIncident, update: s.UpdateIncident, remove: s.DeleteIncident},
		zones:      collectionOps[models.Zone]{name: "zone", list: s.ListZones, get: s.GetZone, update: s.UpdateZone, remove: s.DeleteZone},
	}
}

// bindAndValidate читает тело запроса в DTO и проверяет его. При ошибке ответ уже отправлен.
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError переводит ошибку сервиса в HTTP-ответ
func respondError(c *gin.Context, log *logrus.Entry, err error, what string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Not found")
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
	case errors.Is(err, service.ErrInvalid):
		log.WithError(err).Warn("Rejected by service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get the initial map view
// @Description Evaluate the initial view priority chain: mission AOI, then tracked entities, then the saved view, then a prompt.
// @Tags Map
// @Produce json
// @Success 200 {object} object "Tagged initial view"
// @Router /map/initial-view [get]
func (h *Handler) getInitialView(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.InitialView(c.Request.Context()))
}

// @Summary Get the camera command for the initial view
// @Description Returns the selected initial view and the single camera command the globe should apply. The command is null when nothing can be positioned.
// @Tags Map
// @Produce json
// @Success 200 {object} CameraResponse
// @Router /map/camera [get]
func (h *Handler) getCameraCommand(c *gin.Context) {
	iv, cmd := h.dashboardService.CameraCommand(c.Request.Context())
	c.JSON(http.StatusOK, CameraResponse{View: iv, Command: cmd})
}

// @Summary Get the active mission
// @Tags Mission
// @Produce json
// @Success 200 {object} models.Mission
// @Failure 404 {object} map[string]string "No active mission"
// @Router /mission [get]
func (h *Handler) getMission(c *gin.Context) {
	log := h.logger.WithField("method", "getMission")

	m, err := h.dashboardService.ActiveMission(c.Request.Context())
	if err != nil {
		respondError(c, log, err, "active mission")
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary Set the active mission
// @Description Replace the active mission. Missing id and createdAt are generated.
// @Tags Mission
// @Accept json
// @Produce json
// @Param mission body MissionRequest true "Mission"
// @Success 200 {object} models.Mission
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /mission [put]
func (h *Handler) putMission(c *gin.Context) {
	var input MissionRequest
	log := h.logger.WithField("method", "putMission")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	m, err := h.dashboardService.SetActiveMission(c.Request.Context(), DTOToMissionModel(input))
	if err != nil {
		respondError(c, log, err, "mission")
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary Clear the active mission
// @Tags Mission
// @Success 204 "No Content"
// @Router /mission [delete]
func (h *Handler) deleteMission(c *gin.Context) {
	h.dashboardService.ClearActiveMission(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// @Summary List entities inside the mission AOI
// @Description Point entities within the active mission's area of interest, nearest first.
// @Tags Mission
// @Produce json
// @Success 200 {array} object
// @Failure 404 {object} map[string]string "No active mission AOI"
// @Router /mission/aoi/entities [get]
func (h *Handler) getAOIEntities(c *gin.Context) {
	log := h.logger.WithField("method", "getAOIEntities")

	entities, err := h.dashboardService.EntitiesInAOI(c.Request.Context())
	if err != nil {
		respondError(c, log, err, "mission AOI")
		return
	}
	if entities == nil {
		entities = []models.Entity{}
	}
	c.JSON(http.StatusOK, entities)
}

// @Summary Get the saved map view
// @Tags Settings
// @Produce json
// @Success 200 {object} models.MapDefaultView
// @Failure 404 {object} map[string]string "No saved view"
// @Router /settings/map-default [get]
func (h *Handler) getMapDefault(c *gin.Context) {
	log := h.logger.WithField("method", "getMapDefault")

	v, err := h.dashboardService.MapDefault(c.Request.Context())
	if err != nil {
		respondError(c, log, err, "saved map view")
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary Save the map view
// @Tags Settings
// @Accept json
// @Param view body MapDefaultRequest true "Map view, angles in degrees"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /settings/map-default [put]
func (h *Handler) putMapDefault(c *gin.Context) {
	var input MapDefaultRequest
	log := h.logger.WithField("method", "putMapDefault")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.dashboardService.SetMapDefault(c.Request.Context(), DTOToMapDefaultModel(input)); err != nil {
		respondError(c, log, err, "saved map view")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear the saved map view
// @Tags Settings
// @Success 204 "No Content"
// @Router /settings/map-default [delete]
func (h *Handler) deleteMapDefault(c *gin.Context) {
	h.dashboardService.ClearMapDefault(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// @Summary Get the theme mode
// @Tags Settings
// @Produce json
// @Success 200 {object} ThemeResponse
// @Router /settings/theme [get]
func (h *Handler) getTheme(c *gin.Context) {
	mode := h.dashboardService.ThemeMode(c.Request.Context())
	c.JSON(http.StatusOK, ThemeResponse{Mode: string(mode)})
}

// @Summary Set the theme mode
// @Tags Settings
// @Accept json
// @Produce json
// @Param theme body ThemeRequest true "Theme mode"
// @Success 200 {object} ThemeResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /settings/theme [put]
func (h *Handler) putTheme(c *gin.Context) {
	var input ThemeRequest
	log := h.logger.WithField("method", "putTheme")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.dashboardService.SetThemeMode(c.Request.Context(), models.ThemeMode(input.Mode)); err != nil {
		respondError(c, log, err, "theme")
		return
	}
	c.JSON(http.StatusOK, ThemeResponse{Mode: input.Mode})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
