package v1

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/sar_dashboard/internal/models"
)

// collectionOps - операции сервиса над одной коллекцией мок-бэкенда
type collectionOps[E any] struct {
	name   string
	list   func(context.Context) []E
	get    func(context.Context, models.ID) (*E, error)
	update func(context.Context, models.ID, func(*E) error) (*E, error)
	remove func(context.Context, models.ID) error
}

// pathID читает :id из пути. При ошибке ответ уже отправлен.
func pathID(c *gin.Context, name string) (models.ID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " ID"})
		return "", false
	}
	return id.String(), true
}

func listEntities[E any](h *Handler, c *gin.Context, ops collectionOps[E]) {
	items := ops.list(c.Request.Context())
	if items == nil {
		items = []E{}
	}
	c.JSON(http.StatusOK, items)
}

func getEntity[E any](h *Handler, c *gin.Context, ops collectionOps[E]) {
	id, ok := pathID(c, ops.name)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "get "+ops.name).WithField("id", id)

	item, err := ops.get(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, ops.name)
		return
	}
	c.JSON(http.StatusOK, item)
}

func createEntity[R any, E any](h *Handler, c *gin.Context, name string, toModel func(R) E, create func(context.Context, E) (*E, error)) {
	var input R
	log := h.logger.WithField("method", "create "+name)

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	created, err := create(c.Request.Context(), toModel(input))
	if err != nil {
		respondError(c, log, err, name)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// patchEntity накладывает тело запроса на запись: отсутствующие поля не меняются
func patchEntity[E any](h *Handler, c *gin.Context, ops collectionOps[E]) {
	id, ok := pathID(c, ops.name)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "patch "+ops.name).WithField("id", id)

	body, err := c.GetRawData()
	if err != nil {
		log.WithError(err).Warn("Failed to read body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	var typed E
	if err := json.Unmarshal(body, &typed); err != nil {
		log.WithError(err).Warn("Patch does not match record shape")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := ops.update(c.Request.Context(), id, func(item *E) error {
		return mergePatch(item, body)
	})
	if err != nil {
		respondError(c, log, err, ops.name)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func deleteEntity[E any](h *Handler, c *gin.Context, ops collectionOps[E]) {
	id, ok := pathID(c, ops.name)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "delete "+ops.name).WithField("id", id)

	if err := ops.remove(c.Request.Context(), id); err != nil {
		respondError(c, log, err, ops.name)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List drones
// @Tags Drones
// @Produce json
// @Success 200 {array} models.Drone
// @Router /drones [get]
func (h *Handler) listDrones(c *gin.Context) { listEntities(h, c, h.drones) }

// @Summary Get drone by ID
// @Tags Drones
// @Produce json
// @Param id path string true "Drone ID"
// @Success 200 {object} models.Drone
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not found"
// @Router /drones/{id} [get]
func (h *Handler) getDrone(c *gin.Context) { getEntity(h, c, h.drones) }

// @Summary Create a drone
// @Tags Drones
// @Accept json
// @Produce json
// @Param drone body CreateDroneRequest true "Drone creation request"
// @Success 201 {object} models.Drone
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /drones [post]
func (h *Handler) createDrone(c *gin.Context) {
	createEntity(h, c, h.drones.name, DTOToDroneModel, h.dashboardService.CreateDrone)
}

// @Summary Patch a drone
// @Description Fields missing from the body keep their values. id, kind and createdAt cannot be changed.
// @Tags Drones
// @Accept json
// @Produce json
// @Param id path string true "Drone ID"
// @Param patch body object true "Partial drone"
// @Success 200 {object} models.Drone
// @Failure 400 {object} map[string]string "Invalid ID, body or resulting record"
// @Failure 404 {object} map[string]string "Not found"
// @Router /drones/{id} [patch]
func (h *Handler) patchDrone(c *gin.Context) { patchEntity(h, c, h.drones) }

// @Summary Delete a drone
// @Tags Drones
// @Param id path string true "Drone ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not found"
// @Router /drones/{id} [delete]
func (h *Handler) deleteDrone(c *gin.Context) { deleteEntity(h, c, h.drones) }

// @Summary List k9 units
// @Tags K9 Units
// @Produce json
// @Success 200 {array} models.K9Unit
// @Router /k9-units [get]
func (h *Handler) listK9Units(c *gin.Context) { listEntities(h, c, h.k9Units) }

// @Summary Get k9 unit by ID
// @Tags K9 Units
// @Produce json
// @Param id path string true "K9 unit ID"
// @Success 200 {object} models.K9Unit
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not found"
// @Router /k9-units/{id} [get]
func (h *Handler) getK9Unit(c *gin.Context) { getEntity(h, c, h.k9Units) }

// @Summary Create a k9 unit
// @Tags K9 Units
// @Accept json
// @Produce json
// @Param k9Unit body CreateK9UnitRequest true "K9 unit creation request"
// @Success 201 {object} models.K9Unit
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /k9-units [post]
func (h *Handler) createK9Unit(c *gin.Context) {
	createEntity(h, c, h.k9Units.name, DTOToK9UnitModel, h.dashboardService.CreateK9Unit)
}

// @Summary Patch a k9 unit
// @Description Fields missing from the body keep their values. id, kind and createdAt cannot be changed.
// @Tags K9 Units
// @Accept json
// @Produce json
// @Param id path string true "K9 unit ID"
// @Param patch body object true "Partial k9 unit"
// @Success 200 {object} models.K9Unit
// @Failure 400 {object} map[string]string "Invalid ID, body or resulting record"
// @Failure 404 {object} map[string]string "Not found"
// @Router /k9-units/{id} [patch]
func (h *Handler) patchK9Unit(c *gin.Context) { patchEntity(h, c, h.k9Units) }

// @Summary Delete a k9 unit
// @Tags K9 Units
// @Param id path string true "K9 unit ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not found"
// @Router /k9-units/{id} [delete]
func (h *Handler) deleteK9Unit(c *gin.Context) { deleteEntity(h, c, h.k9Units) }

// @Summary List responders
// @Tags Responders
// @Produce json
// @Success 200 {array} models.Responder
// @Router /responders [get]
func (h *Handler) listResponders(c *gin.Context) { listEntities(h, c, h.responders) }

// @Summary Get responder by ID
// @Tags Responders
// @Produce json
// @Param id path string true "Responder ID"
// @Success 200 {object} models.Responder
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not found"
// @Router /responders/{id} [get]
func (h *Handler) getResponder(c *gin.Context) { getEntity(h, c, h.responders) }

// @Summary Create a responder
// @Tags Responders
// @Accept json
// @Produce json
// @Param responder body CreateResponderRequest true "Responder creation request"
// @Success 201 {object} models.Responder
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /responders [post]
func (h *Handler) createResponder(c *gin.Context) {
	createEntity(h, c, h.responders.name, DTOToResponderModel, h.dashboardService.CreateResponder)
}

// @Summary Patch a responder
// @Description Fields missing from the body keep their values. id, kind and createdAt cannot be changed.
// @Tags Responders
// @Accept json
// @Produce json
// @Param id path string true "Responder ID"
// @Param patch body object true "Partial responder"
// @Success 200 {object} models.Responder
// @Failure 400 {object} map[string]string "Invalid ID, body or resulting record"
// @Failure 404 {object} map[string]string "Not found"
// @Router /responders/{id} [patch]
func (h *Handler) patchResponder(c *gin.Context) { patchEntity(h, c, h.responders) }

// @Summary Delete a responder
// @Tags Responders
// @Param id path string true "Responder ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not found"
// @Router /responders/{id} [delete]
func (h *Handler) deleteResponder(c *gin.Context) { deleteEntity(h, c, h.responders) }

// @Summary List incidents
// @Tags Incidents
// @Produce json
// @Success 200 {array} models.Incident
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) { listEntities(h, c, h.incidents) }

// @Summary Get incident by ID
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} models.Incident
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) { getEntity(h, c, h.incidents) }

// @Summary Create an incident
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} models.Incident
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	createEntity(h, c, h.incidents.name, DTOToIncidentModel, h.dashboardService.CreateIncident)
}

// @Summary Patch an incident
// @Description Fields missing from the body keep their values. id, kind and createdAt cannot be changed.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Param patch body object true "Partial incident"
// @Success 200 {object} models.Incident
// @Failure 400 {object} map[string]string "Invalid ID, body or resulting record"
// @Failure 404 {object} map[string]string "Not found"
// @Router /incidents/{id} [patch]
func (h *Handler) patchIncident(c *gin.Context) { patchEntity(h, c, h.incidents) }

// @Summary Delete an incident
// @Tags Incidents
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not found"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) { deleteEntity(h, c, h.incidents) }

// @Summary List zones
// @Tags Zones
// @Produce json
// @Success 200 {array} models.Zone
// @Router /zones [get]
func (h *Handler) listZones(c *gin.Context) { listEntities(h, c, h.zones) }

// @Summary Get zone by ID
// @Tags Zones
// @Produce json
// @Param id path string true "Zone ID"
// @Success 200 {object} models.Zone
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not found"
// @Router /zones/{id} [get]
func (h *Handler) getZone(c *gin.Context) { getEntity(h, c, h.zones) }

// @Summary Create a zone
// @Tags Zones
// @Accept json
// @Produce json
// @Param zone body CreateZoneRequest true "Zone creation request"
// @Success 201 {object} models.Zone
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /zones [post]
func (h *Handler) createZone(c *gin.Context) {
	createEntity(h, c, h.zones.name, DTOToZoneModel, h.dashboardService.CreateZone)
}

// @Summary Patch a zone
// @Description Fields missing from the body keep their values. id, kind and createdAt cannot be changed.
// @Tags Zones
// @Accept json
// @Produce json
// @Param id path string true "Zone ID"
// @Param patch body object true "Partial zone"
// @Success 200 {object} models.Zone
// @Failure 400 {object} map[string]string "Invalid ID, body or resulting record"
// @Failure 404 {object} map[string]string "Not found"
// @Router /zones/{id} [patch]
func (h *Handler) patchZone(c *gin.Context) { patchEntity(h, c, h.zones) }

// @Summary Delete a zone
// @Tags Zones
// @Param id path string true "Zone ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not found"
// @Router /zones/{id} [delete]
func (h *Handler) deleteZone(c *gin.Context) { deleteEntity(h, c, h.zones) }
