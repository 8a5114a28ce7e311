package repository

import (
	"time"

	"github.com/shenikar/sar_dashboard/internal/models"
)

type (
	DroneRepository     = Collection[models.Drone, *models.Drone]
	K9Repository        = Collection[models.K9Unit, *models.K9Unit]
	ResponderRepository = Collection[models.Responder, *models.Responder]
	IncidentRepository  = Collection[models.Incident, *models.Incident]
	ZoneRepository      = Collection[models.Zone, *models.Zone]
)

// Database - мок-бэкенд: набор коллекций всех видов сущностей
type Database struct {
	Drones     *DroneRepository
	K9Units    *K9Repository
	Responders *ResponderRepository
	Incidents  *IncidentRepository
	Zones      *ZoneRepository
}

// NewDatabase создает пустой мок-бэкенд. now используется для createdAt/updatedAt.
func NewDatabase(now func() time.Time) *Database {
	return &Database{
		Drones:     NewCollection[models.Drone, *models.Drone]("drones", now),
		K9Units:    NewCollection[models.K9Unit, *models.K9Unit]("k9_units", now),
		Responders: NewCollection[models.Responder, *models.Responder]("responders", now),
		Incidents:  NewCollection[models.Incident, *models.Incident]("incidents", now),
		Zones:      NewCollection[models.Zone, *models.Zone]("zones", now),
	}
}
