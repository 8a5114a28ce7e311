package v1

import (
	"time"

	"github.com/shenikar/sar_dashboard/internal/camera"
	"github.com/shenikar/sar_dashboard/internal/view"
)

// LatLonRequest DTO точки без высоты
// @Description DTO точки без высоты
type LatLonRequest struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lon *float64 `json:"lon" validate:"required,gte=-180,lte=180"`
}

// LatLonAltRequest DTO точки с необязательной высотой
// @Description DTO точки с необязательной высотой
type LatLonAltRequest struct {
	Lat       *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lon       *float64 `json:"lon" validate:"required,gte=-180,lte=180"`
	AltMeters *float64 `json:"altMeters,omitempty"`
}

// CreateDroneRequest DTO для создания дрона
// @Description DTO для создания дрона
type CreateDroneRequest struct {
	Label            string           `json:"label" validate:"required,max=255"`
	Notes            string           `json:"notes,omitempty"`
	Callsign         string           `json:"callsign" validate:"required,max=64"`
	Model            string           `json:"model,omitempty"`
	Status           string           `json:"status" validate:"required,oneof=idle preflight in_flight hover_hold returning charging lost_comm"`
	Position         LatLonAltRequest `json:"position"`
	HeadingDeg       *float64         `json:"headingDeg,omitempty" validate:"omitempty,gte=0,lt=360"`
	GroundSpeedMps   *float64         `json:"groundSpeedMps,omitempty" validate:"omitempty,gte=0"`
	BatteryPct       *float64         `json:"batteryPct,omitempty" validate:"omitempty,gte=0,lte=100"`
	LinkQualityPct   *float64         `json:"linkQualityPct,omitempty" validate:"omitempty,gte=0,lte=100"`
	HomeLocationID   string           `json:"homeLocationId,omitempty"`
	CurrentMissionID string           `json:"currentMissionId,omitempty"`
}

// CreateK9UnitRequest DTO для создания кинологического расчета
// @Description DTO для создания кинологического расчета
type CreateK9UnitRequest struct {
	Label             string            `json:"label" validate:"required,max=255"`
	Notes             string            `json:"notes,omitempty"`
	DogName           string            `json:"dogName" validate:"required"`
	HandlerName       string            `json:"handlerName" validate:"required"`
	Status            string            `json:"status" validate:"required,oneof=off_duty en_route searching resting returning"`
	LastKnownPosition *LatLonAltRequest `json:"lastKnownPosition,omitempty"`
	LastScentEventID  string            `json:"lastScentEventId,omitempty"`
	Capabilities      []string          `json:"capabilities,omitempty" validate:"omitempty,dive,oneof=trailing airscent cadaver"`
}

// CreateResponderRequest DTO для создания спасателя
// @Description DTO для создания спасателя
type CreateResponderRequest struct {
	Label             string            `json:"label" validate:"required,max=255"`
	Notes             string            `json:"notes,omitempty"`
	Role              string            `json:"role" validate:"required,oneof=ground_team command medic logistics"`
	TeamName          string            `json:"teamName,omitempty"`
	LastKnownPosition *LatLonAltRequest `json:"lastKnownPosition,omitempty"`
	IsInField         bool              `json:"isInField"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Label            string           `json:"label" validate:"required,max=255"`
	Notes            string           `json:"notes,omitempty"`
	IncidentType     string           `json:"incidentType" validate:"required,oneof=last_known_position clue sighting evidence note"`
	Severity         string           `json:"severity" validate:"required,oneof=info minor major critical"`
	Position         LatLonAltRequest `json:"position"`
	RelatedEntityIDs []string         `json:"relatedEntityIds,omitempty" validate:"omitempty,dive,uuid4"`
}

// ScentMetaRequest DTO метаданных зоны запаха
// @Description DTO метаданных зоны запаха
type ScentMetaRequest struct {
	K9ID            string    `json:"k9Id" validate:"required,uuid4"`
	ScentType       string    `json:"scentType" validate:"required,oneof=airscent trailing cadaver unknown"`
	Confidence      string    `json:"confidence" validate:"required,oneof=low medium high"`
	FirstDetectedAt time.Time `json:"firstDetectedAt" validate:"required"`
}

// CreateZoneRequest DTO для создания зоны
// @Description DTO для создания зоны
type CreateZoneRequest struct {
	Label                 string             `json:"label" validate:"required,max=255"`
	Notes                 string             `json:"notes,omitempty"`
	ZoneType              string             `json:"zoneType" validate:"required,oneof=search_area scent_zone hazard staging no_fly"`
	Vertices              []LatLonAltRequest `json:"vertices" validate:"required,min=3,dive"`
	AltitudeFloorMeters   *float64           `json:"altitudeFloorMeters,omitempty"`
	AltitudeCeilingMeters *float64           `json:"altitudeCeilingMeters,omitempty"`
	Active                bool               `json:"active"`
	ScentMeta             *ScentMetaRequest  `json:"scentMeta,omitempty"`
}

// MissionAOIRequest DTO района интересов
// @Description DTO района интересов
type MissionAOIRequest struct {
	Center       LatLonRequest `json:"center"`
	RadiusMeters float64       `json:"radiusMeters" validate:"required,gt=0"`
}

// MissionRequest DTO для установки активной миссии
// @Description DTO для установки активной миссии
type MissionRequest struct {
	ID     string             `json:"id,omitempty" validate:"omitempty,uuid4"`
	Name   string             `json:"name" validate:"required,min=2,max=255"`
	Status string             `json:"status" validate:"required,oneof=active planning completed"`
	AOI    *MissionAOIRequest `json:"aoi,omitempty"`
}

// MapDefaultRequest DTO сохраненного вида карты. Углы в градусах.
// @Description DTO сохраненного вида карты
type MapDefaultRequest struct {
	Center  LatLonRequest `json:"center"`
	Height  float64       `json:"height" validate:"required,gt=0"`
	Heading *float64      `json:"heading,omitempty"`
	Pitch   *float64      `json:"pitch,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Roll    *float64      `json:"roll,omitempty"`
}

// ThemeRequest DTO режима темы
// @Description DTO режима темы
type ThemeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=light dark"`
}

// ThemeResponse DTO ответа с режимом темы
// @Description DTO ответа с режимом темы
type ThemeResponse struct {
	Mode string `json:"mode"`
}

// CameraResponse DTO ответа с начальным видом и командой камеры
// @Description Команда отсутствует, если позиционировать нечего
type CameraResponse struct {
	View    view.InitialView `json:"view" swaggertype:"object"`
	Command *camera.Command  `json:"command"`
}
