package v1

import (
	"encoding/json"
	"fmt"

	"github.com/shenikar/sar_dashboard/internal/models"
)

func toLatLon(dto LatLonRequest) models.LatLon {
	return models.LatLon{Lat: deref(dto.Lat), Lon: deref(dto.Lon)}
}

func toLatLonAlt(dto LatLonAltRequest) models.LatLonAlt {
	return models.LatLonAlt{Lat: deref(dto.Lat), Lon: deref(dto.Lon), AltMeters: dto.AltMeters}
}

func toLatLonAltPtr(dto *LatLonAltRequest) *models.LatLonAlt {
	if dto == nil {
		return nil
	}
	p := toLatLonAlt(*dto)
	return &p
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// DTOToDroneModel преобразует DTO создания в доменную модель
func DTOToDroneModel(dto CreateDroneRequest) models.Drone {
	return models.Drone{
		BaseEntity:       models.BaseEntity{Kind: models.KindDrone, Label: dto.Label, Notes: dto.Notes},
		Callsign:         dto.Callsign,
		Model:            dto.Model,
		Status:           models.DroneStatus(dto.Status),
		Position:         toLatLonAlt(dto.Position),
		HeadingDeg:       dto.HeadingDeg,
		GroundSpeedMps:   dto.GroundSpeedMps,
		BatteryPct:       dto.BatteryPct,
		LinkQualityPct:   dto.LinkQualityPct,
		HomeLocationID:   dto.HomeLocationID,
		CurrentMissionID: dto.CurrentMissionID,
	}
}

func DTOToK9UnitModel(dto CreateK9UnitRequest) models.K9Unit {
	caps := make([]models.K9Capability, 0, len(dto.Capabilities))
	for _, c := range dto.Capabilities {
		caps = append(caps, models.K9Capability(c))
	}
	return models.K9Unit{
		BaseEntity:        models.BaseEntity{Kind: models.KindK9, Label: dto.Label, Notes: dto.Notes},
		DogName:           dto.DogName,
		HandlerName:       dto.HandlerName,
		Status:            models.K9Status(dto.Status),
		LastKnownPosition: toLatLonAltPtr(dto.LastKnownPosition),
		LastScentEventID:  dto.LastScentEventID,
		Capabilities:      caps,
	}
}

func DTOToResponderModel(dto CreateResponderRequest) models.Responder {
	return models.Responder{
		BaseEntity:        models.BaseEntity{Kind: models.KindResponder, Label: dto.Label, Notes: dto.Notes},
		Role:              models.ResponderRole(dto.Role),
		TeamName:          dto.TeamName,
		LastKnownPosition: toLatLonAltPtr(dto.LastKnownPosition),
		IsInField:         dto.IsInField,
	}
}

func DTOToIncidentModel(dto CreateIncidentRequest) models.Incident {
	return models.Incident{
		BaseEntity:       models.BaseEntity{Kind: models.KindIncident, Label: dto.Label, Notes: dto.Notes},
		IncidentType:     models.IncidentType(dto.IncidentType),
		Severity:         models.Severity(dto.Severity),
		Position:         toLatLonAlt(dto.Position),
		RelatedEntityIDs: append([]models.ID(nil), dto.RelatedEntityIDs...),
	}
}

func DTOToZoneModel(dto CreateZoneRequest) models.Zone {
	vertices := make([]models.LatLonAlt, 0, len(dto.Vertices))
	for _, v := range dto.Vertices {
		vertices = append(vertices, toLatLonAlt(v))
	}
	z := models.Zone{
		BaseEntity:            models.BaseEntity{Kind: models.KindZone, Label: dto.Label, Notes: dto.Notes},
		ZoneType:              models.ZoneType(dto.ZoneType),
		Geometry:              models.Polygon{Vertices: vertices},
		AltitudeFloorMeters:   dto.AltitudeFloorMeters,
		AltitudeCeilingMeters: dto.AltitudeCeilingMeters,
		Active:                dto.Active,
	}
	if dto.ScentMeta != nil {
		z.ScentMeta = &models.ScentZoneMeta{
			K9ID:            dto.ScentMeta.K9ID,
			ScentType:       models.ScentType(dto.ScentMeta.ScentType),
			Confidence:      models.ScentConfidence(dto.ScentMeta.Confidence),
			FirstDetectedAt: dto.ScentMeta.FirstDetectedAt.UTC(),
		}
	}
	return z
}

// DTOToMissionModel преобразует DTO миссии. Пустой id будет сгенерирован сервисом.
func DTOToMissionModel(dto MissionRequest) models.Mission {
	m := models.Mission{
		ID:     dto.ID,
		Name:   dto.Name,
		Status: models.MissionStatus(dto.Status),
	}
	if dto.AOI != nil {
		m.AOI = &models.MissionAOI{
			Center:       toLatLon(dto.AOI.Center),
			RadiusMeters: dto.AOI.RadiusMeters,
		}
	}
	return m
}

func DTOToMapDefaultModel(dto MapDefaultRequest) models.MapDefaultView {
	return models.MapDefaultView{
		Center:  toLatLon(dto.Center),
		Height:  dto.Height,
		Heading: dto.Heading,
		Pitch:   dto.Pitch,
		Roll:    dto.Roll,
	}
}

// mergePatch накладывает JSON-патч на глубокую копию записи.
// Поля, отсутствующие в патче, сохраняют прежние значения.
func mergePatch[T any](current *T, patch []byte) error {
	raw, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("marshal current record: %w", err)
	}
	var merged T
	if err := json.Unmarshal(raw, &merged); err != nil {
		return fmt.Errorf("copy current record: %w", err)
	}
	if err := json.Unmarshal(patch, &merged); err != nil {
		return fmt.Errorf("apply patch: %w", err)
	}
	*current = merged
	return nil
}
