package models

import (
	"fmt"
	"time"
)

type ZoneType string

const (
	ZoneSearchArea ZoneType = "search_area"
	ZoneScent      ZoneType = "scent_zone"
	ZoneHazard     ZoneType = "hazard"
	ZoneStaging    ZoneType = "staging"
	ZoneNoFly      ZoneType = "no_fly"
)

type ScentType string

const (
	ScentAirscent ScentType = "airscent"
	ScentTrailing ScentType = "trailing"
	ScentCadaver  ScentType = "cadaver"
	ScentUnknown  ScentType = "unknown"
)

type ScentConfidence string

const (
	ConfidenceLow    ScentConfidence = "low"
	ConfidenceMedium ScentConfidence = "medium"
	ConfidenceHigh   ScentConfidence = "high"
)

// Polygon - упорядоченный список вершин
type Polygon struct {
	Vertices []LatLonAlt `json:"vertices"`
}

// ScentZoneMeta хранится только у зон типа scent_zone
type ScentZoneMeta struct {
	K9ID            ID              `json:"k9Id"`
	ScentType       ScentType       `json:"scentType"`
	Confidence      ScentConfidence `json:"confidence"`
	FirstDetectedAt time.Time       `json:"firstDetectedAt"`
}

// Zone - площадная сущность: район поиска, опасная зона, бесполетная зона и т.д.
type Zone struct {
	BaseEntity
	ZoneType              ZoneType       `json:"zoneType"`
	Geometry              Polygon        `json:"geometry"`
	AltitudeFloorMeters   *float64       `json:"altitudeFloorMeters,omitempty"`
	AltitudeCeilingMeters *float64       `json:"altitudeCeilingMeters,omitempty"`
	Active                bool           `json:"active"`
	ScentMeta             *ScentZoneMeta `json:"scentMeta,omitempty"`
}

func (*Zone) isEntity() {}

func (z *Zone) Validate() error {
	if err := z.validate(KindZone); err != nil {
		return err
	}
	if !z.ZoneType.Valid() {
		return fmt.Errorf("%w: unknown zone type %q", ErrInvalidEntity, z.ZoneType)
	}
	if z.ScentMeta != nil {
		if z.ZoneType != ZoneScent {
			return fmt.Errorf("%w: scent metadata on %s zone", ErrInvalidEntity, z.ZoneType)
		}
		if !z.ScentMeta.ScentType.Valid() || !z.ScentMeta.Confidence.Valid() {
			return fmt.Errorf("%w: invalid scent metadata", ErrInvalidEntity)
		}
	}
	if len(z.Geometry.Vertices) < MinZoneVertices {
		return fmt.Errorf("%w: zone needs at least %d vertices, got %d", ErrInvalidEntity, MinZoneVertices, len(z.Geometry.Vertices))
	}
	for _, v := range z.Geometry.Vertices {
		if !v.Valid() {
			return fmt.Errorf("%w: zone vertex out of range", ErrInvalidEntity)
		}
	}
	if z.AltitudeFloorMeters != nil && z.AltitudeCeilingMeters != nil && *z.AltitudeFloorMeters > *z.AltitudeCeilingMeters {
		return fmt.Errorf("%w: altitude floor above ceiling", ErrInvalidEntity)
	}
	return nil
}
