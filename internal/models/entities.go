package models

import (
	"errors"
	"fmt"
)

// ErrInvalidEntity возвращается, если сущность нарушает инварианты модели
var ErrInvalidEntity = errors.New("invalid entity")

// EntityKind - дискриминант сущности
type EntityKind string

const (
	KindDrone     EntityKind = "drone"
	KindK9        EntityKind = "k9"
	KindResponder EntityKind = "responder"
	KindIncident  EntityKind = "incident"
	KindZone      EntityKind = "zone"
)

// BaseEntity - общие поля всех сущностей
type BaseEntity struct {
	ID    ID         `json:"id"`
	Kind  EntityKind `json:"kind"`
	Label string     `json:"label"`
	Notes string     `json:"notes,omitempty"`
	Timestamped
}

// Base возвращает общие поля сущности
func (b *BaseEntity) Base() *BaseEntity {
	return b
}

func (b *BaseEntity) validate(kind EntityKind) error {
	if b.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidEntity)
	}
	if b.Kind != kind {
		return fmt.Errorf("%w: kind %q does not match %q", ErrInvalidEntity, b.Kind, kind)
	}
	if b.UpdatedAt != nil && b.UpdatedAt.Before(b.CreatedAt) {
		return fmt.Errorf("%w: updatedAt is before createdAt", ErrInvalidEntity)
	}
	return nil
}

// Entity - закрытое объединение Drone | K9Unit | Responder | Incident | Zone
type Entity interface {
	Base() *BaseEntity
	Validate() error
	isEntity()
}

type DroneStatus string

const (
	DroneIdle      DroneStatus = "idle"
	DronePreflight DroneStatus = "preflight"
	DroneInFlight  DroneStatus = "in_flight"
	DroneHoverHold DroneStatus = "hover_hold"
	DroneReturning DroneStatus = "returning"
	DroneCharging  DroneStatus = "charging"
	DroneLostComm  DroneStatus = "lost_comm"
)

// Drone - беспилотник
type Drone struct {
	BaseEntity
	Callsign         string      `json:"callsign"`
	Model            string      `json:"model,omitempty"`
	Status           DroneStatus `json:"status"`
	Position         LatLonAlt   `json:"position"`
	HeadingDeg       *float64    `json:"headingDeg,omitempty"`
	GroundSpeedMps   *float64    `json:"groundSpeedMps,omitempty"`
	BatteryPct       *float64    `json:"batteryPct,omitempty"`
	LinkQualityPct   *float64    `json:"linkQualityPct,omitempty"`
	HomeLocationID   ID          `json:"homeLocationId,omitempty"`
	CurrentMissionID ID          `json:"currentMissionId,omitempty"`
}

func (*Drone) isEntity() {}

func (d *Drone) Validate() error {
	if err := d.validate(KindDrone); err != nil {
		return err
	}
	if !d.Status.Valid() {
		return fmt.Errorf("%w: unknown drone status %q", ErrInvalidEntity, d.Status)
	}
	if !d.Position.Valid() {
		return fmt.Errorf("%w: drone position out of range", ErrInvalidEntity)
	}
	if !validHeading(d.HeadingDeg) {
		return fmt.Errorf("%w: drone heading out of range", ErrInvalidEntity)
	}
	if d.GroundSpeedMps != nil && *d.GroundSpeedMps < 0 {
		return fmt.Errorf("%w: negative drone ground speed", ErrInvalidEntity)
	}
	if !inRange(d.BatteryPct, 0, 100) || !inRange(d.LinkQualityPct, 0, 100) {
		return fmt.Errorf("%w: drone percentage out of range", ErrInvalidEntity)
	}
	return nil
}

type K9Status string

const (
	K9OffDuty   K9Status = "off_duty"
	K9EnRoute   K9Status = "en_route"
	K9Searching K9Status = "searching"
	K9Resting   K9Status = "resting"
	K9Returning K9Status = "returning"
)

type K9Capability string

const (
	K9Trailing K9Capability = "trailing"
	K9Airscent K9Capability = "airscent"
	K9Cadaver  K9Capability = "cadaver"
)

// K9Unit - кинологический расчет (собака и проводник)
type K9Unit struct {
	BaseEntity
	DogName           string         `json:"dogName"`
	HandlerName       string         `json:"handlerName"`
	Status            K9Status       `json:"status"`
	LastKnownPosition *LatLonAlt     `json:"lastKnownPosition,omitempty"`
	LastScentEventID  ID             `json:"lastScentEventId,omitempty"`
	Capabilities      []K9Capability `json:"capabilities,omitempty"`
}

func (*K9Unit) isEntity() {}

func (k *K9Unit) Validate() error {
	if err := k.validate(KindK9); err != nil {
		return err
	}
	if !k.Status.Valid() {
		return fmt.Errorf("%w: unknown k9 status %q", ErrInvalidEntity, k.Status)
	}
	if k.LastKnownPosition != nil && !k.LastKnownPosition.Valid() {
		return fmt.Errorf("%w: k9 position out of range", ErrInvalidEntity)
	}
	for _, c := range k.Capabilities {
		if !c.Valid() {
			return fmt.Errorf("%w: unknown k9 capability %q", ErrInvalidEntity, c)
		}
	}
	return nil
}

type ResponderRole string

const (
	RoleGroundTeam ResponderRole = "ground_team"
	RoleCommand    ResponderRole = "command"
	RoleMedic      ResponderRole = "medic"
	RoleLogistics  ResponderRole = "logistics"
)

// Responder - наземная группа, штаб, медики или логистика
type Responder struct {
	BaseEntity
	Role              ResponderRole `json:"role"`
	TeamName          string        `json:"teamName,omitempty"`
	LastKnownPosition *LatLonAlt    `json:"lastKnownPosition,omitempty"`
	IsInField         bool          `json:"isInField"`
}

func (*Responder) isEntity() {}

func (r *Responder) Validate() error {
	if err := r.validate(KindResponder); err != nil {
		return err
	}
	if !r.Role.Valid() {
		return fmt.Errorf("%w: unknown responder role %q", ErrInvalidEntity, r.Role)
	}
	if r.LastKnownPosition != nil && !r.LastKnownPosition.Valid() {
		return fmt.Errorf("%w: responder position out of range", ErrInvalidEntity)
	}
	return nil
}

type IncidentType string

const (
	IncidentLastKnownPosition IncidentType = "last_known_position"
	IncidentClue              IncidentType = "clue"
	IncidentSighting          IncidentType = "sighting"
	IncidentEvidence          IncidentType = "evidence"
	IncidentNote              IncidentType = "note"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityMinor    Severity = "minor"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
)

// Incident - отметка на карте: улика, наблюдение, последняя известная позиция
type Incident struct {
	BaseEntity
	IncidentType     IncidentType `json:"incidentType"`
	Severity         Severity     `json:"severity"`
	Position         LatLonAlt    `json:"position"`
	RelatedEntityIDs []ID         `json:"relatedEntityIds,omitempty"`
}

func (*Incident) isEntity() {}

func (i *Incident) Validate() error {
	if err := i.validate(KindIncident); err != nil {
		return err
	}
	if !i.IncidentType.Valid() {
		return fmt.Errorf("%w: unknown incident type %q", ErrInvalidEntity, i.IncidentType)
	}
	if !i.Severity.Valid() {
		return fmt.Errorf("%w: unknown severity %q", ErrInvalidEntity, i.Severity)
	}
	if !i.Position.Valid() {
		return fmt.Errorf("%w: incident position out of range", ErrInvalidEntity)
	}
	return nil
}

// PointPosition возвращает точку сущности: обязательную позицию у дронов и инцидентов,
// последнюю известную у K9 и спасателей. У зон точки нет.
func PointPosition(e Entity) (LatLonAlt, bool) {
	switch v := e.(type) {
	case *Drone:
		return v.Position, true
	case *Incident:
		return v.Position, true
	case *K9Unit:
		if v.LastKnownPosition != nil {
			return *v.LastKnownPosition, true
		}
	case *Responder:
		if v.LastKnownPosition != nil {
			return *v.LastKnownPosition, true
		}
	case *Zone:
	}
	return LatLonAlt{}, false
}
