package models

import (
	"time"

	"github.com/google/uuid"
)

// ID - непрозрачный уникальный идентификатор сущности (UUID v4)
type ID = string

// NewID генерирует новый идентификатор
func NewID() ID {
	return uuid.NewString()
}

// IsValidID проверяет, что строка является корректным UUID v4
func IsValidID(id string) bool {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	return parsed.Version() == 4 && parsed.Variant() == uuid.RFC4122
}

// LatLon - географическая точка без высоты
type LatLon struct {
	Lat float64 `json:"lat" yaml:"lat" validate:"latitude"`
	Lon float64 `json:"lon" yaml:"lon" validate:"longitude"`
}

// LatLonAlt - географическая точка с необязательной высотой в метрах
type LatLonAlt struct {
	Lat       float64  `json:"lat" yaml:"lat" validate:"latitude"`
	Lon       float64  `json:"lon" yaml:"lon" validate:"longitude"`
	AltMeters *float64 `json:"altMeters,omitempty" yaml:"altMeters,omitempty"`
}

// Alt возвращает высоту или 0, если она не задана
func (p LatLonAlt) Alt() float64 {
	if p.AltMeters == nil {
		return 0
	}
	return *p.AltMeters
}

// Valid проверяет диапазоны широты и долготы
func (p LatLon) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Valid проверяет диапазоны широты и долготы
func (p LatLonAlt) Valid() bool {
	return LatLon{Lat: p.Lat, Lon: p.Lon}.Valid()
}

// Timestamped - время создания и последнего изменения записи
type Timestamped struct {
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Touch проставляет новое время изменения
func (t *Timestamped) Touch(now time.Time) {
	if now.Before(t.CreatedAt) {
		now = t.CreatedAt
	}
	t.UpdatedAt = &now
}
