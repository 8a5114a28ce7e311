package models

import "time"

type MissionStatus string

const (
	MissionActive    MissionStatus = "active"
	MissionPlanning  MissionStatus = "planning"
	MissionCompleted MissionStatus = "completed"
)

// MissionAOI - район интересов миссии: центр и радиус в метрах
type MissionAOI struct {
	Center       LatLon  `json:"center"`
	RadiusMeters float64 `json:"radiusMeters"`
}

type Mission struct {
	ID        ID            `json:"id"`
	Name      string        `json:"name"`
	Status    MissionStatus `json:"status"`
	AOI       *MissionAOI   `json:"aoi,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}
