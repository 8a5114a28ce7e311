package models

import "slices"

var (
	droneStatuses   = []DroneStatus{DroneIdle, DronePreflight, DroneInFlight, DroneHoverHold, DroneReturning, DroneCharging, DroneLostComm}
	k9Statuses      = []K9Status{K9OffDuty, K9EnRoute, K9Searching, K9Resting, K9Returning}
	k9Capabilities  = []K9Capability{K9Trailing, K9Airscent, K9Cadaver}
	responderRoles  = []ResponderRole{RoleGroundTeam, RoleCommand, RoleMedic, RoleLogistics}
	incidentTypes   = []IncidentType{IncidentLastKnownPosition, IncidentClue, IncidentSighting, IncidentEvidence, IncidentNote}
	severities      = []Severity{SeverityInfo, SeverityMinor, SeverityMajor, SeverityCritical}
	zoneTypes       = []ZoneType{ZoneSearchArea, ZoneScent, ZoneHazard, ZoneStaging, ZoneNoFly}
	scentTypes      = []ScentType{ScentAirscent, ScentTrailing, ScentCadaver, ScentUnknown}
	confidences     = []ScentConfidence{ConfidenceLow, ConfidenceMedium, ConfidenceHigh}
	missionStatuses = []MissionStatus{MissionActive, MissionPlanning, MissionCompleted}
)

func (s DroneStatus) Valid() bool     { return slices.Contains(droneStatuses, s) }
func (s K9Status) Valid() bool        { return slices.Contains(k9Statuses, s) }
func (c K9Capability) Valid() bool    { return slices.Contains(k9Capabilities, c) }
func (r ResponderRole) Valid() bool   { return slices.Contains(responderRoles, r) }
func (t IncidentType) Valid() bool    { return slices.Contains(incidentTypes, t) }
func (s Severity) Valid() bool        { return slices.Contains(severities, s) }
func (t ZoneType) Valid() bool        { return slices.Contains(zoneTypes, t) }
func (t ScentType) Valid() bool       { return slices.Contains(scentTypes, t) }
func (c ScentConfidence) Valid() bool { return slices.Contains(confidences, c) }
func (s MissionStatus) Valid() bool   { return slices.Contains(missionStatuses, s) }

// MinZoneVertices - минимальное число вершин полигона зоны
const MinZoneVertices = 3

// inRange проверяет необязательное значение: nil допустим
func inRange(v *float64, lo, hi float64) bool {
	return v == nil || (*v >= lo && *v <= hi)
}

// validHeading проверяет курс в диапазоне [0, 360)
func validHeading(v *float64) bool {
	return v == nil || (*v >= 0 && *v < 360)
}
