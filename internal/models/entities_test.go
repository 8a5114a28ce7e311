package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func triangle() Polygon {
	return Polygon{Vertices: []LatLonAlt{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}, {Lat: 1, Lon: 0}}}
}

func TestPointPosition(t *testing.T) {
	pos := &LatLonAlt{Lat: 1, Lon: 2}
	cases := []struct {
		name   string
		entity Entity
		ok     bool
	}{
		{"drone", &Drone{Position: *pos}, true},
		{"incident", &Incident{Position: *pos}, true},
		{"k9 with position", &K9Unit{LastKnownPosition: pos}, true},
		{"k9 without position", &K9Unit{}, false},
		{"responder with position", &Responder{LastKnownPosition: pos}, true},
		{"responder without position", &Responder{}, false},
		{"zone", &Zone{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PointPosition(tc.entity)
			assert.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, *pos, got)
			}
		})
	}
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID(NewID()))
	assert.True(t, IsValidID("550e8400-e29b-41d4-a716-446655440000"))
	assert.False(t, IsValidID("invalid-id"))
	assert.False(t, IsValidID("550e8400-e29b-11d4-a716-446655440000")) // v1
}

func TestValidate(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	before := created.Add(-time.Hour)

	cases := []struct {
		name    string
		entity  Entity
		wantErr bool
	}{
		{
			name:   "valid drone",
			entity: &Drone{BaseEntity: BaseEntity{ID: "d1", Kind: KindDrone}, Status: DroneIdle, Position: LatLonAlt{Lat: 37.9, Lon: -122.5}},
		},
		{
			name:    "unknown drone status",
			entity:  &Drone{BaseEntity: BaseEntity{ID: "d1", Kind: KindDrone}, Status: "exploded"},
			wantErr: true,
		},
		{
			name: "battery over 100",
			entity: &Drone{BaseEntity: BaseEntity{ID: "d1", Kind: KindDrone}, Status: DroneIdle,
				BatteryPct: floatPtr(900)},
			wantErr: true,
		},
		{
			name: "heading of 360",
			entity: &Drone{BaseEntity: BaseEntity{ID: "d1", Kind: KindDrone}, Status: DroneIdle,
				HeadingDeg: floatPtr(360)},
			wantErr: true,
		},
		{
			name: "unknown k9 capability",
			entity: &K9Unit{BaseEntity: BaseEntity{ID: "k1", Kind: KindK9}, Status: K9Searching,
				Capabilities: []K9Capability{"tracking"}},
			wantErr: true,
		},
		{
			name:    "unknown responder role",
			entity:  &Responder{BaseEntity: BaseEntity{ID: "r1", Kind: KindResponder}, Role: "pilot"},
			wantErr: true,
		},
		{
			name: "unknown severity",
			entity: &Incident{BaseEntity: BaseEntity{ID: "i1", Kind: KindIncident}, IncidentType: IncidentClue,
				Severity: "catastrophic"},
			wantErr: true,
		},
		{
			name:    "zone without vertices",
			entity:  &Zone{BaseEntity: BaseEntity{ID: "z1", Kind: KindZone}, ZoneType: ZoneHazard},
			wantErr: true,
		},
		{
			name: "unknown zone type",
			entity: &Zone{BaseEntity: BaseEntity{ID: "z1", Kind: KindZone}, ZoneType: "lake",
				Geometry: triangle()},
			wantErr: true,
		},
		{
			name:    "kind mismatch",
			entity:  &Drone{BaseEntity: BaseEntity{ID: "d1", Kind: KindK9}},
			wantErr: true,
		},
		{
			name:    "empty id",
			entity:  &Incident{BaseEntity: BaseEntity{Kind: KindIncident}, IncidentType: IncidentClue, Severity: SeverityInfo},
			wantErr: true,
		},
		{
			name: "updatedAt before createdAt",
			entity: &Responder{BaseEntity: BaseEntity{ID: "r1", Kind: KindResponder,
				Timestamped: Timestamped{CreatedAt: created, UpdatedAt: &before}}, Role: RoleMedic},
			wantErr: true,
		},
		{
			name:    "latitude out of range",
			entity:  &K9Unit{BaseEntity: BaseEntity{ID: "k1", Kind: KindK9}, Status: K9Searching, LastKnownPosition: &LatLonAlt{Lat: 91}},
			wantErr: true,
		},
		{
			name: "scent meta on hazard zone",
			entity: &Zone{BaseEntity: BaseEntity{ID: "z1", Kind: KindZone}, ZoneType: ZoneHazard, Geometry: triangle(),
				ScentMeta: &ScentZoneMeta{ScentType: ScentAirscent, Confidence: ConfidenceHigh}},
			wantErr: true,
		},
		{
			name: "scent meta on scent zone",
			entity: &Zone{BaseEntity: BaseEntity{ID: "z1", Kind: KindZone}, ZoneType: ZoneScent, Geometry: triangle(),
				ScentMeta: &ScentZoneMeta{ScentType: ScentAirscent, Confidence: ConfidenceHigh}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.entity.Validate()
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidEntity)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTouch_NeverBeforeCreatedAt(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ts := Timestamped{CreatedAt: created}

	ts.Touch(created.Add(-time.Minute))

	require.NotNil(t, ts.UpdatedAt)
	assert.Equal(t, created, *ts.UpdatedAt)
}

func TestClone_DoesNotShareMemory(t *testing.T) {
	// Подготовка
	updated := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	k9 := K9Unit{
		BaseEntity:        BaseEntity{ID: "k1", Kind: KindK9, Timestamped: Timestamped{UpdatedAt: &updated}},
		LastKnownPosition: &LatLonAlt{Lat: 37.9, Lon: -122.5, AltMeters: floatPtr(500)},
		Capabilities:      []K9Capability{K9Trailing},
	}
	zone := Zone{Geometry: triangle(), AltitudeFloorMeters: floatPtr(10), ScentMeta: &ScentZoneMeta{K9ID: "k1"}}
	zone.Geometry.Vertices[0].AltMeters = floatPtr(100)

	// Действие
	k9Copy := k9.Clone()
	k9Copy.LastKnownPosition.Lat = 999
	*k9Copy.LastKnownPosition.AltMeters = 0
	k9Copy.Capabilities[0] = K9Cadaver
	*k9Copy.UpdatedAt = updated.Add(time.Hour)

	zoneCopy := zone.Clone()
	zoneCopy.Geometry.Vertices[0].Lat = 50
	*zoneCopy.Geometry.Vertices[0].AltMeters = 0
	*zoneCopy.AltitudeFloorMeters = 0
	zoneCopy.ScentMeta.K9ID = "other"

	// Проверки
	assert.Equal(t, 37.9, k9.LastKnownPosition.Lat)
	assert.Equal(t, 500.0, *k9.LastKnownPosition.AltMeters)
	assert.Equal(t, K9Trailing, k9.Capabilities[0])
	assert.Equal(t, updated, *k9.UpdatedAt)

	assert.Equal(t, 0.0, zone.Geometry.Vertices[0].Lat)
	assert.Equal(t, 100.0, *zone.Geometry.Vertices[0].AltMeters)
	assert.Equal(t, 10.0, *zone.AltitudeFloorMeters)
	assert.Equal(t, ID("k1"), zone.ScentMeta.K9ID)
}
