package state

import (
	"testing"

	"github.com/shenikar/sar_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitiesWithin(t *testing.T) {
	s := New()
	s.SetDrones([]models.Drone{
		drone("d1", "near", 37.9236, -122.5966), // ~15 m
		drone("d2", "far", 37.9500, -122.5965),  // ~2.9 km
	})
	s.SetK9Units([]models.K9Unit{
		k9("k1", "center", &models.LatLonAlt{Lat: 37.9235, Lon: -122.5965}),
		k9("k2", "unknown", nil),
	})
	s.SetIncidents([]models.Incident{{
		BaseEntity: models.BaseEntity{ID: "i1", Kind: models.KindIncident, Label: "clue"},
		Position:   models.LatLonAlt{Lat: 37.9240, Lon: -122.5970}, // ~70 m
	}})
	aoi := models.MissionAOI{Center: models.LatLon{Lat: 37.9235, Lon: -122.5965}, RadiusMeters: 500}

	got, err := s.EntitiesWithin(aoi)

	require.NoError(t, err)
	assert.Equal(t, []string{"center", "near", "clue"}, labels(got))
}

func TestEntitiesWithin_IndexRebuiltAfterChange(t *testing.T) {
	s := New()
	aoi := models.MissionAOI{Center: models.LatLon{Lat: 10, Lon: 20}, RadiusMeters: 1000}

	got, err := s.EntitiesWithin(aoi)
	require.NoError(t, err)
	assert.Empty(t, got)

	s.UpdateDrone(drone("d1", "Moose-1", 10.001, 20.001))

	got, err = s.EntitiesWithin(aoi)
	require.NoError(t, err)
	assert.Equal(t, []string{"Moose-1"}, labels(got))
}

func TestEntitiesWithin_NegativeRadius(t *testing.T) {
	_, err := New().EntitiesWithin(models.MissionAOI{RadiusMeters: -1})
	assert.Error(t, err)
}

func TestEntitiesWithin_AcrossAntimeridian(t *testing.T) {
	cases := []struct {
		name   string
		center models.LatLon
		drone  models.Drone
	}{
		{"east of the line", models.LatLon{Lat: 0, Lon: 179.999}, drone("d1", "west side", 0, -179.999)},
		{"west of the line", models.LatLon{Lat: -16.5, Lon: -179.99}, drone("d1", "east side", -16.5, 179.99)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Подготовка
			s := New()
			s.SetDrones([]models.Drone{tc.drone, drone("d2", "far away", 0, 0)})

			// Действие
			got, err := s.EntitiesWithin(models.MissionAOI{Center: tc.center, RadiusMeters: 5000})

			// Проверки
			require.NoError(t, err)
			assert.Equal(t, []string{tc.drone.Label}, labels(got))
		})
	}
}

func TestEntitiesWithin_NearPole(t *testing.T) {
	s := New()
	s.SetDrones([]models.Drone{
		drone("d1", "other side of the pole", 89.95, 10),
		drone("d2", "same side", 89.95, -170),
		drone("d3", "too far south", 88, -170),
	})

	got, err := s.EntitiesWithin(models.MissionAOI{Center: models.LatLon{Lat: 89.95, Lon: -170}, RadiusMeters: 20000})

	require.NoError(t, err)
	assert.Equal(t, []string{"same side", "other side of the pole"}, labels(got))
}

func TestEntitiesWithin_CenteredOnPole(t *testing.T) {
	s := New()
	s.SetDrones([]models.Drone{
		drone("d1", "a", 89.99, -179),
		drone("d2", "b", 89.99, 0),
		drone("d3", "c", 89.99, 179),
	})

	got, err := s.EntitiesWithin(models.MissionAOI{Center: models.LatLon{Lat: 90, Lon: 0}, RadiusMeters: 5000})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, labels(got))
}
