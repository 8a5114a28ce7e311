package camera

import (
	"math"
	"testing"
	"time"

	"github.com/shenikar/sar_dashboard/internal/models"
	"github.com/shenikar/sar_dashboard/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// spyViewer запоминает все вызовы
type spyViewer struct {
	spheres      []BoundingSphere
	durations    []time.Duration
	destinations []r3.Vec
	orientations []Orientation
}

func (s *spyViewer) FlyToBoundingSphere(sphere BoundingSphere, d time.Duration) {
	s.spheres = append(s.spheres, sphere)
	s.durations = append(s.durations, d)
}

func (s *spyViewer) SetView(dest r3.Vec, o Orientation) {
	s.destinations = append(s.destinations, dest)
	s.orientations = append(s.orientations, o)
}

func (s *spyViewer) calls() int {
	return len(s.spheres) + len(s.destinations)
}

func ptr(v float64) *float64 { return &v }

func TestPosition_MissionAOI(t *testing.T) {
	v := &spyViewer{}
	aoi := models.MissionAOI{Center: models.LatLon{Lat: 10, Lon: 20}, RadiusMeters: 500}

	ok := Position(v, view.MissionAOI{AOI: aoi})

	require.True(t, ok)
	require.Len(t, v.spheres, 1)
	assert.Equal(t, 1, v.calls())
	assert.Equal(t, 500.0, v.spheres[0].Radius)
	want := FromDegrees(20, 10, 0)
	assert.InDelta(t, 0, r3.Norm(r3.Sub(want, v.spheres[0].Center)), eps)
	assert.Zero(t, v.durations[0])
}

func TestPosition_FitEntitiesPadsTwoPointSphere(t *testing.T) {
	v := &spyViewer{}
	entities := []models.Entity{
		&models.Drone{Position: models.LatLonAlt{Lat: 0, Lon: 0}},
		&models.Drone{Position: models.LatLonAlt{Lat: 0, Lon: 2}},
	}

	ok := Position(v, view.FitEntities{Entities: entities})

	require.True(t, ok)
	require.Len(t, v.spheres, 1)
	chord := r3.Norm(r3.Sub(FromDegrees(0, 0, 0), FromDegrees(2, 0, 0)))
	assert.InDelta(t, chord/2*PaddingFactor, v.spheres[0].Radius, eps)
	// На экваторе хорда между (0,0) и (0,2) равна 2a*sin(1°)
	assert.InDelta(t, wgs84Radii.X*math.Sin(toRadians(1))*PaddingFactor, v.spheres[0].Radius, 1e-3)
}

func TestPosition_FitEntitiesSkipsUnpositioned(t *testing.T) {
	v := &spyViewer{}
	entities := []models.Entity{
		&models.K9Unit{},
		&models.Responder{LastKnownPosition: &models.LatLonAlt{Lat: 37.9, Lon: -122.5, AltMeters: ptr(480)}},
		&models.Zone{Geometry: models.Polygon{Vertices: []models.LatLonAlt{{Lat: 1, Lon: 1}}}},
	}

	ok := Position(v, view.FitEntities{Entities: entities})

	require.True(t, ok)
	require.Len(t, v.spheres, 1)
	assert.InDelta(t, 0, v.spheres[0].Radius, eps)
	want := FromDegrees(-122.5, 37.9, 480)
	assert.InDelta(t, 0, r3.Norm(r3.Sub(want, v.spheres[0].Center)), eps)
}

func TestPosition_FitEntitiesWithoutPositionsIssuesNothing(t *testing.T) {
	v := &spyViewer{}
	entities := []models.Entity{&models.K9Unit{}, &models.Responder{}}

	ok := Position(v, view.FitEntities{Entities: entities})

	assert.False(t, ok)
	assert.Zero(t, v.calls())
}

func TestPosition_SavedDefaultDefaults(t *testing.T) {
	v := &spyViewer{}
	saved := models.MapDefaultView{Center: models.LatLon{Lat: 1, Lon: 2}, Height: 1000}

	ok := Position(v, view.SavedDefault{View: saved})

	require.True(t, ok)
	require.Len(t, v.destinations, 1)
	assert.InDelta(t, 0, r3.Norm(r3.Sub(FromDegrees(2, 1, 1000), v.destinations[0])), eps)
	assert.InDelta(t, 0, v.orientations[0].Heading, eps)
	assert.InDelta(t, -math.Pi/2, v.orientations[0].Pitch, eps)
	assert.InDelta(t, 0, v.orientations[0].Roll, eps)
}

func TestPosition_SavedDefaultExplicitAngles(t *testing.T) {
	v := &spyViewer{}
	saved := models.MapDefaultView{
		Center:  models.LatLon{Lat: 1, Lon: 2},
		Height:  1000,
		Heading: ptr(90),
		Pitch:   ptr(0),
		Roll:    ptr(180),
	}

	Position(v, view.SavedDefault{View: saved})

	require.Len(t, v.orientations, 1)
	assert.InDelta(t, math.Pi/2, v.orientations[0].Heading, eps)
	assert.InDelta(t, 0, v.orientations[0].Pitch, eps)
	assert.InDelta(t, math.Pi, v.orientations[0].Roll, eps)
}

func TestPosition_PromptUserFallback(t *testing.T) {
	v := &spyViewer{}

	ok := Position(v, view.PromptUser{})

	require.True(t, ok)
	require.Len(t, v.destinations, 1)
	want := FromDegrees(-80.2482, 43.5448, 15000)
	assert.InDelta(t, 0, r3.Norm(r3.Sub(want, v.destinations[0])), eps)
	assert.InDelta(t, -math.Pi/2, v.orientations[0].Pitch, eps)
}

func TestPosition_NilView(t *testing.T) {
	v := &spyViewer{}
	assert.False(t, Position(v, nil))
	assert.Zero(t, v.calls())
}

func TestResolve(t *testing.T) {
	cmd := Resolve(view.MissionAOI{AOI: models.MissionAOI{Center: models.LatLon{Lat: 10, Lon: 20}, RadiusMeters: 500}})
	require.NotNil(t, cmd)
	assert.Equal(t, CommandFlyToBoundingSphere, cmd.Kind)
	require.NotNil(t, cmd.Sphere)
	assert.Equal(t, 500.0, cmd.Sphere.Radius)
	assert.Nil(t, cmd.Destination)

	cmd = Resolve(view.PromptUser{})
	require.NotNil(t, cmd)
	assert.Equal(t, CommandSetView, cmd.Kind)
	require.NotNil(t, cmd.Orientation)

	assert.Nil(t, Resolve(view.FitEntities{Entities: []models.Entity{&models.K9Unit{}}}))
}

func TestRecorder_Count(t *testing.T) {
	r := &Recorder{}
	assert.Nil(t, r.Last())

	Position(r, view.PromptUser{})
	Position(r, view.PromptUser{})

	assert.Equal(t, 2, r.Count())
	assert.Equal(t, CommandSetView, r.Last().Kind)
}
