package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shenikar/sar_dashboard/internal/camera"
	"github.com/shenikar/sar_dashboard/internal/metrics"
	"github.com/shenikar/sar_dashboard/internal/models"
	"github.com/shenikar/sar_dashboard/internal/publisher"
	"github.com/shenikar/sar_dashboard/internal/repository"
	"github.com/shenikar/sar_dashboard/internal/service"
	"github.com/shenikar/sar_dashboard/internal/service/mocks"
	"github.com/shenikar/sar_dashboard/internal/state"
	"github.com/shenikar/sar_dashboard/internal/view"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var _ service.DashboardService = (*mocks.MockDashboardService)(nil)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockDashboardService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDashboardService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	handler := NewHandler(mockService, logger)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// newTestRouterWithService собирает роутер поверх настоящего сервиса и пустого мок-бэкенда
func newTestRouterWithService(t *testing.T) (service.DashboardService, *repository.Database, *gin.Engine) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	collector, err := metrics.NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)
	db := repository.NewDatabase(nil)
	svc := service.NewDashboardService(db, state.New(), publisher.NoopPublisher{}, collector, logger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(svc, logger).RegisterRoutes(router.Group("/api/v1"))
	return svc, db, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func ptr(v float64) *float64 { return &v }

func notFound(what string) error {
	return fmt.Errorf("service: %s: %w", what, service.ErrNotFound)
}

func TestGetInitialView_MissionAOI(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		InitialView(gomock.Any()).
		Return(view.MissionAOI{AOI: models.MissionAOI{Center: models.LatLon{Lat: 37.9, Lon: -122.6}, RadiusMeters: 3000}}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/map/initial-view", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"type":"mission-aoi","aoi":{"center":{"lat":37.9,"lon":-122.6},"radiusMeters":3000}}`, w.Body.String())
}

func TestGetCameraCommand_PromptUser(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	iv := view.PromptUser{}
	mockService.EXPECT().CameraCommand(gomock.Any()).Return(iv, camera.Resolve(iv)).Times(1)

	w := makeRequest(router, "GET", "/api/v1/map/camera", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		View    map[string]any  `json:"view"`
		Command *camera.Command `json:"command"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "prompt-user", resp.View["type"])
	require.NotNil(t, resp.Command)
	assert.Equal(t, camera.CommandSetView, resp.Command.Kind)
	require.NotNil(t, resp.Command.Orientation)
	assert.InDelta(t, -1.5707963, resp.Command.Orientation.Pitch, 1e-6)
}

func TestGetCameraCommand_NothingToPosition(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().CameraCommand(gomock.Any()).Return(view.FitEntities{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/map/camera", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"view":{"type":"fit-entities","entities":[]},"command":null}`, w.Body.String())
}

func TestGetMission_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ActiveMission(gomock.Any()).Return(nil, notFound("no active mission")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/mission", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "active mission not found")
}

func TestPutMission_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := MissionRequest{
		Name:   "Mt. Tam missing hiker",
		Status: "active",
		AOI:    &MissionAOIRequest{Center: LatLonRequest{Lat: ptr(37.9235), Lon: ptr(-122.5965)}, RadiusMeters: 3000},
	}

	mockService.EXPECT().
		SetActiveMission(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m models.Mission) (*models.Mission, error) {
			assert.Equal(t, models.MissionActive, m.Status)
			require.NotNil(t, m.AOI)
			assert.Equal(t, 37.9235, m.AOI.Center.Lat)
			m.ID = models.NewID()
			m.CreatedAt = time.Now().UTC()
			return &m, nil
		}).Times(1)

	w := makeRequest(router, "PUT", "/api/v1/mission", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.Mission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, models.IsValidID(resp.ID))
	assert.Equal(t, reqBody.Name, resp.Name)
}

func TestPutMission_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SetActiveMission(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"status":"active"}`},
		{"unknown status", `{"name":"Op","status":"paused"}`},
		{"zero radius", `{"name":"Op","status":"active","aoi":{"center":{"lat":1,"lon":2},"radiusMeters":0}}`},
		{"missing center", `{"name":"Op","status":"active","aoi":{"radiusMeters":10}}`},
		{"bad json", `{"name": "Op"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := makeRequest(router, "PUT", "/api/v1/mission", bytes.NewBufferString(tt.body))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestDeleteMission(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ClearActiveMission(gomock.Any()).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/mission", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetAOIEntities(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	drone := &models.Drone{
		BaseEntity: models.BaseEntity{ID: models.NewID(), Kind: models.KindDrone, Label: "Alpha"},
		Position:   models.LatLonAlt{Lat: 37.9, Lon: -122.6},
	}
	mockService.EXPECT().EntitiesInAOI(gomock.Any()).Return([]models.Entity{drone}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/mission/aoi/entities", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "drone", resp[0]["kind"])
	assert.Equal(t, "Alpha", resp[0]["label"])
}

func TestGetAOIEntities_NoMission(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().EntitiesInAOI(gomock.Any()).Return(nil, notFound("no active mission AOI")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/mission/aoi/entities", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPutMapDefault(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		SetMapDefault(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v models.MapDefaultView) error {
			assert.Equal(t, 5000.0, v.Height)
			require.NotNil(t, v.Pitch)
			assert.Equal(t, 0.0, *v.Pitch)
			assert.Nil(t, v.Heading)
			return nil
		}).Times(1)

	w := makeRequest(router, "PUT", "/api/v1/settings/map-default",
		bytes.NewBufferString(`{"center":{"lat":43.5,"lon":-80.2},"height":5000,"pitch":0}`))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestPutMapDefault_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SetMapDefault(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/v1/settings/map-default",
		bytes.NewBufferString(`{"center":{"lat":43.5,"lon":-80.2},"height":0}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMapDefault_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().MapDefault(gomock.Any()).Return(nil, notFound("no saved map view")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/settings/map-default", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTheme(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SetThemeMode(gomock.Any(), models.ThemeDark).Return(nil).Times(1)
	mockService.EXPECT().ThemeMode(gomock.Any()).Return(models.ThemeDark).Times(1)

	w := makeRequest(router, "PUT", "/api/v1/settings/theme", bytes.NewBufferString(`{"mode":"dark"}`))
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "GET", "/api/v1/settings/theme", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"mode":"dark"}`, w.Body.String())

	w = makeRequest(router, "PUT", "/api/v1/settings/theme", bytes.NewBufferString(`{"mode":"sepia"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDrone_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateDroneRequest{
		Label:      "Alpha",
		Callsign:   "TAM-1",
		Status:     "in_flight",
		Position:   LatLonAltRequest{Lat: ptr(37.92), Lon: ptr(-122.59), AltMeters: ptr(120)},
		BatteryPct: ptr(80),
	}

	mockService.EXPECT().
		CreateDrone(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d models.Drone) (*models.Drone, error) {
			assert.Equal(t, models.DroneInFlight, d.Status)
			assert.Equal(t, 120.0, d.Position.Alt())
			d.ID = models.NewID()
			d.CreatedAt = time.Now().UTC()
			return &d, nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/drones", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp models.Drone
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "TAM-1", resp.Callsign)
	assert.Equal(t, models.KindDrone, resp.Kind)
}

func TestCreateDrone_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().CreateDrone(gomock.Any(), gomock.Any()).Times(0)

	tests := []struct {
		name string
		body string
	}{
		{"missing callsign", `{"label":"A","status":"idle","position":{"lat":1,"lon":2}}`},
		{"bad status", `{"label":"A","callsign":"A","status":"flying","position":{"lat":1,"lon":2}}`},
		{"missing position", `{"label":"A","callsign":"A","status":"idle"}`},
		{"latitude out of range", `{"label":"A","callsign":"A","status":"idle","position":{"lat":95,"lon":2}}`},
		{"battery over 100", `{"label":"A","callsign":"A","status":"idle","position":{"lat":1,"lon":2},"batteryPct":101}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := makeRequest(router, "POST", "/api/v1/drones", bytes.NewBufferString(tt.body))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateZone_ScentMeta(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	k9ID := models.NewID()
	body := fmt.Sprintf(`{
		"label":"Scent cone","zoneType":"scent_zone","active":true,
		"vertices":[{"lat":37.92,"lon":-122.59},{"lat":37.93,"lon":-122.59},{"lat":37.93,"lon":-122.58}],
		"scentMeta":{"k9Id":%q,"scentType":"trailing","confidence":"high","firstDetectedAt":"2024-05-01T10:00:00Z"}
	}`, k9ID)

	mockService.EXPECT().
		CreateZone(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, z models.Zone) (*models.Zone, error) {
			require.NotNil(t, z.ScentMeta)
			assert.Equal(t, k9ID, z.ScentMeta.K9ID)
			assert.Len(t, z.Geometry.Vertices, 3)
			return &z, nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/zones", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateIncident_ServiceRejects(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: could not create incident: %w", service.ErrInvalid)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents",
		bytes.NewBufferString(`{"label":"Jacket","incidentType":"clue","severity":"major","position":{"lat":1,"lon":2}}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateK9Unit_InternalError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().CreateK9Unit(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("boom")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/k9-units",
		bytes.NewBufferString(`{"label":"K9 Rex","dogName":"Rex","handlerName":"Sam","status":"searching","capabilities":["trailing"]}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetDrone(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := models.NewID()
	mockService.EXPECT().
		GetDrone(gomock.Any(), id).
		Return(&models.Drone{BaseEntity: models.BaseEntity{ID: id, Kind: models.KindDrone, Label: "Alpha"}}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/drones/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id)
}

func TestGetDrone_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().GetDrone(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/drones/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid drone ID")
}

func TestGetResponder_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := models.NewID()
	mockService.EXPECT().GetResponder(gomock.Any(), id).Return(nil, notFound("responders "+id)).Times(1)

	w := makeRequest(router, "GET", "/api/v1/responders/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "responder not found")
}

func TestPatchDrone_MergesBody(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := models.NewID()
	existing := models.Drone{
		BaseEntity: models.BaseEntity{ID: id, Kind: models.KindDrone, Label: "Alpha"},
		Callsign:   "TAM-1",
		Status:     models.DroneInFlight,
		Position:   models.LatLonAlt{Lat: 37.92, Lon: -122.59},
		BatteryPct: ptr(80),
	}

	mockService.EXPECT().
		UpdateDrone(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.ID, patch func(*models.Drone) error) (*models.Drone, error) {
			updated := existing
			require.NoError(t, patch(&updated))
			return &updated, nil
		}).Times(1)

	w := makeRequest(router, "PATCH", "/api/v1/drones/"+id,
		bytes.NewBufferString(`{"status":"returning","batteryPct":35}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.Drone
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.DroneReturning, resp.Status)
	assert.Equal(t, "TAM-1", resp.Callsign)
	require.NotNil(t, resp.BatteryPct)
	assert.Equal(t, 35.0, *resp.BatteryPct)
	// Патч не должен менять исходную запись через общий указатель
	assert.Equal(t, 80.0, *existing.BatteryPct)
}

func TestPatchDrone_BadBody(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().UpdateDrone(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	id := models.NewID()

	for _, body := range []string{`{"status":`, `[1,2]`, `{"position":"north"}`} {
		w := makeRequest(router, "PATCH", "/api/v1/drones/"+id, bytes.NewBufferString(body))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestPatchK9Unit_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := models.NewID()
	mockService.EXPECT().UpdateK9Unit(gomock.Any(), id, gomock.Any()).Return(nil, notFound("k9_units "+id)).Times(1)

	w := makeRequest(router, "PATCH", "/api/v1/k9-units/"+id, bytes.NewBufferString(`{"status":"resting"}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteZone(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := models.NewID()
	missing := models.NewID()
	mockService.EXPECT().DeleteZone(gomock.Any(), id).Return(nil).Times(1)
	mockService.EXPECT().DeleteZone(gomock.Any(), missing).Return(notFound("zones " + missing)).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/zones/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = makeRequest(router, "DELETE", "/api/v1/zones/"+missing, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListK9Units_Empty(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ListK9Units(gomock.Any()).Return(nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/k9-units", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestPatchDrone_MergeFailureIsNotCommitted(t *testing.T) {
	// Подготовка
	_, mockService, router := newTestHandler(t)
	id := models.NewID()
	// NaN не сериализуется в JSON, поэтому слияние патча падает
	broken := models.Drone{
		BaseEntity: models.BaseEntity{ID: id, Kind: models.KindDrone, Label: "Alpha"},
		Status:     models.DroneIdle,
		HeadingDeg: ptr(math.NaN()),
	}
	var patchErr error
	mockService.EXPECT().
		UpdateDrone(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.ID, patch func(*models.Drone) error) (*models.Drone, error) {
			candidate := broken
			if patchErr = patch(&candidate); patchErr != nil {
				return nil, fmt.Errorf("service: could not update drone: %w: %w", service.ErrInvalid, patchErr)
			}
			return &candidate, nil
		}).Times(1)

	// Действие
	w := makeRequest(router, "PATCH", "/api/v1/drones/"+id, bytes.NewBufferString(`{"status":"returning"}`))

	// Проверки
	require.Error(t, patchErr)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchEntities_InvalidResultRejected(t *testing.T) {
	// Подготовка
	svc, db, router := newTestRouterWithService(t)
	ctx := context.Background()
	drone, err := svc.CreateDrone(ctx, models.Drone{
		BaseEntity: models.BaseEntity{Label: "Moose-1"},
		Callsign:   "TAM-1",
		Status:     models.DroneInFlight,
		Position:   models.LatLonAlt{Lat: 37.92, Lon: -122.59},
		BatteryPct: ptr(72),
	})
	require.NoError(t, err)
	zone, err := svc.CreateZone(ctx, models.Zone{
		BaseEntity: models.BaseEntity{Label: "Sector A"},
		ZoneType:   models.ZoneSearchArea,
		Geometry: models.Polygon{Vertices: []models.LatLonAlt{
			{Lat: 37.923, Lon: -122.596}, {Lat: 37.926, Lon: -122.596}, {Lat: 37.926, Lon: -122.600},
		}},
	})
	require.NoError(t, err)

	cases := []struct {
		name string
		url  string
		body string
	}{
		{"unknown drone status", "/api/v1/drones/" + drone.ID, `{"status":"exploded"}`},
		{"battery over 100", "/api/v1/drones/" + drone.ID, `{"batteryPct":900}`},
		{"heading out of range", "/api/v1/drones/" + drone.ID, `{"headingDeg":-5}`},
		{"empty polygon", "/api/v1/zones/" + zone.ID, `{"geometry":{"vertices":[]}}`},
		{"unknown zone type", "/api/v1/zones/" + zone.ID, `{"zoneType":"lake"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Действие
			w := makeRequest(router, "PATCH", tc.url, bytes.NewBufferString(tc.body))

			// Проверки
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	storedDrone, _ := db.Drones.GetByID(drone.ID)
	assert.Equal(t, models.DroneInFlight, storedDrone.Status)
	assert.Equal(t, 72.0, *storedDrone.BatteryPct)
	assert.Nil(t, storedDrone.HeadingDeg)
	assert.Nil(t, storedDrone.UpdatedAt)

	storedZone, _ := db.Zones.GetByID(zone.ID)
	assert.Len(t, storedZone.Geometry.Vertices, 3)
	assert.Equal(t, models.ZoneSearchArea, storedZone.ZoneType)
	assert.Nil(t, storedZone.UpdatedAt)
}

func TestPatchDrone_ValidChangeWithRealService(t *testing.T) {
	svc, db, router := newTestRouterWithService(t)
	drone, err := svc.CreateDrone(context.Background(), models.Drone{
		BaseEntity: models.BaseEntity{Label: "Moose-1"},
		Callsign:   "TAM-1",
		Status:     models.DroneInFlight,
		Position:   models.LatLonAlt{Lat: 37.92, Lon: -122.59},
	})
	require.NoError(t, err)

	w := makeRequest(router, "PATCH", "/api/v1/drones/"+drone.ID, bytes.NewBufferString(`{"status":"returning","batteryPct":18}`))

	assert.Equal(t, http.StatusOK, w.Code)
	stored, _ := db.Drones.GetByID(drone.ID)
	assert.Equal(t, models.DroneReturning, stored.Status)
	assert.Equal(t, 18.0, *stored.BatteryPct)
	assert.NotNil(t, stored.UpdatedAt)
}
