package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/sar_dashboard/internal/camera"
	"github.com/shenikar/sar_dashboard/internal/metrics"
	"github.com/shenikar/sar_dashboard/internal/models"
	"github.com/shenikar/sar_dashboard/internal/publisher"
	"github.com/shenikar/sar_dashboard/internal/repository"
	"github.com/shenikar/sar_dashboard/internal/state"
	"github.com/shenikar/sar_dashboard/internal/view"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNotFound - запись, миссия или настройка отсутствует
	ErrNotFound = errors.New("not found")
	// ErrInvalid - входные данные нарушают инварианты модели
	ErrInvalid = errors.New("invalid input")
)

const publishTimeout = 2 * time.Second

// DashboardService определяет контракт бизнес-логики дашборда
type DashboardService interface {
	Reload(ctx context.Context)

	InitialView(ctx context.Context) view.InitialView
	CameraCommand(ctx context.Context) (view.InitialView, *camera.Command)

	ActiveMission(ctx context.Context) (*models.Mission, error)
	SetActiveMission(ctx context.Context, mission models.Mission) (*models.Mission, error)
	ClearActiveMission(ctx context.Context)
	EntitiesInAOI(ctx context.Context) ([]models.Entity, error)

	MapDefault(ctx context.Context) (*models.MapDefaultView, error)
	SetMapDefault(ctx context.Context, v models.MapDefaultView) error
	ClearMapDefault(ctx context.Context)
	ThemeMode(ctx context.Context) models.ThemeMode
	SetThemeMode(ctx context.Context, mode models.ThemeMode) error

	ListDrones(ctx context.Context) []models.Drone
	GetDrone(ctx context.Context, id models.ID) (*models.Drone, error)
	CreateDrone(ctx context.Context, d models.Drone) (*models.Drone, error)
	UpdateDrone(ctx context.Context, id models.ID, patch func(*models.Drone) error) (*models.Drone, error)
	DeleteDrone(ctx context.Context, id models.ID) error

	ListK9Units(ctx context.Context) []models.K9Unit
	GetK9Unit(ctx context.Context, id models.ID) (*models.K9Unit, error)
	CreateK9Unit(ctx context.Context, k models.K9Unit) (*models.K9Unit, error)
	UpdateK9Unit(ctx context.Context, id models.ID, patch func(*models.K9Unit) error) (*models.K9Unit, error)
	DeleteK9Unit(ctx context.Context, id models.ID) error

	ListResponders(ctx context.Context) []models.Responder
	GetResponder(ctx context.Context, id models.ID) (*models.Responder, error)
	CreateResponder(ctx context.Context, r models.Responder) (*models.Responder, error)
	UpdateResponder(ctx context.Context, id models.ID, patch func(*models.Responder) error) (*models.Responder, error)
	DeleteResponder(ctx context.Context, id models.ID) error

	ListIncidents(ctx context.Context) []models.Incident
	GetIncident(ctx context.Context, id models.ID) (*models.Incident, error)
	CreateIncident(ctx context.Context, i models.Incident) (*models.Incident, error)
	UpdateIncident(ctx context.Context, id models.ID, patch func(*models.Incident) error) (*models.Incident, error)
	DeleteIncident(ctx context.Context, id models.ID) error

	ListZones(ctx context.Context) []models.Zone
	GetZone(ctx context.Context, id models.ID) (*models.Zone, error)
	CreateZone(ctx context.Context, z models.Zone) (*models.Zone, error)
	UpdateZone(ctx context.Context, id models.ID, patch func(*models.Zone) error) (*models.Zone, error)
	DeleteZone(ctx context.Context, id models.ID) error
}

type dashboardService struct {
	db        *repository.Database
	state     *state.AppState
	publisher publisher.ViewPublisher
	metrics   *metrics.Collector
	logger    *logrus.Logger
	now       func() time.Time

	// lastRevision защищает от публикации устаревшего вида при гонке слушателей
	mu           sync.Mutex
	lastRevision uint64

	drones     *entityCollection[models.Drone, *models.Drone]
	k9Units    *entityCollection[models.K9Unit, *models.K9Unit]
	responders *entityCollection[models.Responder, *models.Responder]
	incidents  *entityCollection[models.Incident, *models.Incident]
	zones      *entityCollection[models.Zone, *models.Zone]
}

// NewDashboardService создает сервис и подписывает его на изменения состояния.
// pub и m могут быть nil.
func NewDashboardService(db *repository.Database, st *state.AppState, pub publisher.ViewPublisher, m *metrics.Collector, logger *logrus.Logger) DashboardService {
	if pub == nil {
		pub = publisher.NoopPublisher{}
	}
	s := &dashboardService{
		db:        db,
		state:     st,
		publisher: pub,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}

	s.drones = newEntityCollection(s, models.KindDrone, db.Drones, st.UpdateDrone, st.DeleteDrone)
	s.k9Units = newEntityCollection(s, models.KindK9, db.K9Units, st.UpdateK9Unit, st.DeleteK9Unit)
	s.responders = newEntityCollection(s, models.KindResponder, db.Responders, st.UpdateResponder, st.DeleteResponder)
	s.incidents = newEntityCollection(s, models.KindIncident, db.Incidents, st.UpdateIncident, st.DeleteIncident)
	s.zones = newEntityCollection(s, models.KindZone, db.Zones, st.UpdateZone, st.DeleteZone)

	st.Subscribe(s.onStateChange)
	return s
}

// Reload заново заполняет состояние из мок-бэкенда
func (s *dashboardService) Reload(ctx context.Context) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "Reload",
	})
	s.state.LoadFrom(s.db)
	log.WithField("revision", s.state.Revision()).Info("State hydrated from mock backend")
}

// InitialView выбирает начальный вид по текущему состоянию
func (s *dashboardService) InitialView(ctx context.Context) view.InitialView {
	return s.selectView()
}

// CameraCommand возвращает начальный вид и команду камеры для него.
// Команда nil, если позиционировать нечего.
func (s *dashboardService) CameraCommand(ctx context.Context) (view.InitialView, *camera.Command) {
	iv := s.selectView()
	cmd := camera.Resolve(iv)
	if cmd != nil {
		s.metrics.ObserveCameraCommand(string(cmd.Kind))
	}
	return iv, cmd
}

func (s *dashboardService) selectView() view.InitialView {
	iv := view.Select(s.state)
	s.metrics.ObserveSelection(string(iv.Type()))
	return iv
}

// onStateChange пересчитывает вид ровно один раз на каждое изменение и публикует команду
func (s *dashboardService) onStateChange(revision uint64) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "dashboard",
		"method":   "onStateChange",
		"revision": revision,
	})

	s.mu.Lock()
	if revision <= s.lastRevision {
		s.mu.Unlock()
		log.Debug("Skipping stale state revision")
		return
	}
	s.lastRevision = revision
	s.mu.Unlock()

	iv, cmd := s.CameraCommand(context.Background())
	event := publisher.ViewEvent{
		Revision:  revision,
		ViewType:  iv.Type(),
		View:      iv,
		Command:   cmd,
		Timestamp: s.now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish view event")
		return
	}
	log.WithField("view_type", iv.Type()).Debug("View event published")
}

// --- Миссия ---

func (s *dashboardService) ActiveMission(ctx context.Context) (*models.Mission, error) {
	m := s.state.ActiveMission()
	if m == nil {
		return nil, fmt.Errorf("service: no active mission: %w", ErrNotFound)
	}
	return m, nil
}

// SetActiveMission делает миссию активной. Пустые id и createdAt заполняются.
func (s *dashboardService) SetActiveMission(ctx context.Context, m models.Mission) (*models.Mission, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "SetActiveMission",
		"name":    m.Name,
	})

	if err := validateMission(m); err != nil {
		log.WithError(err).Warn("Rejected mission")
		return nil, fmt.Errorf("service: could not set mission: %w", err)
	}
	if m.ID == "" {
		m.ID = models.NewID()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.now().UTC()
	}

	s.state.SetActiveMission(&m)
	log.WithField("mission_id", m.ID).Info("Active mission set")
	return s.state.ActiveMission(), nil
}

func (s *dashboardService) ClearActiveMission(ctx context.Context) {
	s.state.ClearActiveMission()
	s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "ClearActiveMission",
	}).Info("Active mission cleared")
}

// EntitiesInAOI возвращает точечные сущности внутри AOI активной миссии
func (s *dashboardService) EntitiesInAOI(ctx context.Context) ([]models.Entity, error) {
	m := s.state.ActiveMission()
	if m == nil || m.AOI == nil {
		return nil, fmt.Errorf("service: no active mission AOI: %w", ErrNotFound)
	}
	entities, err := s.state.EntitiesWithin(*m.AOI)
	if err != nil {
		return nil, fmt.Errorf("service: could not query AOI: %w", err)
	}
	return entities, nil
}

func validateMission(m models.Mission) error {
	if m.Name == "" {
		return fmt.Errorf("%w: empty mission name", ErrInvalid)
	}
	if !m.Status.Valid() {
		return fmt.Errorf("%w: unknown mission status %q", ErrInvalid, m.Status)
	}
	if m.AOI != nil {
		if !m.AOI.Center.Valid() {
			return fmt.Errorf("%w: AOI center out of range", ErrInvalid)
		}
		if m.AOI.RadiusMeters <= 0 {
			return fmt.Errorf("%w: AOI radius must be positive", ErrInvalid)
		}
	}
	return nil
}

// --- Настройки ---

func (s *dashboardService) MapDefault(ctx context.Context) (*models.MapDefaultView, error) {
	v := s.state.MapDefault()
	if v == nil {
		return nil, fmt.Errorf("service: no saved map view: %w", ErrNotFound)
	}
	return v, nil
}

func (s *dashboardService) SetMapDefault(ctx context.Context, v models.MapDefaultView) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "SetMapDefault",
	})
	if !v.Center.Valid() {
		return fmt.Errorf("service: could not save map view: %w: center out of range", ErrInvalid)
	}
	if v.Height <= 0 {
		return fmt.Errorf("service: could not save map view: %w: height must be positive", ErrInvalid)
	}
	s.state.SetMapDefault(&v)
	log.Info("Map default view saved")
	return nil
}

func (s *dashboardService) ClearMapDefault(ctx context.Context) {
	s.state.SetMapDefault(nil)
	s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "ClearMapDefault",
	}).Info("Map default view cleared")
}

func (s *dashboardService) ThemeMode(ctx context.Context) models.ThemeMode {
	return s.state.ThemeMode()
}

func (s *dashboardService) SetThemeMode(ctx context.Context, mode models.ThemeMode) error {
	if mode != models.ThemeLight && mode != models.ThemeDark {
		return fmt.Errorf("service: unknown theme mode %q: %w", mode, ErrInvalid)
	}
	s.state.SetThemeMode(mode)
	return nil
}

// --- Сущности ---

func (s *dashboardService) ListDrones(ctx context.Context) []models.Drone {
	return s.drones.list(ctx)
}

func (s *dashboardService) GetDrone(ctx context.Context, id models.ID) (*models.Drone, error) {
	return s.drones.get(ctx, id)
}

func (s *dashboardService) CreateDrone(ctx context.Context, d models.Drone) (*models.Drone, error) {
	return s.drones.create(ctx, d)
}

func (s *dashboardService) UpdateDrone(ctx context.Context, id models.ID, patch func(*models.Drone) error) (*models.Drone, error) {
	return s.drones.update(ctx, id, patch)
}

func (s *dashboardService) DeleteDrone(ctx context.Context, id models.ID) error {
	return s.drones.delete(ctx, id)
}

func (s *dashboardService) ListK9Units(ctx context.Context) []models.K9Unit {
	return s.k9Units.list(ctx)
}

func (s *dashboardService) GetK9Unit(ctx context.Context, id models.ID) (*models.K9Unit, error) {
	return s.k9Units.get(ctx, id)
}

func (s *dashboardService) CreateK9Unit(ctx context.Context, k models.K9Unit) (*models.K9Unit, error) {
	return s.k9Units.create(ctx, k)
}

func (s *dashboardService) UpdateK9Unit(ctx context.Context, id models.ID, patch func(*models.K9Unit) error) (*models.K9Unit, error) {
	return s.k9Units.update(ctx, id, patch)
}

func (s *dashboardService) DeleteK9Unit(ctx context.Context, id models.ID) error {
	return s.k9Units.delete(ctx, id)
}

func (s *dashboardService) ListResponders(ctx context.Context) []models.Responder {
	return s.responders.list(ctx)
}

func (s *dashboardService) GetResponder(ctx context.Context, id models.ID) (*models.Responder, error) {
	return s.responders.get(ctx, id)
}

func (s *dashboardService) CreateResponder(ctx context.Context, r models.Responder) (*models.Responder, error) {
	return s.responders.create(ctx, r)
}

func (s *dashboardService) UpdateResponder(ctx context.Context, id models.ID, patch func(*models.Responder) error) (*models.Responder, error) {
	return s.responders.update(ctx, id, patch)
}

func (s *dashboardService) DeleteResponder(ctx context.Context, id models.ID) error {
	return s.responders.delete(ctx, id)
}

func (s *dashboardService) ListIncidents(ctx context.Context) []models.Incident {
	return s.incidents.list(ctx)
}

func (s *dashboardService) GetIncident(ctx context.Context, id models.ID) (*models.Incident, error) {
	return s.incidents.get(ctx, id)
}

func (s *dashboardService) CreateIncident(ctx context.Context, i models.Incident) (*models.Incident, error) {
	return s.incidents.create(ctx, i)
}

func (s *dashboardService) UpdateIncident(ctx context.Context, id models.ID, patch func(*models.Incident) error) (*models.Incident, error) {
	return s.incidents.update(ctx, id, patch)
}

func (s *dashboardService) DeleteIncident(ctx context.Context, id models.ID) error {
	return s.incidents.delete(ctx, id)
}

func (s *dashboardService) ListZones(ctx context.Context) []models.Zone {
	return s.zones.list(ctx)
}

func (s *dashboardService) GetZone(ctx context.Context, id models.ID) (*models.Zone, error) {
	return s.zones.get(ctx, id)
}

func (s *dashboardService) CreateZone(ctx context.Context, z models.Zone) (*models.Zone, error) {
	return s.zones.create(ctx, z)
}

func (s *dashboardService) UpdateZone(ctx context.Context, id models.ID, patch func(*models.Zone) error) (*models.Zone, error) {
	return s.zones.update(ctx, id, patch)
}

func (s *dashboardService) DeleteZone(ctx context.Context, id models.ID) error {
	return s.zones.delete(ctx, id)
}
