// Package state содержит контейнер состояния приложения: активную миссию,
// отслеживаемые сущности и пользовательские настройки.
package state

import (
	"sync"

	"github.com/shenikar/sar_dashboard/internal/models"
	"github.com/shenikar/sar_dashboard/internal/repository"
)

// Listener вызывается один раз на каждое изменение состояния
type Listener func(revision uint64)

// AppState - явно создаваемый контейнер состояния. Жизненным циклом владеет корень композиции.
type AppState struct {
	mu sync.RWMutex

	activeMission *models.Mission

	drones     keyed[models.Drone, *models.Drone]
	k9Units    keyed[models.K9Unit, *models.K9Unit]
	responders keyed[models.Responder, *models.Responder]
	incidents  keyed[models.Incident, *models.Incident]
	zones      keyed[models.Zone, *models.Zone]

	mapDefault *models.MapDefaultView
	themeMode  models.ThemeMode

	revision  uint64
	listeners []Listener
	index     *spatialIndex
}

// New создает пустое состояние со светлой темой
func New() *AppState {
	return &AppState{
		drones:     newKeyed[models.Drone, *models.Drone](),
		k9Units:    newKeyed[models.K9Unit, *models.K9Unit](),
		responders: newKeyed[models.Responder, *models.Responder](),
		incidents:  newKeyed[models.Incident, *models.Incident](),
		zones:      newKeyed[models.Zone, *models.Zone](),
		themeMode:  models.ThemeLight,
	}
}

// Subscribe регистрирует слушателя изменений
func (s *AppState) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Revision возвращает номер последнего изменения
func (s *AppState) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// mutate выполняет изменение под блокировкой и уведомляет слушателей после ее снятия
func (s *AppState) mutate(fn func() bool) bool {
	s.mu.Lock()
	changed := fn()
	if !changed {
		s.mu.Unlock()
		return false
	}
	s.revision++
	s.index = nil
	rev := s.revision
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(rev)
	}
	return true
}

// --- Миссия ---

// ActiveMission возвращает копию активной миссии или nil
func (s *AppState) ActiveMission() *models.Mission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeMission == nil {
		return nil
	}
	m := s.activeMission.Clone()
	return &m
}

func (s *AppState) SetActiveMission(m *models.Mission) {
	s.mutate(func() bool {
		if m == nil {
			s.activeMission = nil
			return true
		}
		cp := m.Clone()
		s.activeMission = &cp
		return true
	})
}

func (s *AppState) ClearActiveMission() {
	s.SetActiveMission(nil)
}

// --- Сущности ---

func (s *AppState) SetDrones(items []models.Drone) {
	s.mutate(func() bool { s.drones.replace(items); return true })
}

func (s *AppState) SetK9Units(items []models.K9Unit) {
	s.mutate(func() bool { s.k9Units.replace(items); return true })
}

func (s *AppState) SetResponders(items []models.Responder) {
	s.mutate(func() bool { s.responders.replace(items); return true })
}

func (s *AppState) SetIncidents(items []models.Incident) {
	s.mutate(func() bool { s.incidents.replace(items); return true })
}

func (s *AppState) SetZones(items []models.Zone) {
	s.mutate(func() bool { s.zones.replace(items); return true })
}

func (s *AppState) UpdateDrone(d models.Drone) {
	s.mutate(func() bool { s.drones.put(d); return true })
}

func (s *AppState) UpdateK9Unit(k models.K9Unit) {
	s.mutate(func() bool { s.k9Units.put(k); return true })
}

func (s *AppState) UpdateResponder(r models.Responder) {
	s.mutate(func() bool { s.responders.put(r); return true })
}

func (s *AppState) UpdateIncident(i models.Incident) {
	s.mutate(func() bool { s.incidents.put(i); return true })
}

func (s *AppState) UpdateZone(z models.Zone) {
	s.mutate(func() bool { s.zones.put(z); return true })
}

func (s *AppState) DeleteDrone(id models.ID) bool {
	return s.mutate(func() bool { return s.drones.remove(id) })
}

func (s *AppState) DeleteK9Unit(id models.ID) bool {
	return s.mutate(func() bool { return s.k9Units.remove(id) })
}

func (s *AppState) DeleteResponder(id models.ID) bool {
	return s.mutate(func() bool { return s.responders.remove(id) })
}

func (s *AppState) DeleteIncident(id models.ID) bool {
	return s.mutate(func() bool { return s.incidents.remove(id) })
}

func (s *AppState) DeleteZone(id models.ID) bool {
	return s.mutate(func() bool { return s.zones.remove(id) })
}

func (s *AppState) Drones() []models.Drone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drones.values()
}

func (s *AppState) K9Units() []models.K9Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.k9Units.values()
}

func (s *AppState) Responders() []models.Responder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.responders.values()
}

func (s *AppState) Incidents() []models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.incidents.values()
}

func (s *AppState) Zones() []models.Zone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.zones.values()
}

// AllActiveEntities возвращает отслеживаемые точечные сущности: дроны, затем K9, затем
// спасателей. Инциденты и зоны в выборку не входят.
func (s *AppState) AllActiveEntities() []models.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Entity, 0, len(s.drones.order)+len(s.k9Units.order)+len(s.responders.order))
	out = s.drones.appendEntities(out)
	out = s.k9Units.appendEntities(out)
	out = s.responders.appendEntities(out)
	return out
}

// LoadFrom заполняет срезы сущностей из мок-бэкенда
func (s *AppState) LoadFrom(db *repository.Database) {
	drones := db.Drones.GetAll()
	k9s := db.K9Units.GetAll()
	responders := db.Responders.GetAll()
	incidents := db.Incidents.GetAll()
	zones := db.Zones.GetAll()

	s.mutate(func() bool {
		s.drones.replace(drones)
		s.k9Units.replace(k9s)
		s.responders.replace(responders)
		s.incidents.replace(incidents)
		s.zones.replace(zones)
		return true
	})
}

// --- Настройки ---

// MapDefault возвращает копию сохраненного вида карты или nil
func (s *AppState) MapDefault() *models.MapDefaultView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.mapDefault == nil {
		return nil
	}
	v := s.mapDefault.Clone()
	return &v
}

func (s *AppState) SetMapDefault(v *models.MapDefaultView) {
	s.mutate(func() bool {
		if v == nil {
			s.mapDefault = nil
			return true
		}
		cp := v.Clone()
		s.mapDefault = &cp
		return true
	})
}

func (s *AppState) ThemeMode() models.ThemeMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.themeMode
}

// SetThemeMode не уведомляет слушателей: тема не влияет на начальный вид карты
func (s *AppState) SetThemeMode(mode models.ThemeMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.themeMode = mode
}
