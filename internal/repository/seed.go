package repository

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/shenikar/sar_dashboard/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultScenario []byte

// Сценарий хранит время как "часов назад" относительно момента загрузки,
// а связи между сущностями - по label.
type seedTimes struct {
	CreatedHoursAgo float64  `yaml:"createdHoursAgo"`
	UpdatedHoursAgo *float64 `yaml:"updatedHoursAgo"`
}

type seedDrone struct {
	seedTimes      `yaml:",inline"`
	Label          string             `yaml:"label"`
	Notes          string             `yaml:"notes"`
	Callsign       string             `yaml:"callsign"`
	Model          string             `yaml:"model"`
	Status         models.DroneStatus `yaml:"status"`
	Position       models.LatLonAlt   `yaml:"position"`
	HeadingDeg     *float64           `yaml:"headingDeg"`
	GroundSpeedMps *float64           `yaml:"groundSpeedMps"`
	BatteryPct     *float64           `yaml:"batteryPct"`
	LinkQualityPct *float64           `yaml:"linkQualityPct"`
}

type seedK9 struct {
	seedTimes         `yaml:",inline"`
	Label             string                `yaml:"label"`
	Notes             string                `yaml:"notes"`
	DogName           string                `yaml:"dogName"`
	HandlerName       string                `yaml:"handlerName"`
	Status            models.K9Status       `yaml:"status"`
	LastKnownPosition *models.LatLonAlt     `yaml:"lastKnownPosition"`
	Capabilities      []models.K9Capability `yaml:"capabilities"`
}

type seedResponder struct {
	seedTimes         `yaml:",inline"`
	Label             string               `yaml:"label"`
	Notes             string               `yaml:"notes"`
	Role              models.ResponderRole `yaml:"role"`
	TeamName          string               `yaml:"teamName"`
	LastKnownPosition *models.LatLonAlt    `yaml:"lastKnownPosition"`
	IsInField         bool                 `yaml:"isInField"`
}

type seedIncident struct {
	seedTimes    `yaml:",inline"`
	Label        string              `yaml:"label"`
	Notes        string              `yaml:"notes"`
	IncidentType models.IncidentType `yaml:"incidentType"`
	Severity     models.Severity     `yaml:"severity"`
	Position     models.LatLonAlt    `yaml:"position"`
	Related      []string            `yaml:"related"`
}

type seedScent struct {
	K9                    string                 `yaml:"k9"`
	ScentType             models.ScentType       `yaml:"scentType"`
	Confidence            models.ScentConfidence `yaml:"confidence"`
	FirstDetectedHoursAgo float64                `yaml:"firstDetectedHoursAgo"`
}

type seedZone struct {
	seedTimes             `yaml:",inline"`
	Label                 string             `yaml:"label"`
	Notes                 string             `yaml:"notes"`
	ZoneType              models.ZoneType    `yaml:"zoneType"`
	Vertices              []models.LatLonAlt `yaml:"vertices"`
	AltitudeFloorMeters   *float64           `yaml:"altitudeFloorMeters"`
	AltitudeCeilingMeters *float64           `yaml:"altitudeCeilingMeters"`
	Active                bool               `yaml:"active"`
	Scent                 *seedScent         `yaml:"scent"`
}

// Scenario - содержимое файла сценария
type Scenario struct {
	Drones     []seedDrone     `yaml:"drones"`
	K9Units    []seedK9        `yaml:"k9Units"`
	Responders []seedResponder `yaml:"responders"`
	Incidents  []seedIncident  `yaml:"incidents"`
	Zones      []seedZone      `yaml:"zones"`
}

// ParseScenario разбирает YAML сценария
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	return &sc, nil
}

// SeedDefault наполняет базу встроенным сценарием (пропавший турист, гора Тамалпайс)
func SeedDefault(db *Database, now time.Time) error {
	sc, err := ParseScenario(defaultScenario)
	if err != nil {
		return err
	}
	return Seed(db, sc, now)
}

// Seed наполняет базу сущностями сценария
func Seed(db *Database, sc *Scenario, now time.Time) error {
	hoursAgo := func(h float64) time.Time {
		return now.Add(-time.Duration(h * float64(time.Hour))).UTC()
	}
	base := func(kind models.EntityKind, label, notes string, ts seedTimes) models.BaseEntity {
		b := models.BaseEntity{
			ID:    models.NewID(),
			Kind:  kind,
			Label: label,
			Notes: notes,
		}
		b.CreatedAt = hoursAgo(ts.CreatedHoursAgo)
		if ts.UpdatedHoursAgo != nil {
			updated := hoursAgo(*ts.UpdatedHoursAgo)
			b.UpdatedAt = &updated
		}
		return b
	}
	byLabel := make(map[string]models.ID)

	for _, d := range sc.Drones {
		created, err := db.Drones.Create(models.Drone{
			BaseEntity:     base(models.KindDrone, d.Label, d.Notes, d.seedTimes),
			Callsign:       d.Callsign,
			Model:          d.Model,
			Status:         d.Status,
			Position:       d.Position,
			HeadingDeg:     d.HeadingDeg,
			GroundSpeedMps: d.GroundSpeedMps,
			BatteryPct:     d.BatteryPct,
			LinkQualityPct: d.LinkQualityPct,
		})
		if err != nil {
			return fmt.Errorf("seed drone %q: %w", d.Label, err)
		}
		byLabel[d.Label] = created.ID
	}

	for _, k := range sc.K9Units {
		created, err := db.K9Units.Create(models.K9Unit{
			BaseEntity:        base(models.KindK9, k.Label, k.Notes, k.seedTimes),
			DogName:           k.DogName,
			HandlerName:       k.HandlerName,
			Status:            k.Status,
			LastKnownPosition: k.LastKnownPosition,
			Capabilities:      k.Capabilities,
		})
		if err != nil {
			return fmt.Errorf("seed k9 unit %q: %w", k.Label, err)
		}
		byLabel[k.Label] = created.ID
	}

	for _, r := range sc.Responders {
		created, err := db.Responders.Create(models.Responder{
			BaseEntity:        base(models.KindResponder, r.Label, r.Notes, r.seedTimes),
			Role:              r.Role,
			TeamName:          r.TeamName,
			LastKnownPosition: r.LastKnownPosition,
			IsInField:         r.IsInField,
		})
		if err != nil {
			return fmt.Errorf("seed responder %q: %w", r.Label, err)
		}
		byLabel[r.Label] = created.ID
	}

	for _, i := range sc.Incidents {
		related := make([]models.ID, 0, len(i.Related))
		for _, label := range i.Related {
			id, ok := byLabel[label]
			if !ok {
				return fmt.Errorf("seed incident %q: unknown related entity %q", i.Label, label)
			}
			related = append(related, id)
		}
		if len(related) == 0 {
			related = nil
		}
		if _, err := db.Incidents.Create(models.Incident{
			BaseEntity:       base(models.KindIncident, i.Label, i.Notes, i.seedTimes),
			IncidentType:     i.IncidentType,
			Severity:         i.Severity,
			Position:         i.Position,
			RelatedEntityIDs: related,
		}); err != nil {
			return fmt.Errorf("seed incident %q: %w", i.Label, err)
		}
	}

	for _, z := range sc.Zones {
		zone := models.Zone{
			BaseEntity:            base(models.KindZone, z.Label, z.Notes, z.seedTimes),
			ZoneType:              z.ZoneType,
			Geometry:              models.Polygon{Vertices: z.Vertices},
			AltitudeFloorMeters:   z.AltitudeFloorMeters,
			AltitudeCeilingMeters: z.AltitudeCeilingMeters,
			Active:                z.Active,
		}
		if z.Scent != nil {
			k9ID, ok := byLabel[z.Scent.K9]
			if !ok {
				return fmt.Errorf("seed zone %q: unknown k9 unit %q", z.Label, z.Scent.K9)
			}
			zone.ScentMeta = &models.ScentZoneMeta{
				K9ID:            k9ID,
				ScentType:       z.Scent.ScentType,
				Confidence:      z.Scent.Confidence,
				FirstDetectedAt: hoursAgo(z.Scent.FirstDetectedHoursAgo),
			}
		}
		if _, err := db.Zones.Create(zone); err != nil {
			return fmt.Errorf("seed zone %q: %w", z.Label, err)
		}
	}
	return nil
}
