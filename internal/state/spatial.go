package state

import (
	"fmt"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/shenikar/sar_dashboard/internal/models"
)

const (
	tolerance     = 1e-7
	minChildren   = 2
	maxChildren   = 8
	dimensions    = 2
	earthRadiusKm = 6371.0
)

// indexedEntity - точечная сущность в R-дереве (lat, lon)
type indexedEntity struct {
	entity models.Entity
	pos    models.LatLonAlt
	rect   *rtreego.Rect
}

func (e *indexedEntity) Bounds() *rtreego.Rect {
	return e.rect
}

type spatialIndex struct {
	tree *rtreego.Rtree
}

// spatialLocked строит индекс при первом запросе после изменения. Вызывать под s.mu.
func (s *AppState) spatialLocked() *spatialIndex {
	if s.index != nil {
		return s.index
	}
	entities := make([]models.Entity, 0)
	entities = s.drones.appendEntities(entities)
	entities = s.k9Units.appendEntities(entities)
	entities = s.responders.appendEntities(entities)
	entities = s.incidents.appendEntities(entities)

	tree := rtreego.NewTree(dimensions, minChildren, maxChildren)
	for _, e := range entities {
		pos, ok := models.PointPosition(e)
		if !ok {
			continue
		}
		rect := rtreego.Point{pos.Lat, pos.Lon}.ToRect(tolerance)
		tree.Insert(&indexedEntity{entity: e, pos: pos, rect: rect})
	}
	s.index = &spatialIndex{tree: tree}
	return s.index
}

// EntitiesWithin возвращает точечные сущности (включая инциденты), попадающие в AOI.
// Порядок: по возрастанию расстояния до центра.
func (s *AppState) EntitiesWithin(aoi models.MissionAOI) ([]models.Entity, error) {
	if aoi.RadiusMeters < 0 {
		return nil, fmt.Errorf("negative aoi radius: %v", aoi.RadiusMeters)
	}

	// Индекс перестраивается лениво, поэтому нужна эксклюзивная блокировка
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.spatialLocked()

	radiusKm := aoi.RadiusMeters / 1000
	boxes, err := searchBoxes(aoi.Center, radiusKm)
	if err != nil {
		return nil, err
	}

	type hit struct {
		entity models.Entity
		dist   float64
	}
	hits := make([]hit, 0)
	seen := make(map[*indexedEntity]struct{})
	for _, box := range boxes {
		for _, result := range idx.tree.SearchIntersect(box) {
			item, ok := result.(*indexedEntity)
			if !ok {
				continue
			}
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}
			dist := haversineKm(aoi.Center.Lat, aoi.Center.Lon, item.pos.Lat, item.pos.Lon)
			if dist <= radiusKm {
				hits = append(hits, hit{entity: item.entity, dist: dist})
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })
	out := make([]models.Entity, len(hits))
	for i, h := range hits {
		out[i] = h.entity
	}
	return out, nil
}

// searchBoxes строит прямоугольники (lat, lon), покрывающие круг AOI.
// Круг, пересекающий антимеридиан, делится на два прямоугольника; круг, накрывающий полюс,
// занимает всю полосу долгот.
func searchBoxes(center models.LatLon, radiusKm float64) ([]*rtreego.Rect, error) {
	latDeg := (radiusKm / earthRadiusKm) * (180 / math.Pi)
	minLat := math.Max(center.Lat-latDeg, -90)
	maxLat := math.Min(center.Lat+latDeg, 90)

	// Долготная полуширина берется по широте, ближайшей к полюсу
	lonDeg := 180.0
	if edge := math.Max(math.Abs(minLat), math.Abs(maxLat)); edge < 90 {
		if c := math.Cos(edge * math.Pi / 180); c > 1e-9 {
			lonDeg = latDeg / c
		}
	}

	type span struct{ lo, hi float64 }
	var spans []span
	minLon, maxLon := center.Lon-lonDeg, center.Lon+lonDeg
	switch {
	case lonDeg >= 180:
		spans = []span{{-180, 180}}
	case minLon < -180:
		spans = []span{{minLon + 360, 180}, {-180, maxLon}}
	case maxLon > 180:
		spans = []span{{minLon, 180}, {-180, maxLon - 360}}
	default:
		spans = []span{{minLon, maxLon}}
	}

	boxes := make([]*rtreego.Rect, 0, len(spans))
	for _, sp := range spans {
		box, err := rtreego.NewRect(
			rtreego.Point{minLat - tolerance, sp.lo - tolerance},
			[]float64{maxLat - minLat + 2*tolerance, sp.hi - sp.lo + 2*tolerance},
		)
		if err != nil {
			return nil, fmt.Errorf("invalid aoi bounds: %w", err)
		}
		boxes = append(boxes, box)
	}
	return boxes, nil
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
