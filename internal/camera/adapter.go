// Package camera переводит выбранный начальный вид в одну команду позиционирования
// внешнего 3D-вьюера.
package camera

import (
	"time"

	"github.com/shenikar/sar_dashboard/internal/models"
	"github.com/shenikar/sar_dashboard/internal/view"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// PaddingFactor расширяет сферу сущностей, чтобы они не обрезались краем кадра
	PaddingFactor = 1.5

	defaultHeadingDeg = 0.0
	defaultPitchDeg   = -90.0
	defaultRollDeg    = 0.0
)

// FallbackPose используется для PromptUser, пока нет пользовательского диалога (Гелф, Онтарио)
var FallbackPose = models.MapDefaultView{
	Center: models.LatLon{Lat: 43.5448, Lon: -80.2482},
	Height: 15000,
}

// Orientation - углы камеры в радианах
type Orientation struct {
	Heading float64 `json:"heading"`
	Pitch   float64 `json:"pitch"`
	Roll    float64 `json:"roll"`
}

// Viewer - внешний 3D-вьюер
type Viewer interface {
	FlyToBoundingSphere(sphere BoundingSphere, duration time.Duration)
	SetView(destination r3.Vec, orientation Orientation)
}

// Position отдает вьюеру не более одной команды. Возвращает false, если команда не отдана.
func Position(v Viewer, iv view.InitialView) bool {
	switch iv := iv.(type) {
	case view.MissionAOI:
		center := FromDegrees(iv.AOI.Center.Lon, iv.AOI.Center.Lat, 0)
		v.FlyToBoundingSphere(BoundingSphere{Center: center, Radius: iv.AOI.RadiusMeters}, 0)
		return true

	case view.FitEntities:
		points := EntityPoints(iv.Entities)
		if len(points) == 0 {
			return false
		}
		sphere := BoundingSphereFromPoints(points)
		sphere.Radius *= PaddingFactor
		v.FlyToBoundingSphere(sphere, 0)
		return true

	case view.SavedDefault:
		setView(v, iv.View)
		return true

	case view.PromptUser:
		setView(v, FallbackPose)
		return true
	}
	return false
}

// EntityPoints переводит точки сущностей в ECEF. Сущности без точки (зоны, K9 и
// спасатели без последней позиции) пропускаются.
func EntityPoints(entities []models.Entity) []r3.Vec {
	points := make([]r3.Vec, 0, len(entities))
	for _, e := range entities {
		pos, ok := models.PointPosition(e)
		if !ok {
			continue
		}
		points = append(points, FromDegrees(pos.Lon, pos.Lat, pos.Alt()))
	}
	return points
}

// OrientationOf возвращает углы сохраненного вида; отсутствующие углы - на север, вниз, без крена
func OrientationOf(mv models.MapDefaultView) Orientation {
	heading, pitch, roll := defaultHeadingDeg, defaultPitchDeg, defaultRollDeg
	if mv.Heading != nil {
		heading = *mv.Heading
	}
	if mv.Pitch != nil {
		pitch = *mv.Pitch
	}
	if mv.Roll != nil {
		roll = *mv.Roll
	}
	return Orientation{
		Heading: toRadians(heading),
		Pitch:   toRadians(pitch),
		Roll:    toRadians(roll),
	}
}

func setView(v Viewer, mv models.MapDefaultView) {
	v.SetView(FromDegrees(mv.Center.Lon, mv.Center.Lat, mv.Height), OrientationOf(mv))
}
