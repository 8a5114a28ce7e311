package camera

import (
	"sync"
	"time"

	"github.com/shenikar/sar_dashboard/internal/view"
	"gonum.org/v1/gonum/spatial/r3"
)

type CommandKind string

const (
	CommandFlyToBoundingSphere CommandKind = "fly-to-bounding-sphere"
	CommandSetView             CommandKind = "set-view"
)

// Cartesian - точка ECEF в метрах
type Cartesian struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func cartesianOf(v r3.Vec) Cartesian {
	return Cartesian{X: v.X, Y: v.Y, Z: v.Z}
}

// Vec возвращает точку как r3.Vec
func (c Cartesian) Vec() r3.Vec {
	return r3.Vec{X: c.X, Y: c.Y, Z: c.Z}
}

type Sphere struct {
	Center Cartesian `json:"center"`
	Radius float64   `json:"radius"`
}

// Command - сериализуемая команда камеры, которую применяет фронтенд с глобусом
type Command struct {
	Kind            CommandKind  `json:"kind"`
	Sphere          *Sphere      `json:"sphere,omitempty"`
	Destination     *Cartesian   `json:"destination,omitempty"`
	Orientation     *Orientation `json:"orientation,omitempty"`
	DurationSeconds float64      `json:"durationSeconds"`
}

// Recorder - Viewer, который запоминает последнюю отданную команду
type Recorder struct {
	mu    sync.Mutex
	last  *Command
	count int
}

func (r *Recorder) FlyToBoundingSphere(sphere BoundingSphere, duration time.Duration) {
	r.record(Command{
		Kind:            CommandFlyToBoundingSphere,
		Sphere:          &Sphere{Center: cartesianOf(sphere.Center), Radius: sphere.Radius},
		DurationSeconds: duration.Seconds(),
	})
}

func (r *Recorder) SetView(destination r3.Vec, orientation Orientation) {
	dest := cartesianOf(destination)
	r.record(Command{
		Kind:        CommandSetView,
		Destination: &dest,
		Orientation: &orientation,
	})
}

func (r *Recorder) record(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = &cmd
	r.count++
}

// Last возвращает последнюю команду или nil
func (r *Recorder) Last() *Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		return nil
	}
	cmd := *r.last
	return &cmd
}

// Count возвращает число записанных команд
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Resolve вычисляет команду для вида, не трогая настоящий вьюер. nil - команда не нужна.
func Resolve(iv view.InitialView) *Command {
	var r Recorder
	if !Position(&r, iv) {
		return nil
	}
	return r.Last()
}
