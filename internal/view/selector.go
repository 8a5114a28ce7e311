// Package view выбирает начальное положение камеры при загрузке дашборда.
//
// Цепочка приоритетов:
//  1. у активной миссии есть AOI - облет AOI;
//  2. есть отслеживаемые сущности - вписать их в кадр;
//  3. есть сохраненный вид - восстановить его;
//  4. иначе - спросить пользователя.
package view

import "github.com/shenikar/sar_dashboard/internal/models"

// Type - дискриминант начального вида
type Type string

const (
	TypeMissionAOI   Type = "mission-aoi"
	TypeFitEntities  Type = "fit-entities"
	TypeSavedDefault Type = "saved-default"
	TypePromptUser   Type = "prompt-user"
)

// InitialView - закрытый тип-сумма: MissionAOI | FitEntities | SavedDefault | PromptUser
type InitialView interface {
	Type() Type
	isInitialView()
}

type MissionAOI struct {
	AOI models.MissionAOI
}

type FitEntities struct {
	Entities []models.Entity
}

type SavedDefault struct {
	View models.MapDefaultView
}

type PromptUser struct{}

func (MissionAOI) Type() Type   { return TypeMissionAOI }
func (FitEntities) Type() Type  { return TypeFitEntities }
func (SavedDefault) Type() Type { return TypeSavedDefault }
func (PromptUser) Type() Type   { return TypePromptUser }

func (MissionAOI) isInitialView()   {}
func (FitEntities) isInitialView()  {}
func (SavedDefault) isInitialView() {}
func (PromptUser) isInitialView()   {}

// Source - доступ только на чтение к состоянию, из которого выбирается вид
type Source interface {
	ActiveMission() *models.Mission
	AllActiveEntities() []models.Entity
	MapDefault() *models.MapDefaultView
}

// Select - чистая функция без побочных эффектов. Первое сработавшее условие побеждает,
// более низкие приоритеты не запрашиваются.
func Select(src Source) InitialView {
	if m := src.ActiveMission(); m != nil && m.AOI != nil {
		return MissionAOI{AOI: *m.AOI}
	}

	if entities := src.AllActiveEntities(); len(entities) > 0 {
		return FitEntities{Entities: entities}
	}

	if v := src.MapDefault(); v != nil {
		return SavedDefault{View: *v}
	}

	return PromptUser{}
}
