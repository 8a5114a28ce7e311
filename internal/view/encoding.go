package view

import (
	"encoding/json"

	"github.com/shenikar/sar_dashboard/internal/models"
)

// Все варианты кодируются в JSON с дискриминантом: {"type": "mission-aoi", "aoi": {...}}

func (v MissionAOI) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type Type              `json:"type"`
		AOI  models.MissionAOI `json:"aoi"`
	}{Type: v.Type(), AOI: v.AOI})
}

func (v FitEntities) MarshalJSON() ([]byte, error) {
	entities := v.Entities
	if entities == nil {
		entities = []models.Entity{}
	}
	return json.Marshal(struct {
		Type     Type            `json:"type"`
		Entities []models.Entity `json:"entities"`
	}{Type: v.Type(), Entities: entities})
}

func (v SavedDefault) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type Type                  `json:"type"`
		View models.MapDefaultView `json:"view"`
	}{Type: v.Type(), View: v.View})
}

func (v PromptUser) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type Type `json:"type"`
	}{Type: v.Type()})
}
