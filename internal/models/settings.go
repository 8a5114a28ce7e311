package models

// MapDefaultView - сохраненная пользователем позиция камеры.
// Углы задаются в градусах.
type MapDefaultView struct {
	Center  LatLon   `json:"center"`
	Height  float64  `json:"height"`
	Heading *float64 `json:"heading,omitempty"`
	Pitch   *float64 `json:"pitch,omitempty"`
	Roll    *float64 `json:"roll,omitempty"`
}

type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)
