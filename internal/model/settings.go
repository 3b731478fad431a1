package model

// Ключи хранилища настроек
const (
	SettingsKey = "classHighlighterSettings"
	EnabledKey  = "classHighlighterEnabled"
)

// Значения по умолчанию
const (
	DefaultUpdateIntervalSeconds = 60
	DefaultNotifyMinutes         = 10
)

// Варианты, которые предлагает панель настроек
var (
	UpdateIntervalChoices = []int{30, 60, 120, 300}
	NotifyMinutesChoices  = []int{5, 10, 15, 30}
)

// ColorPair цвета текста и фона
type ColorPair struct {
	TextColor string `json:"textColor"`
	Bg        string `json:"bg"`
}

// BannerColors цвета баннера с рамкой
type BannerColors struct {
	TextColor string `json:"textColor"`
	Bg        string `json:"bg"`
	Border    string `json:"border"`
}

type BannerTheme struct {
	Upcoming BannerColors `json:"upcoming"`
	None     BannerColors `json:"none"`
}

// Colors цветовая тема подсветки
type Colors struct {
	Upcoming ColorPair   `json:"upcoming"`
	Ongoing  ColorPair   `json:"ongoing"`
	Ended    ColorPair   `json:"ended"`
	Banner   BannerTheme `json:"banner"`
}

// For возвращает цвета строки для статуса
func (c Colors) For(kind StatusKind) ColorPair {
	switch kind {
	case StatusUpcoming:
		return c.Upcoming
	case StatusOngoing:
		return c.Ongoing
	default:
		return c.Ended
	}
}

// Settings пользовательские настройки подсветки
type Settings struct {
	UpdateIntervalSeconds int    `json:"updateInterval"`
	ShowBanner            bool   `json:"showBanner"`
	ShowInlineStatus      bool   `json:"showInlineStatus"`
	HighlightRows         bool   `json:"highlightRows"`
	NotifyBeforeClass     bool   `json:"notifyBeforeClass"`
	NotifyMinutes         int    `json:"notifyMinutes"`
	Colors                Colors `json:"colors"`
}

// DefaultSettings возвращает настройки по умолчанию
func DefaultSettings() Settings {
	return Settings{
		UpdateIntervalSeconds: DefaultUpdateIntervalSeconds,
		ShowBanner:            true,
		ShowInlineStatus:      true,
		HighlightRows:         true,
		NotifyBeforeClass:     false,
		NotifyMinutes:         DefaultNotifyMinutes,
		Colors: Colors{
			Upcoming: ColorPair{TextColor: "#b71c1c", Bg: "#ffcdd2"},
			Ongoing:  ColorPair{TextColor: "#1b5e20", Bg: "#c8e6c9"},
			Ended:    ColorPair{TextColor: "#e65100", Bg: "#ffe0b2"},
			Banner: BannerTheme{
				Upcoming: BannerColors{TextColor: "#856404", Bg: "#fff3cd", Border: "#856404"},
				None:     BannerColors{TextColor: "#155724", Bg: "#d4edda", Border: "#155724"},
			},
		},
	}
}
