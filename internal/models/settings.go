package models

// ViewMode selects the main presentation of pinned items.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// IconQuality trades extraction cost for scaling fidelity.
type IconQuality string

const (
	QualityHigh   IconQuality = "high"
	QualityMedium IconQuality = "medium"
	QualityLow    IconQuality = "low"
)

// Icon cache capacity is clamped so a hand-edited config cannot disable
// caching entirely or grow it without bound.
const (
	MinIconCacheSize = 50
	MaxIconCacheSize = 500
)

// Settings are the scalar values persisted alongside the pinned list.
type Settings struct {
	WindowWidth   int         `json:"window_width"`
	WindowHeight  int         `json:"window_height"`
	View          ViewMode    `json:"view"`
	GridColumns   int         `json:"grid_columns"`
	IconQuality   IconQuality `json:"icon_quality"`
	IconCacheSize int         `json:"icon_cache_size"`
}

func DefaultSettings() Settings {
	return Settings{
		WindowWidth:   800,
		WindowHeight:  600,
		View:          ViewGrid,
		GridColumns:   6,
		IconQuality:   QualityHigh,
		IconCacheSize: 100,
	}
}

// Normalized returns a copy with out-of-range values pulled back to
// usable defaults. Load always runs settings through this.
func (s Settings) Normalized() Settings {
	def := DefaultSettings()

	if s.WindowWidth < 400 {
		s.WindowWidth = def.WindowWidth
	}
	if s.WindowHeight < 300 {
		s.WindowHeight = def.WindowHeight
	}
	if s.View != ViewGrid && s.View != ViewList {
		s.View = def.View
	}
	if s.GridColumns < 1 {
		s.GridColumns = def.GridColumns
	}
	switch s.IconQuality {
	case QualityHigh, QualityMedium, QualityLow:
	default:
		s.IconQuality = def.IconQuality
	}
	if s.IconCacheSize < MinIconCacheSize {
		s.IconCacheSize = MinIconCacheSize
	}
	if s.IconCacheSize > MaxIconCacheSize {
		s.IconCacheSize = MaxIconCacheSize
	}
	return s
}
