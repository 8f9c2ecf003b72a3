package canvas

import (
	"log/slog"
	"time"

	"github.com/iw2rmb/formslot/event"
	"github.com/iw2rmb/formslot/renderer"
)

// Config configures a Canvas. Bus is required.
type Config struct {
	FormID string
	Bus    *event.Bus

	// Renderers defaults to renderer.NewDefaultRegistry.
	Renderers renderer.Lookup
	Clock     func() time.Time
	Logger    *slog.Logger

	// KeyMap defaults to DefaultKeyMap. The zero Style renders unstyled.
	KeyMap KeyMap
	Style  Style

	// DialogWidth is the inner width of the properties dialog.
	DialogWidth int
}

func normalizeConfig(cfg Config) Config {
	if cfg.Bus == nil {
		cfg.Bus = event.NewBus()
	}
	if cfg.Renderers == nil {
		cfg.Renderers = renderer.NewDefaultRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if len(cfg.KeyMap.Up.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.DialogWidth <= 0 {
		cfg.DialogWidth = 48
	}
	return cfg
}
