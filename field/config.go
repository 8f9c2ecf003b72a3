package field

import (
	"log/slog"
	"time"

	"github.com/iw2rmb/formslot/event"
	"github.com/iw2rmb/formslot/renderer"
)

// Config configures a Component. Nil collaborators are replaced by no-op
// defaults; a nil Renderers uses renderer.NewDefaultRegistry.
type Config struct {
	Renderers renderer.Lookup

	Requests  event.Publisher[event.FormContextRequest]
	Responses event.Subscriber[event.FormContextResponse]
	Dropped   event.Publisher[event.FieldDropped]
	Removed   event.Publisher[event.FieldRemoved]

	// Clock stamps unbound field names.
	Clock func() time.Time
	// Stamps keeps unbound names unique among the components sharing it.
	// Nil gives the component a sequence of its own.
	Stamps *Stamps

	Logger *slog.Logger

	// ModalTitle is the properties dialog title.
	ModalTitle string

	// OnChange is called after every effective state change.
	OnChange func(ChangeEvent)
}

// BusConfig wires every channel of bus into a Config.
func BusConfig(bus *event.Bus, renderers renderer.Lookup) Config {
	return Config{
		Renderers: renderers,
		Requests:  bus.Requests,
		Responses: bus.Responses,
		Dropped:   bus.Dropped,
		Removed:   bus.Removed,
	}
}

const defaultModalTitle = "Field properties"

func normalizeConfig(cfg Config) Config {
	if cfg.Renderers == nil {
		cfg.Renderers = renderer.NewDefaultRegistry()
	}
	if cfg.Requests == nil {
		cfg.Requests = discard[event.FormContextRequest]{}
	}
	if cfg.Dropped == nil {
		cfg.Dropped = discard[event.FieldDropped]{}
	}
	if cfg.Removed == nil {
		cfg.Removed = discard[event.FieldRemoved]{}
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Stamps == nil {
		cfg.Stamps = NewStamps()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.ModalTitle == "" {
		cfg.ModalTitle = defaultModalTitle
	}
	return cfg
}

type discard[T any] struct{}

func (discard[T]) Publish(T) {}
