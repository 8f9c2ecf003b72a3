package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/m-mizutani/goerr/v2"

	"github.com/iw2rmb/formslot/canvas"
	"github.com/iw2rmb/formslot/event"
	"github.com/iw2rmb/formslot/event/bridge"
	"github.com/iw2rmb/formslot/form"
	"github.com/iw2rmb/formslot/form/catalog"
)

const (
	notificationTopic = "formslot.fields"
	maxNotifications  = 4
)

type notificationMsg bridge.Notification

type model struct {
	canvas *canvas.Canvas
	notes  []string
	width  int

	noteStyle lipgloss.Style
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (msg.String() == "q" && !m.canvas.DialogOpen()) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, m.canvas.Update(tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - maxNotifications})
	case notificationMsg:
		m.notes = append(m.notes, fmt.Sprintf("%s %s/%s", msg.Kind, msg.FormID, msg.FieldName))
		if len(m.notes) > maxNotifications {
			m.notes = m.notes[len(m.notes)-maxNotifications:]
		}
		return m, nil
	}
	return m, m.canvas.Update(msg)
}

func (m *model) View() string {
	lines := make([]string, maxNotifications)
	copy(lines[maxNotifications-len(m.notes):], m.notes)
	return lipgloss.JoinVertical(lipgloss.Left, m.canvas.View(), m.noteStyle.Render(strings.Join(lines, "\n")))
}

func runApp(ctx context.Context, cat *catalog.Catalog, layoutPath string, logger *slog.Logger) error {
	bus := event.NewBus()

	responder := catalog.NewResponder(bus.Responses, logger)
	responder.Add(cat)
	defer responder.Attach(bus)()

	pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, watermill.NewSlogLogger(logger))
	defer pubSub.Close()
	notes, err := pubSub.Subscribe(ctx, notificationTopic)
	if err != nil {
		return goerr.Wrap(err, "failed to subscribe to notifications")
	}
	defer bridge.Forward(bus, pubSub, notificationTopic, logger)()

	c := canvas.New(canvas.Config{
		FormID: cat.FormID(),
		Bus:    bus,
		Logger: logger,
		Style:  canvas.DefaultStyle(),
	})
	if err := restore(c, cat, layoutPath); err != nil {
		return err
	}

	m := &model{
		canvas:    c,
		noteStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	go relay(p, notes, logger)

	// Deliver whatever the restored slots queued.
	go p.Send(event.FlushMsg{})

	if _, err := p.Run(); err != nil {
		return goerr.Wrap(err, "failed to run program")
	}

	if layoutPath == "" {
		return nil
	}
	return writeLayout(layoutPath, layout{FormID: cat.FormID(), Slots: c.Settings()})
}

// restore fills the canvas from the saved layout, or places every field of
// the catalog when there is none.
func restore(c *canvas.Canvas, cat *catalog.Catalog, path string) error {
	if path != "" {
		l, err := readLayout(path)
		if err != nil {
			return err
		}
		if l != nil && l.FormID == cat.FormID() {
			c.Restore(l.Slots)
			return nil
		}
	}
	var slots []map[string]string
	for _, def := range cat.Fields() {
		slots = append(slots, map[string]string{
			form.SettingFormID:    cat.FormID(),
			form.SettingFieldName: def.Name,
		})
	}
	c.Restore(slots)
	return nil
}

// relay hands forwarded notifications to the program.
func relay(p *tea.Program, notes <-chan *message.Message, logger *slog.Logger) {
	for msg := range notes {
		n, err := bridge.Decode(msg)
		msg.Ack()
		if err != nil {
			logger.Warn("dropping undecodable notification", "error", err)
			continue
		}
		p.Send(notificationMsg(n))
	}
}
