// Package bridge forwards field drop/remove notifications from an event bus
// to a Watermill publisher, for observers outside the UI loop.
package bridge

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/bytedance/sonic"
	"github.com/m-mizutani/goerr/v2"

	"github.com/iw2rmb/formslot/event"
)

// Kinds of forwarded notifications.
const (
	KindDropped = "dropped"
	KindRemoved = "removed"
)

var codec = sonic.ConfigStd

// Notification is the JSON payload of a forwarded message.
type Notification struct {
	Kind      string `json:"kind"`
	FormID    string `json:"form_id"`
	FieldName string `json:"field_name"`
}

// Encode builds the Watermill message for n. The message id is a ULID.
func Encode(n Notification) (*message.Message, error) {
	payload, err := codec.Marshal(n)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode notification", goerr.V("kind", n.Kind))
	}
	msg := message.NewMessage(event.NewToken(), payload)
	msg.Metadata.Set("kind", n.Kind)
	return msg, nil
}

// Decode parses the payload of a forwarded message.
func Decode(msg *message.Message) (Notification, error) {
	var n Notification
	if err := codec.Unmarshal(msg.Payload, &n); err != nil {
		return Notification{}, goerr.Wrap(err, "failed to decode notification", goerr.V("uuid", msg.UUID))
	}
	return n, nil
}

// Forward publishes every FieldDropped and FieldRemoved delivered on bus to
// topic. Publish failures are logged and otherwise ignored. The returned
// function stops forwarding.
func Forward(bus *event.Bus, pub message.Publisher, topic string, logger *slog.Logger) (stop func()) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	send := func(n Notification) {
		msg, err := Encode(n)
		if err == nil {
			err = pub.Publish(topic, msg)
		}
		if err != nil {
			logger.Error("failed to forward notification",
				"kind", n.Kind, "form_id", n.FormID, "field", n.FieldName, "error", err)
		}
	}

	dropped := bus.Dropped.Subscribe(func(ev event.FieldDropped) {
		send(Notification{Kind: KindDropped, FormID: ev.FormID, FieldName: ev.FieldName})
	})
	removed := bus.Removed.Subscribe(func(ev event.FieldRemoved) {
		send(Notification{Kind: KindRemoved, FormID: ev.FormID, FieldName: ev.FieldName})
	})
	return func() {
		dropped.Unsubscribe()
		removed.Unsubscribe()
	}
}
