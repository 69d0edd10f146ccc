package events

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"notevault-be/internal/entity"
)

const authStateTopic = "AUTH_STATE_CHANGED"

const (
	EventSignedIn  = "SIGNED_IN"
	EventSignedOut = "SIGNED_OUT"
)

type AuthStateEvent struct {
	Type string       `json:"type"`
	User *entity.User `json:"user,omitempty"`
}

// AuthStateBus is the session-change stream behind OnAuthStateChange. The
// remote-mode auth service publishes to it on every sign-in/sign-out; in
// local mode nothing ever publishes, so subscriptions are effectively no-ops
// and callers must poll for the current user after local mutations.
type AuthStateBus struct {
	pubSub *gochannel.GoChannel
}

func NewAuthStateBus() *AuthStateBus {
	return &AuthStateBus{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{},
			watermill.NewStdLogger(false, false),
		),
	}
}

func (b *AuthStateBus) Publish(event AuthStateEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return b.pubSub.Publish(authStateTopic, msg)
}

// Subscribe invokes handler for every subsequent auth-state change. The
// returned function cancels the subscription.
func (b *AuthStateBus) Subscribe(handler func(AuthStateEvent)) (func(), error) {
	messages, err := b.pubSub.Subscribe(context.Background(), authStateTopic)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var event AuthStateEvent
				if err := json.Unmarshal(msg.Payload, &event); err == nil {
					handler(event)
				}
				msg.Ack()
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }, nil
}

func (b *AuthStateBus) Close() error {
	return b.pubSub.Close()
}
