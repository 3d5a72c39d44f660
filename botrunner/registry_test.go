package botrunner

import (
	"context"
	"sync"
	"testing"

	"github.com/nullforest/forestree/forestbot"
	"github.com/nullforest/forestree/hsm"
	"github.com/nullforest/forestree/syntax"
)

type rootMarker struct{}

type chatLeaf struct {
	seen []string
}

func (c *chatLeaf) React(ctx *hsm.Context[forestbot.BotStorage], e forestbot.MessageEvent) hsm.TransitResult {
	c.seen = append(c.seen, e.Text)
	return hsm.TransitNone()
}

func newTestFactory() (Factory, *sync.Map) {
	var leaves sync.Map // chatID -> *chatLeaf
	factory := func(chatID int64) (*hsm.Machine[forestbot.BotStorage], error) {
		parsed, err := syntax.Parse("[Root]\n|-- Chat\n")
		if err != nil {
			return nil, err
		}
		leaf := &chatLeaf{}
		leaves.Store(chatID, leaf)
		traits, err := hsm.Bind(parsed, map[string]any{"Root": rootMarker{}, "Chat": leaf})
		if err != nil {
			return nil, err
		}
		return hsm.NewMachine(traits, forestbot.BotStorage{ChatID: chatID})
	}
	return factory, &leaves
}

func deliverMessage(m *hsm.Machine[forestbot.BotStorage], p forestbot.Projected) {
	if p.Kind != forestbot.ProjectedMessage {
		return
	}
	hsm.React(m, forestbot.MessageEvent{ChatID: p.ChatID, MessageID: p.MessageID, Text: p.Text})
}

func TestRegistryAutoProvisionsPerChat(t *testing.T) {
	factory, leaves := newTestFactory()
	r := NewRegistry(factory)
	commands := forestbot.NewCommandSet()
	buttons := forestbot.NewButtonSet()

	updates := []forestbot.Update{
		{Kind: forestbot.UpdateNewMessage, Message: &forestbot.Message{ChatID: 1, MessageID: 1, Text: "hi from 1"}},
		{Kind: forestbot.UpdateNewMessage, Message: &forestbot.Message{ChatID: 2, MessageID: 1, Text: "hi from 2"}},
		{Kind: forestbot.UpdateNewMessage, Message: &forestbot.Message{ChatID: 1, MessageID: 2, Text: "again from 1"}},
	}
	for _, u := range updates {
		if err := r.Dispatch(context.Background(), u, commands, buttons, deliverMessage); err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
	}

	leaf1, _ := leaves.Load(int64(1))
	leaf2, _ := leaves.Load(int64(2))
	if got := leaf1.(*chatLeaf).seen; len(got) != 2 || got[0] != "hi from 1" || got[1] != "again from 1" {
		t.Fatalf("chat 1 saw %v", got)
	}
	if got := leaf2.(*chatLeaf).seen; len(got) != 1 || got[0] != "hi from 2" {
		t.Fatalf("chat 2 saw %v", got)
	}

	if err := r.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}

func TestRegistryIgnoresUnprojectableUpdates(t *testing.T) {
	factory, _ := newTestFactory()
	r := NewRegistry(factory)
	commands := forestbot.NewCommandSet()
	buttons := forestbot.NewButtonSet()

	err := r.Dispatch(context.Background(), forestbot.Update{Kind: forestbot.UpdateEditedMessage}, commands, buttons, deliverMessage)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(r.instances) != 0 {
		t.Fatal("an edited-message update must not provision a chat")
	}
}
