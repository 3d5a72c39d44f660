// Package botrunner keeps one hsm machine instance per chat and drives
// each with the forestbot projection pipeline.
package botrunner

import (
	"context"
	"fmt"
	"sync"

	"github.com/nullforest/forestree/forestbot"
	"github.com/nullforest/forestree/hsm"
)

// Factory builds a fresh machine instance for a newly-seen chat.
// Implementations typically call hsm.Bind once (shared across chats)
// and hsm.NewMachine per chat with storage scoped to chatID.
type Factory func(chatID int64) (*hsm.Machine[forestbot.BotStorage], error)

// instance pairs a machine with the mutex serializing access to it:
// entering/exiting/reacting/projecting for a given chat must be
// serialized, while distinct chats may run concurrently.
type instance struct {
	mu sync.Mutex
	m  *hsm.Machine[forestbot.BotStorage]
}

// Registry maps chat id to machine instance, auto-provisioning on
// first contact.
type Registry struct {
	factory Factory

	mu        sync.Mutex
	instances map[int64]*instance
}

func NewRegistry(factory Factory) *Registry {
	return &Registry{factory: factory, instances: make(map[int64]*instance)}
}

// getOrCreate returns the instance for chatID, creating and starting
// one if this is the first time chatID has been seen.
func (r *Registry) getOrCreate(chatID int64) (*instance, error) {
	r.mu.Lock()
	inst, ok := r.instances[chatID]
	r.mu.Unlock()
	if ok {
		return inst, nil
	}

	m, err := r.factory(chatID)
	if err != nil {
		return nil, fmt.Errorf("botrunner: provision chat %d: %w", chatID, err)
	}
	if err := m.Start(); err != nil {
		return nil, fmt.Errorf("botrunner: start chat %d: %w", chatID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.instances[chatID]; ok {
		// Lost a provisioning race; keep the instance that won it and
		// discard the one just started.
		_ = m.Stop()
		return existing, nil
	}
	inst = &instance{m: m}
	r.instances[chatID] = inst
	return inst, nil
}

// Dispatch projects update and, if it yields a typed event, delivers it
// to the owning chat's machine via deliver. deliver is expected to type
// switch on p.Kind and call hsm.React with the right event type — the
// registry itself is event-type agnostic, since Go cannot select a
// generic instantiation from a runtime value alone.
func (r *Registry) Dispatch(ctx context.Context, update forestbot.Update, commands *forestbot.CommandSet, buttons *forestbot.ButtonSet, deliver func(*hsm.Machine[forestbot.BotStorage], forestbot.Projected)) error {
	p := forestbot.Project(update, commands, buttons)
	if p.Kind == forestbot.ProjectedNone {
		return nil
	}

	inst, err := r.getOrCreate(p.ChatID)
	if err != nil {
		return err
	}

	inst.mu.Lock()
	defer inst.mu.Unlock()
	deliver(inst.m, p)
	return nil
}

// Shutdown stops every provisioned machine, in map iteration order, and
// keeps stopping the rest even if one instance errors. It returns the
// first Stop error it met; later errors are not reported.
func (r *Registry) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for chatID, inst := range r.instances {
		inst.mu.Lock()
		if err := inst.m.Stop(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("botrunner: stop chat %d: %w", chatID, err)
		}
		inst.mu.Unlock()
	}
	return firstErr
}
