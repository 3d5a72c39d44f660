// Command demobot wires a tiny two-feature bot (a button-driven counter
// and a paged catalog listing) over an in-memory KV store and a
// console-backed Driver, exercising forestbot's
// command/button/message projection pipeline and botrunner's per-chat
// registry end to end without any real chat backend.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/nullforest/forestree/botrunner"
	"github.com/nullforest/forestree/forestbot"
	"github.com/nullforest/forestree/hsm"
	"github.com/nullforest/forestree/internal/config"
	"github.com/nullforest/forestree/internal/logging"
	"github.com/nullforest/forestree/memkv"
	"github.com/nullforest/forestree/syntax"
)

const demoChatID = 1

var log = logging.Default()

func incrementKeyboard() forestbot.ReplyMarkup {
	return forestbot.InlineKeyboardMarkup{Rows: [][]forestbot.InlineButton{
		{{Text: "Increment", CallbackData: "inc"}},
	}}
}

func main() {
	configPath := flag.String("config", "", "path to a YAML bot config file (optional)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	log = logging.New(os.Stderr, logging.ParseLevel(string(cfg.LogLevel)))

	commands := forestbot.NewCommandSet()
	commands.Register(startCommand{})
	commands.Register(stopCommand{})
	commands.Register(listCommand{})
	commands.Register(stopListCommand{})

	buttons := forestbot.NewButtonSet()
	incrementIndex := forestbot.RegisterButton[int32](buttons, "Increment")
	incrementData, err := forestbot.EncodeButton(incrementIndex, int32(1))
	if err != nil {
		log.Errorf("encode increment button: %v", err)
		os.Exit(1)
	}
	_, pageIndex := forestbot.RegisterPaginationButton(buttons)
	pagePrevData, err = forestbot.EncodeButton(pageIndex, forestbot.PagePrev)
	if err != nil {
		log.Errorf("encode page-prev button: %v", err)
		os.Exit(1)
	}
	pageNextData, err = forestbot.EncodeButton(pageIndex, forestbot.PageNext)
	if err != nil {
		log.Errorf("encode page-next button: %v", err)
		os.Exit(1)
	}

	kv := memkv.New()
	scanner := bufio.NewScanner(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	shortcuts := map[string]string{"inc": incrementData, "prev": pagePrevData, "next": pageNextData}
	driver := newConsoleDriver(demoChatID, scanner, out, shortcuts)

	factory := func(chatID int64) (*hsm.Machine[forestbot.BotStorage], error) {
		parsed, err := syntax.Parse("[Root]\n|-- StartSlot\n|   |-- Idle\n|   |-- [Counting]\n|   |   |-- CounterLeaf\n|   |   |-- StopLeaf\n|-- ListSlot\n|   |-- ListIdle\n|   |-- [Listing]\n|   |   |-- ListPageLeaf\n|   |   |-- ListStopLeaf\n")
		if err != nil {
			return nil, err
		}
		traits, err := hsm.Bind(parsed, map[string]any{
			"Root":         rootState{},
			"StartSlot":    startSlotState{},
			"Idle":         idleState{},
			"Counting":     countingRegion{},
			"CounterLeaf":  counterLeafState{},
			"StopLeaf":     stopLeafState{},
			"ListSlot":     listSlotState{},
			"ListIdle":     listIdleState{},
			"Listing":      listingRegion{},
			"ListPageLeaf": listPageLeafState{},
			"ListStopLeaf": listStopLeafState{},
		})
		if err != nil {
			return nil, err
		}
		return hsm.NewMachine(traits, forestbot.BotStorage{Driver: driver, KV: kv, ChatID: chatID})
	}

	registry := botrunner.NewRegistry(factory)
	ctx := context.Background()

	if _, err := driver.SetCommands(ctx, commands.Descriptors()); err != nil {
		log.Warnf("set_commands: %v", err)
	}

	log.Infof("demobot ready; try /start then \"inc\" then /stop, or /list then \"prev\"/\"next\" then /stoplist; Ctrl-D to exit")
	for {
		update, err := driver.NextUpdate(ctx)
		if err != nil {
			log.Infof("shutting down: %v", err)
			break
		}
		if err := registry.Dispatch(ctx, update, commands, buttons, deliver); err != nil {
			log.Errorf("dispatch: %v", err)
		}
	}

	if err := registry.Shutdown(ctx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}

// deliver type-switches on the projected update kind and calls
// hsm.React with the concrete event type the projection implies — the
// registry itself has no way to do this generically, since the event
// type varies per command/button and Go generics need it at the call
// site.
func deliver(m *hsm.Machine[forestbot.BotStorage], p forestbot.Projected) {
	switch p.Kind {
	case forestbot.ProjectedCommand:
		switch p.CommandPrefix {
		case "start":
			hsm.React(m, forestbot.CommandEvent[startCommand]{ChatID: p.ChatID, Parameters: p.CommandParameters})
		case "stop":
			hsm.React(m, forestbot.CommandEvent[stopCommand]{ChatID: p.ChatID, Parameters: p.CommandParameters})
		case "list":
			hsm.React(m, forestbot.CommandEvent[listCommand]{ChatID: p.ChatID, Parameters: p.CommandParameters})
		case "stoplist":
			hsm.React(m, forestbot.CommandEvent[stopListCommand]{ChatID: p.ChatID, Parameters: p.CommandParameters})
		}
	case forestbot.ProjectedButton:
		switch p.ButtonName {
		case "Increment":
			hsm.React(m, incrementEvent{ChatID: p.ChatID, MessageID: p.MessageID, CallbackID: p.CallbackID})
		case "Page":
			if direction, err := forestbot.DecodePayload[forestbot.PageDirection](p.ButtonPayload); err == nil {
				hsm.React(m, forestbot.PageEvent{ChatID: p.ChatID, MessageID: p.MessageID, CallbackID: p.CallbackID, Direction: direction})
			}
		}
	case forestbot.ProjectedMessage:
		// Plain chatter outside the command/button flow is ignored by
		// this demo.
	}
}
