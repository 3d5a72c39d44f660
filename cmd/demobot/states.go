package main

import (
	"context"
	"strconv"

	"github.com/nullforest/forestree/forestbot"
	"github.com/nullforest/forestree/hsm"
)

// startCommand is reacted to by startSlotState and idleState: "/start"
// moves the counting slot from either one into the Counting region.
type startCommand struct{}

func (startCommand) CommandPrefix() string      { return "start" }
func (startCommand) CommandDescription() string { return "begin the counter" }

// stopCommand returns a chat from the Counting region back to idleState.
type stopCommand struct{}

func (stopCommand) CommandPrefix() string      { return "stop" }
func (stopCommand) CommandDescription() string { return "stop the counter" }

// listCommand is reacted to by listSlotState and listIdleState: "/list"
// moves the listing slot into the Listing region and renders page 0 of
// the catalog.
type listCommand struct{}

func (listCommand) CommandPrefix() string      { return "list" }
func (listCommand) CommandDescription() string { return "browse the catalog" }

// stopListCommand returns a chat from the Listing region back to
// listIdleState.
type stopListCommand struct{}

func (stopListCommand) CommandPrefix() string      { return "stoplist" }
func (stopListCommand) CommandDescription() string { return "stop browsing the catalog" }

// incrementEvent is delivered whenever the increment button (the only
// button the counting feature registers) is pressed.
type incrementEvent struct {
	ChatID     int64
	MessageID  int64
	CallbackID string
}

const countKey = "count"

// catalogItems is the toy content the listing feature pages through.
var catalogItems = []string{"Apple", "Banana", "Cherry", "Date", "Elderberry", "Fig"}

const listPageSize = 2
const listPageKey = "list_page"

// pagePrevData and pageNextData are the pre-encoded callback_data
// strings for the pagination button's two directions; main assigns
// them once the button set is built, since EncodeButton needs the
// button's registered index.
var (
	pagePrevData string
	pageNextData string
)

// rootState binds the tree's own root, now an orthogonal region
// "[Root]": it fans out to startSlotState and listSlotState together
// on Start, giving the counting and listing features independent,
// permanently co-active homes so each can own its own top-level
// command — a Go state record can only ever implement one React
// method, so "/start" and "/list" cannot both be reacted to by a
// single vertex.
type rootState struct{}

// startSlotState is the counting feature's slot: the vertex active
// immediately after Start until "/start" moves it into Counting, and
// again after "/stop" returns to idleState.
type startSlotState struct{}

func (startSlotState) OnEnter(ctx *hsm.Context[forestbot.BotStorage]) {
	forestbot.SendMessage(ctx, context.Background(), "Ready. Try /start.", forestbot.GenericMarkup{})
}

func (startSlotState) React(ctx *hsm.Context[forestbot.BotStorage], e forestbot.CommandEvent[startCommand]) hsm.TransitResult {
	return hsm.TransitTo[counterLeafState]()
}

// idleState is only ever active after stopLeafState reacts to "/stop";
// it reacts to a second "/start" the same way startSlotState reacted
// to the first.
type idleState struct{}

func (idleState) OnEnter(ctx *hsm.Context[forestbot.BotStorage]) {
	forestbot.SendMessage(ctx, context.Background(), "Stopped. Try /start again.", forestbot.GenericMarkup{})
}

func (idleState) React(ctx *hsm.Context[forestbot.BotStorage], e forestbot.CommandEvent[startCommand]) hsm.TransitResult {
	return hsm.TransitTo[counterLeafState]()
}

// countingRegion is the orthogonal region "[Counting]": entering it
// (via TransitTo[counterLeafState] or [stopLeafState], either vertex
// resolves to the same region) activates counterLeafState and
// stopLeafState together, each reacting to a different event type —
// a Go state record can only implement one React method, so the two
// reactions this region needs (increment, stop) live on two sibling
// leaves instead of one.
type countingRegion struct{}

func (countingRegion) OnEnter(ctx *hsm.Context[forestbot.BotStorage]) {
	s := ctx.Storage()
	_ = s.KV.Set(s.ChatID, countKey, "0")
	forestbot.SendMessage(ctx, context.Background(), "Counting started at 0.", incrementKeyboard())
}

func (countingRegion) OnExit(ctx *hsm.Context[forestbot.BotStorage]) {
	s := ctx.Storage()
	_ = s.KV.Delete(s.ChatID, countKey)
}

type counterLeafState struct{}

func (counterLeafState) React(ctx *hsm.Context[forestbot.BotStorage], e incrementEvent) hsm.TransitResult {
	s := ctx.Storage()
	count := readCount(s)
	count++
	_ = s.KV.Set(s.ChatID, countKey, strconv.Itoa(count))

	c := context.Background()
	if e.CallbackID != "" {
		forestbot.AnswerCallback(ctx, c, e.CallbackID, "", false)
	}
	forestbot.SendMessage(ctx, c, "count: "+strconv.Itoa(count), incrementKeyboard())
	return hsm.TransitNone()
}

type stopLeafState struct{}

func (stopLeafState) React(ctx *hsm.Context[forestbot.BotStorage], e forestbot.CommandEvent[stopCommand]) hsm.TransitResult {
	return hsm.TransitTo[idleState]()
}

func readCount(s *forestbot.BotStorage) int {
	raw, ok, err := s.KV.Get(s.ChatID, countKey)
	if err != nil || !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// listSlotState is the listing feature's slot, the counterpart of
// startSlotState for "/list": active immediately after Start until
// "/list" moves it into Listing, and again after "/stoplist" returns
// to listIdleState.
type listSlotState struct{}

func (listSlotState) OnEnter(ctx *hsm.Context[forestbot.BotStorage]) {
	forestbot.SendMessage(ctx, context.Background(), "Try /list to browse the catalog.", forestbot.GenericMarkup{})
}

func (listSlotState) React(ctx *hsm.Context[forestbot.BotStorage], e forestbot.CommandEvent[listCommand]) hsm.TransitResult {
	return hsm.TransitTo[listPageLeafState]()
}

type listIdleState struct{}

func (listIdleState) React(ctx *hsm.Context[forestbot.BotStorage], e forestbot.CommandEvent[listCommand]) hsm.TransitResult {
	return hsm.TransitTo[listPageLeafState]()
}

// listingRegion is the orthogonal region "[Listing]": entering it
// renders page 0 of the catalog and persists the pager's position;
// leaving it deletes the rendered message and clears that position,
// the same enter/exit pairing pagination.hpp's mixin makes for its own
// message_id/page fields.
type listingRegion struct{}

func (listingRegion) OnEnter(ctx *hsm.Context[forestbot.BotStorage]) {
	renderListPage(ctx, forestbot.PageState{})
}

func (listingRegion) OnExit(ctx *hsm.Context[forestbot.BotStorage]) {
	s := ctx.Storage()
	state, _ := forestbot.LoadPageState(s.KV, s.ChatID, listPageKey)
	cleared, err := forestbot.ResetPage(ctx, context.Background(), state)
	if err != nil {
		return
	}
	_ = forestbot.SavePageState(s.KV, s.ChatID, listPageKey, cleared)
}

type listPageLeafState struct{}

func (listPageLeafState) React(ctx *hsm.Context[forestbot.BotStorage], e forestbot.PageEvent) hsm.TransitResult {
	s := ctx.Storage()
	state, _ := forestbot.LoadPageState(s.KV, s.ChatID, listPageKey)
	state = forestbot.AdvancePage(state, e.Direction, len(catalogItems), listPageSize)

	if e.CallbackID != "" {
		forestbot.AnswerCallback(ctx, context.Background(), e.CallbackID, "", false)
	}
	renderListPage(ctx, state)
	return hsm.TransitNone()
}

type listStopLeafState struct{}

func (listStopLeafState) React(ctx *hsm.Context[forestbot.BotStorage], e forestbot.CommandEvent[stopListCommand]) hsm.TransitResult {
	return hsm.TransitTo[listIdleState]()
}

// renderListPage paginates catalogItems at state's current page and
// persists the resulting PageState (the new message id on first
// render, unchanged afterward).
func renderListPage(ctx *hsm.Context[forestbot.BotStorage], state forestbot.PageState) {
	s := ctx.Storage()
	updated, err := forestbot.Paginate(ctx, context.Background(), state, "Catalog:", catalogItems, listPageSize,
		[]forestbot.InlineButton{{Text: "== Catalog =="}},
		[]forestbot.InlineButton{{Text: "/stoplist to stop browsing"}},
		func(item string) forestbot.InlineButton { return forestbot.InlineButton{Text: item} },
		pagePrevData, pageNextData,
	)
	if err != nil {
		return
	}
	_ = forestbot.SavePageState(s.KV, s.ChatID, listPageKey, updated)
}
