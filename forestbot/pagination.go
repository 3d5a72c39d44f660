package forestbot

import (
	"context"

	"github.com/nullforest/forestree/hsm"
)

// PageDirection is the payload of the single button a pager registers.
// A Go state record can implement only one method literally named
// React, so the prev and next buttons a paged view needs cannot be two
// distinct button types reacted to by the same vertex; they share one
// registration instead and carry which way to page as data.
type PageDirection int32

const (
	PagePrev PageDirection = -1
	PageNext PageDirection = 1
)

// PageEvent is delivered when either half of a pager's prev/next row
// is pressed.
type PageEvent struct {
	ChatID     int64
	MessageID  int64
	CallbackID string
	Direction  PageDirection
}

// RegisterPaginationButton registers the prev/next button a pager's
// footer row uses, returning its name (for deliver-style dispatch
// switches keyed on ProjectButton's result) and its stable index (for
// EncodeButton).
func RegisterPaginationButton(set *ButtonSet) (name string, index int64) {
	name = "Page"
	index = RegisterButton[PageDirection](set, name)
	return name, index
}

// PageState is the per-chat position a pager persists between
// reactions: which message to edit on the next render, and which page
// is currently showing. The zero value means "nothing rendered yet".
type PageState struct {
	MessageID int64
	Page      int
}

// LoadPageState reads a chat's pager position back out of store,
// returning the zero PageState if none has been saved yet.
func LoadPageState(store KVStore, chatID int64, key string) (PageState, error) {
	state, _, err := GetJSON[PageState](store, chatID, key)
	return state, err
}

// SavePageState persists a chat's pager position.
func SavePageState(store KVStore, chatID int64, key string, state PageState) error {
	return SetJSON(store, chatID, key, state)
}

// AdvancePage moves state to the page direction points toward, one
// page at a time, clamped to [0, numPages-1] so repeatedly pressing
// prev at the first page or next at the last page is a no-op.
func AdvancePage(state PageState, direction PageDirection, itemCount, pageSize int) PageState {
	if pageSize <= 0 {
		pageSize = 1
	}
	numPages := (itemCount + pageSize - 1) / pageSize
	if numPages <= 0 {
		numPages = 1
	}
	page := state.Page + int(direction)
	if page < 0 {
		page = 0
	}
	if page > numPages-1 {
		page = numPages - 1
	}
	state.Page = page
	return state
}

// ResetPage deletes the rendered message, if any, and returns the
// cleared PageState a pager's exit hook should persist.
func ResetPage(ctx *hsm.Context[BotStorage], c context.Context, state PageState) (PageState, error) {
	if state.MessageID == 0 {
		return PageState{}, nil
	}
	if err := DeleteMessage(ctx, c, state.MessageID); err != nil {
		return PageState{}, err
	}
	return PageState{}, nil
}

// Paginate renders one page of items as an inline-keyboard table: a
// header row, up to pageSize content rows starting at page*pageSize,
// a footer row, and a trailing prev/next row; the header and footer
// rows are omitted when header or footer is nil. It sends a new message
// the first time a chat sees this pager (state.MessageID == 0) and
// edits that same message in place on every later page flip.
func Paginate[T any](
	ctx *hsm.Context[BotStorage],
	c context.Context,
	state PageState,
	text string,
	items []T,
	pageSize int,
	header, footer []InlineButton,
	row func(T) InlineButton,
	prevData, nextData string,
) (PageState, error) {
	if pageSize <= 0 {
		pageSize = 1
	}

	table := make([][]InlineButton, 0, pageSize+3)
	if header != nil {
		table = append(table, header)
	}
	start := state.Page * pageSize
	for i := 0; i < pageSize && start+i < len(items); i++ {
		table = append(table, []InlineButton{row(items[start+i])})
	}
	if footer != nil {
		table = append(table, footer)
	}
	table = append(table, []InlineButton{
		{Text: "<", CallbackData: prevData},
		{Text: ">", CallbackData: nextData},
	})
	markup := InlineKeyboardMarkup{Rows: table}

	if state.MessageID == 0 {
		id, err := SendMessage(ctx, c, text, markup)
		if err != nil {
			return state, err
		}
		state.MessageID = id
		return state, nil
	}

	if _, err := EditMessage(ctx, c, state.MessageID, text, markup); err != nil {
		return state, err
	}
	return state, nil
}
