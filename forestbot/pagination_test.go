package forestbot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nullforest/forestree/hsm"
	"github.com/nullforest/forestree/memkv"
	"github.com/nullforest/forestree/syntax"
)

// recordingDriver is a minimal Driver that records every
// send/edit/delete instead of talking to a real backend.
type recordingDriver struct {
	sent    []SendMessageRequest
	edited  []EditMessageRequest
	deleted []DeleteMessageRequest
	nextID  int64
}

func (d *recordingDriver) SendMessage(ctx context.Context, req SendMessageRequest) (int64, error) {
	d.nextID++
	d.sent = append(d.sent, req)
	return d.nextID, nil
}

func (d *recordingDriver) EditMessage(ctx context.Context, req EditMessageRequest) (int64, error) {
	d.edited = append(d.edited, req)
	return req.MessageID, nil
}

func (d *recordingDriver) DeleteMessage(ctx context.Context, req DeleteMessageRequest) error {
	d.deleted = append(d.deleted, req)
	return nil
}

func (d *recordingDriver) AnswerCallback(ctx context.Context, req AnswerCallbackRequest) (bool, error) {
	return true, nil
}

func (d *recordingDriver) SetCommands(ctx context.Context, commands []CommandDescriptor) (bool, error) {
	return true, nil
}

func (d *recordingDriver) NextUpdate(ctx context.Context) (Update, error) { return Update{}, nil }

func (d *recordingDriver) Poll(ctx context.Context) (int, error) { return 0, nil }

// pagerHarness lets each test reach into a running machine's
// Context[BotStorage] from outside a React callback: its own OnEnter
// stashes the context a test needs to call Paginate/ResetPage.
type pagerHarness struct {
	ctx *hsm.Context[BotStorage]
}

func (h *pagerHarness) OnEnter(ctx *hsm.Context[BotStorage]) { h.ctx = ctx }

func newPagerContext(t *testing.T, driver Driver, chatID int64) *hsm.Context[BotStorage] {
	t.Helper()
	parsed, err := syntax.Parse("Root\n")
	require.NoError(t, err)
	harness := &pagerHarness{}
	traits, err := hsm.Bind(parsed, map[string]any{"Root": harness})
	require.NoError(t, err)
	m, err := hsm.NewMachine(traits, BotStorage{Driver: driver, KV: memkv.New(), ChatID: chatID})
	require.NoError(t, err)
	require.NoError(t, m.Start())
	return harness.ctx
}

func TestAdvancePageClampsAtBothEnds(t *testing.T) {
	state := PageState{Page: 0}
	state = AdvancePage(state, PagePrev, 5, 2)
	require.Equal(t, 0, state.Page, "paging back from the first page must stay on it")

	state = AdvancePage(state, PageNext, 5, 2)
	require.Equal(t, 1, state.Page)
	state = AdvancePage(state, PageNext, 5, 2)
	require.Equal(t, 2, state.Page, "5 items at page size 2 means pages 0,1,2")
	state = AdvancePage(state, PageNext, 5, 2)
	require.Equal(t, 2, state.Page, "paging past the last page must stay on it")
}

func TestAdvancePageHandlesEmptyContent(t *testing.T) {
	state := AdvancePage(PageState{}, PageNext, 0, 2)
	require.Equal(t, 0, state.Page)
}

func TestPaginateSendsFirstAndEditsAfter(t *testing.T) {
	driver := &recordingDriver{}
	ctx := newPagerContext(t, driver, 1)
	items := []string{"a", "b", "c"}
	row := func(s string) InlineButton { return InlineButton{Text: s} }

	state, err := Paginate(ctx, context.Background(), PageState{}, "list", items, 2, nil, nil, row, "prev-data", "next-data")
	require.NoError(t, err)
	require.Equal(t, int64(1), state.MessageID)
	require.Len(t, driver.sent, 1)
	require.Empty(t, driver.edited)

	kb, ok := driver.sent[0].Markup.(InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, kb.Rows, 3) // 2 content rows + pager row, no header/footer
	require.Equal(t, []InlineButton{{Text: "<", CallbackData: "prev-data"}, {Text: ">", CallbackData: "next-data"}}, kb.Rows[2])

	state, err = Paginate(ctx, context.Background(), state, "list", items, 2, nil, nil, row, "prev-data", "next-data")
	require.NoError(t, err)
	require.Equal(t, int64(1), state.MessageID, "a later render reuses the same message id")
	require.Len(t, driver.sent, 1, "a later render must edit, not send again")
	require.Len(t, driver.edited, 1)
}

func TestPaginateSecondPageShowsRemainder(t *testing.T) {
	driver := &recordingDriver{}
	ctx := newPagerContext(t, driver, 1)
	items := []string{"a", "b", "c"}
	row := func(s string) InlineButton { return InlineButton{Text: s} }

	_, err := Paginate(ctx, context.Background(), PageState{Page: 1}, "list", items, 2, nil, nil, row, "p", "n")
	require.NoError(t, err)

	kb := driver.sent[0].Markup.(InlineKeyboardMarkup)
	require.Len(t, kb.Rows, 2) // only "c" plus the pager row
	require.Equal(t, "c", kb.Rows[0][0].Text)
}

func TestResetPageDeletesRenderedMessageAndClearsState(t *testing.T) {
	driver := &recordingDriver{}
	ctx := newPagerContext(t, driver, 1)

	cleared, err := ResetPage(ctx, context.Background(), PageState{MessageID: 42, Page: 3})
	require.NoError(t, err)
	require.Equal(t, PageState{}, cleared)
	require.Len(t, driver.deleted, 1)
	require.Equal(t, int64(42), driver.deleted[0].MessageID)
}

func TestResetPageIsNoopWithoutAMessage(t *testing.T) {
	driver := &recordingDriver{}
	ctx := newPagerContext(t, driver, 1)

	cleared, err := ResetPage(ctx, context.Background(), PageState{})
	require.NoError(t, err)
	require.Equal(t, PageState{}, cleared)
	require.Empty(t, driver.deleted)
}

func TestLoadAndSavePageStateRoundTrip(t *testing.T) {
	store := memkv.New()
	want := PageState{MessageID: 7, Page: 2}
	require.NoError(t, SavePageState(store, 1, "k", want))

	got, err := LoadPageState(store, 1, "k")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestRegisterPaginationButtonRoundTrips(t *testing.T) {
	set := NewButtonSet()
	name, idx := RegisterPaginationButton(set)
	require.Equal(t, "Page", name)

	data, err := EncodeButton(idx, PageNext)
	require.NoError(t, err)
	gotName, raw, ok := ProjectButton(data, set)
	require.True(t, ok)
	require.Equal(t, name, gotName)

	direction, err := DecodePayload[PageDirection](raw)
	require.NoError(t, err)
	require.Equal(t, PageNext, direction)
}
