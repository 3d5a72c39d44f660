package forestbot

import (
	"context"

	"github.com/nullforest/forestree/hsm"
)

// BotStorage is the per-instance global storage every chat's machine
// shares: a reference to the driver and the key/value store, plus the
// chat id segregating both. hsm.Context[S] is generic over this exact
// type throughout a bot, so reactions declare
// hsm.Context[forestbot.BotStorage] and get send_message/edit_message/
// etc. through the free functions below — domain-specific context
// operations supplied by extending the context.
type BotStorage struct {
	Driver Driver
	KV     KVStore
	ChatID int64
}

// SendMessage sends text to the context's chat.
func SendMessage(ctx *hsm.Context[BotStorage], c context.Context, text string, markup ReplyMarkup) (int64, error) {
	s := ctx.Storage()
	return s.Driver.SendMessage(c, SendMessageRequest{ChatID: s.ChatID, Text: text, Markup: markup})
}

// EditMessage replaces the text and markup of a previously sent
// message.
func EditMessage(ctx *hsm.Context[BotStorage], c context.Context, messageID int64, newText string, markup ReplyMarkup) (int64, error) {
	s := ctx.Storage()
	return s.Driver.EditMessage(c, EditMessageRequest{ChatID: s.ChatID, MessageID: messageID, NewText: &newText, NewMarkup: markup})
}

// DeleteMessage removes a previously sent message.
func DeleteMessage(ctx *hsm.Context[BotStorage], c context.Context, messageID int64) error {
	s := ctx.Storage()
	return s.Driver.DeleteMessage(c, DeleteMessageRequest{ChatID: s.ChatID, MessageID: messageID})
}

// AnswerCallback acknowledges a button press, optionally as a modal
// alert instead of a toast.
func AnswerCallback(ctx *hsm.Context[BotStorage], c context.Context, callbackID, text string, showAlert bool) (bool, error) {
	s := ctx.Storage()
	return s.Driver.AnswerCallback(c, AnswerCallbackRequest{CallbackID: callbackID, Text: text, ShowAlert: showAlert})
}
