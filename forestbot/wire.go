// Package forestbot projects chat-bot updates into typed hsm events
// and exposes the driver/storage surface reactions use to talk back to
// the chat.
package forestbot

import "time"

// Chat identifies a conversation the bot is participating in.
type Chat struct {
	ID int64
}

// User is the sender of a message or the presser of a callback button.
type User struct {
	ID        int64
	Username  string
	FirstName string
}

// MessageRef is the non-recursive reference a Message carries to the
// message it replies to.
type MessageRef struct {
	MessageID int64
	Text      string
}

// Message is an inbound or outbound chat message.
type Message struct {
	ChatID    int64
	MessageID int64
	From      *User
	ReplyTo   *MessageRef
	Text      string
	SentAt    time.Time
}

// Callback is an inline-keyboard button press.
type Callback struct {
	ID      string
	From    *User
	Message *Message
	Data    string
}

// UpdateKind discriminates the three update shapes the driver can
// deliver.
type UpdateKind int

const (
	UpdateNewMessage UpdateKind = iota
	UpdateEditedMessage
	UpdateCallback
)

// Update is one inbound event from the driver's next_update/poll loop.
type Update struct {
	Kind     UpdateKind
	Message  *Message
	Callback *Callback
}

// ReplyMarkup is the closed set of reply-markup variants a message can
// carry: generic, force-reply, or inline keyboard.
type ReplyMarkup interface {
	isReplyMarkup()
}

// GenericMarkup requests no special keyboard.
type GenericMarkup struct{}

func (GenericMarkup) isReplyMarkup() {}

// ForceReplyMarkup asks the client to focus a reply input.
type ForceReplyMarkup struct {
	Selective bool
}

func (ForceReplyMarkup) isReplyMarkup() {}

// InlineButton is one cell of an inline keyboard: exactly one of URL
// or CallbackData is meaningful, matching the driver's own button
// shape.
type InlineButton struct {
	Text         string
	URL          string
	CallbackData string
}

// InlineKeyboardMarkup is a matrix of buttons.
type InlineKeyboardMarkup struct {
	Rows [][]InlineButton
}

func (InlineKeyboardMarkup) isReplyMarkup() {}
