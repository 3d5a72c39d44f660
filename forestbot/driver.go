package forestbot

import "context"

// SendMessageRequest is the input to Driver.SendMessage.
type SendMessageRequest struct {
	ChatID              int64
	Text                string
	ReplyTo             int64 // 0 means no reply
	Markup              ReplyMarkup
	ParseMode           string
	DisableNotification bool
}

// EditMessageRequest is the input to Driver.EditMessage. NewText and
// NewMode are optional: nil leaves the corresponding field unchanged.
type EditMessageRequest struct {
	ChatID    int64
	MessageID int64
	NewText   *string
	NewMarkup ReplyMarkup
	NewMode   *string
}

// DeleteMessageRequest is the input to Driver.DeleteMessage.
type DeleteMessageRequest struct {
	ChatID    int64
	MessageID int64
}

// AnswerCallbackRequest is the input to Driver.AnswerCallback.
type AnswerCallbackRequest struct {
	CallbackID string
	Text       string
	ShowAlert  bool
}

// CommandDescriptor is one entry of the set Driver.SetCommands
// publishes, derived from a CommandSet's registration order.
type CommandDescriptor struct {
	Prefix      string
	Description string
}

// Driver is the collaborator the engine requires to talk to a chat
// backend. Implementations may be adaptably asynchronous;
// the context passed to every call is the only cancellation/timeout
// mechanism the engine relies on.
type Driver interface {
	SendMessage(ctx context.Context, req SendMessageRequest) (messageID int64, err error)
	EditMessage(ctx context.Context, req EditMessageRequest) (messageID int64, err error)
	DeleteMessage(ctx context.Context, req DeleteMessageRequest) error
	AnswerCallback(ctx context.Context, req AnswerCallbackRequest) (ok bool, err error)
	SetCommands(ctx context.Context, commands []CommandDescriptor) (ok bool, err error)
	NextUpdate(ctx context.Context) (Update, error)
	Poll(ctx context.Context) (newUpdates int, err error)
}
