package forestbot

// MessageEvent is emitted by message projection for any non-command
// new-message update.
type MessageEvent struct {
	ChatID    int64
	MessageID int64
	Text      string
}

// ProjectedKind discriminates what Project produced from an update.
type ProjectedKind int

const (
	ProjectedNone ProjectedKind = iota
	ProjectedCommand
	ProjectedButton
	ProjectedMessage
)

// Projected is the result of running the projection pipeline over one
// update: exactly the fields relevant to Kind are populated.
type Projected struct {
	Kind ProjectedKind

	ChatID    int64
	MessageID int64

	CommandPrefix     string
	CommandParameters []string

	CallbackID    string
	ButtonName    string
	ButtonPayload []byte

	Text string
}

// Project runs the ordered command -> button -> message pipeline over
// a single update: a callback update projects to a button event or
// nothing; a new-message update projects to a command
// event when its text matches a declared prefix, else a message event.
// Edited-message updates and updates missing their payload project to
// nothing.
func Project(u Update, commands *CommandSet, buttons *ButtonSet) Projected {
	switch u.Kind {
	case UpdateCallback:
		if u.Callback == nil {
			return Projected{}
		}
		name, raw, ok := ProjectButton(u.Callback.Data, buttons)
		if !ok {
			return Projected{}
		}
		var chatID, messageID int64
		if u.Callback.Message != nil {
			chatID = u.Callback.Message.ChatID
			messageID = u.Callback.Message.MessageID
		}
		return Projected{
			Kind:          ProjectedButton,
			ChatID:        chatID,
			MessageID:     messageID,
			CallbackID:    u.Callback.ID,
			ButtonName:    name,
			ButtonPayload: raw,
		}

	case UpdateNewMessage:
		if u.Message == nil {
			return Projected{}
		}
		if prefix, params, ok := ProjectCommand(u.Message.Text, commands); ok {
			return Projected{
				Kind:              ProjectedCommand,
				ChatID:            u.Message.ChatID,
				MessageID:         u.Message.MessageID,
				CommandPrefix:     prefix,
				CommandParameters: params,
			}
		}
		return Projected{
			Kind:      ProjectedMessage,
			ChatID:    u.Message.ChatID,
			MessageID: u.Message.MessageID,
			Text:      u.Message.Text,
		}

	default:
		return Projected{}
	}
}
