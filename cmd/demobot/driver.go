package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/nullforest/forestree/forestbot"
)

// consoleDriver is a forestbot.Driver backed by stdin/stdout: every
// SendMessage/EditMessage/... call prints a line, and NextUpdate blocks
// on a line of input. It exists purely so cmd/demobot can exercise the
// full projection/dispatch pipeline without a real chat backend.
type consoleDriver struct {
	chatID        int64
	in            *bufio.Scanner
	out           *bufio.Writer
	nextMessageID int64
	shortcuts     map[string]string // console input line -> pre-encoded callback_data
}

func newConsoleDriver(chatID int64, in *bufio.Scanner, out *bufio.Writer, shortcuts map[string]string) *consoleDriver {
	return &consoleDriver{chatID: chatID, in: in, out: out, shortcuts: shortcuts}
}

func (d *consoleDriver) printf(format string, args ...any) {
	fmt.Fprintf(d.out, format, args...)
	d.out.Flush()
}

func (d *consoleDriver) SendMessage(ctx context.Context, req forestbot.SendMessageRequest) (int64, error) {
	id := atomic.AddInt64(&d.nextMessageID, 1)
	d.printf("[bot #%d] %s\n", id, req.Text)
	if kb, ok := req.Markup.(forestbot.InlineKeyboardMarkup); ok {
		for _, row := range kb.Rows {
			labels := make([]string, len(row))
			for i, btn := range row {
				labels[i] = btn.Text
			}
			d.printf("         [%s]\n", strings.Join(labels, "] ["))
		}
	}
	return id, nil
}

func (d *consoleDriver) EditMessage(ctx context.Context, req forestbot.EditMessageRequest) (int64, error) {
	text := ""
	if req.NewText != nil {
		text = *req.NewText
	}
	d.printf("[bot #%d edited] %s\n", req.MessageID, text)
	if kb, ok := req.NewMarkup.(forestbot.InlineKeyboardMarkup); ok {
		for _, row := range kb.Rows {
			labels := make([]string, len(row))
			for i, btn := range row {
				labels[i] = btn.Text
			}
			d.printf("         [%s]\n", strings.Join(labels, "] ["))
		}
	}
	return req.MessageID, nil
}

func (d *consoleDriver) DeleteMessage(ctx context.Context, req forestbot.DeleteMessageRequest) error {
	d.printf("[bot #%d deleted]\n", req.MessageID)
	return nil
}

func (d *consoleDriver) AnswerCallback(ctx context.Context, req forestbot.AnswerCallbackRequest) (bool, error) {
	if req.Text != "" {
		d.printf("[bot: callback ack] %s\n", req.Text)
	}
	return true, nil
}

func (d *consoleDriver) SetCommands(ctx context.Context, commands []forestbot.CommandDescriptor) (bool, error) {
	for _, c := range commands {
		d.printf("[bot: registered command] /%s - %s\n", c.Prefix, c.Description)
	}
	return true, nil
}

// NextUpdate blocks for one line of console input. A line starting
// with "/" becomes a command message; a line matching one of the
// driver's registered shortcuts becomes a callback press of that
// button; anything else becomes a plain message.
func (d *consoleDriver) NextUpdate(ctx context.Context) (forestbot.Update, error) {
	if !d.in.Scan() {
		if err := d.in.Err(); err != nil {
			return forestbot.Update{}, fmt.Errorf("consoledriver: read stdin: %w", err)
		}
		return forestbot.Update{}, fmt.Errorf("consoledriver: stdin closed")
	}
	line := strings.TrimSpace(d.in.Text())
	id := atomic.AddInt64(&d.nextMessageID, 1)

	if data, ok := d.shortcuts[line]; ok {
		return forestbot.Update{
			Kind: forestbot.UpdateCallback,
			Callback: &forestbot.Callback{
				ID:      uuid.NewString(),
				Message: &forestbot.Message{ChatID: d.chatID, MessageID: id},
				Data:    data,
			},
		}, nil
	}

	return forestbot.Update{
		Kind:    forestbot.UpdateNewMessage,
		Message: &forestbot.Message{ChatID: d.chatID, MessageID: id, Text: line},
	}, nil
}

// Poll is a no-op: NextUpdate already blocks directly on stdin.
func (d *consoleDriver) Poll(ctx context.Context) (int, error) { return 0, nil }
