// Package mailer is a demonstration tool set backed by an in-memory log of
// sent emails.
//
// The log is the tool set's private state, owned by the Log instance and
// guarded by a mutex; the protocol layer never touches it.
package mailer

import (
	"context"
	"fmt"
	"net/mail"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cmarchena/toolwire"
	"github.com/cmarchena/toolwire/toolset/internal/args"
)

// Message is one sent email.
type Message struct {
	ID      string    `json:"id"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sentAt"`
}

// Log owns the sent-message history behind the mailer tools.
type Log struct {
	now func() time.Time

	mu   sync.Mutex
	sent []Message
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{now: time.Now}
}

// Tools returns the tool set bound to this log: send_email and list_sent.
func (l *Log) Tools() []*toolwire.Tool {
	return []*toolwire.Tool{
		toolwire.NewTool(
			"send_email",
			"Send an email and record it in the sent log",
			toolwire.SimpleSchema(map[string]string{
				"to":      "string",
				"subject": "string",
				"body":    "string",
			}),
			l.sendEmail,
		),
		toolwire.NewTool(
			"list_sent",
			"List sent emails, optionally filtered by recipient",
			toolwire.ObjectSchema(map[string]toolwire.Prop{
				"to": {Type: "string", Description: "Only messages sent to this address"},
			}),
			l.listSent,
		),
	}
}

func (l *Log) sendEmail(_ context.Context, raw map[string]any) (any, error) {
	var in struct {
		To      string
		Subject string
		Body    string
	}

	if err := args.Decode("send_email", raw, &in); err != nil {
		return nil, err
	}

	if in.To == "" {
		return nil, args.Missing("send_email", "to")
	}

	if in.Subject == "" {
		return nil, args.Missing("send_email", "subject")
	}

	if in.Body == "" {
		return nil, args.Missing("send_email", "body")
	}

	if _, err := mail.ParseAddress(in.To); err != nil {
		return nil, &toolwire.ArgumentError{
			Tool: "send_email",
			Err:  fmt.Errorf("invalid recipient address %q", in.To),
		}
	}

	msg := Message{
		ID:      uuid.NewString(),
		To:      in.To,
		Subject: in.Subject,
		Body:    in.Body,
		SentAt:  l.now(),
	}

	l.mu.Lock()
	l.sent = append(l.sent, msg)
	l.mu.Unlock()

	return map[string]any{
		"message_id": msg.ID,
		"to":         msg.To,
		"status":     "sent",
	}, nil
}

func (l *Log) listSent(_ context.Context, raw map[string]any) (any, error) {
	var in struct {
		To string
	}

	if err := args.Decode("list_sent", raw, &in); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	messages := make([]Message, 0, len(l.sent))
	for _, msg := range l.sent {
		if in.To != "" && msg.To != in.To {
			continue
		}

		messages = append(messages, msg)
	}

	return map[string]any{
		"messages": messages,
		"count":    len(messages),
	}, nil
}

// Sent returns a copy of the sent-message history.
func (l *Log) Sent() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Message, len(l.sent))
	copy(out, l.sent)

	return out
}
