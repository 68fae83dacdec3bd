package domain

import "context"

// MessageSender delivers a text message to a user through the chat transport.
type MessageSender interface {
	SendText(ctx context.Context, userID, text string) error
}
