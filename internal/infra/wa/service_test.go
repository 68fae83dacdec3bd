package wa_test

import (
	"testing"
	"time"

	"go.mau.fi/whatsmeow/proto/waE2E"
	"google.golang.org/protobuf/proto"

	"github.com/fardannozami/habit-bot/internal/infra/wa"
)

func TestMessageText(t *testing.T) {
	testCases := []struct {
		name     string
		msg      *waE2E.Message
		expected string
	}{
		{"nil", nil, ""},
		{"conversation", &waE2E.Message{Conversation: proto.String("done run")}, "done run"},
		{"extended", &waE2E.Message{ExtendedTextMessage: &waE2E.ExtendedTextMessage{Text: proto.String("/tasks")}}, "/tasks"},
		{"media", &waE2E.Message{ImageMessage: &waE2E.ImageMessage{}}, ""},
	}

	for _, tc := range testCases {
		if got := wa.MessageText(tc.msg); got != tc.expected {
			t.Errorf("%s: expected '%s', got '%s'", tc.name, tc.expected, got)
		}
	}
}

func TestTextMessage(t *testing.T) {
	msg := wa.TextMessage("hello")
	if msg.GetConversation() != "hello" {
		t.Errorf("Expected 'hello', got '%s'", msg.GetConversation())
	}
}

func TestReplyDelay(t *testing.T) {
	maxIntn := func(n int) int { return n - 1 }
	zeroIntn := func(n int) int { return 0 }

	if d := wa.ReplyDelay(wa.ReplyOptions{}, maxIntn); d != 0 {
		t.Errorf("No delay configured: expected 0, got %s", d)
	}
	if d := wa.ReplyDelay(wa.ReplyOptions{DelayMinMs: 300}, maxIntn); d != 300*time.Millisecond {
		t.Errorf("Fixed delay: expected 300ms, got %s", d)
	}
	if d := wa.ReplyDelay(wa.ReplyOptions{DelayMinMs: 100, DelayMaxMs: 500}, zeroIntn); d != 100*time.Millisecond {
		t.Errorf("Lower bound: expected 100ms, got %s", d)
	}
	if d := wa.ReplyDelay(wa.ReplyOptions{DelayMinMs: 100, DelayMaxMs: 500}, maxIntn); d != 500*time.Millisecond {
		t.Errorf("Upper bound: expected 500ms, got %s", d)
	}
}
