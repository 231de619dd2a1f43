package discord

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stridehq/stride/internal/reminder"
)

// mockSession implements session for tests.
type mockSession struct {
	mu       sync.Mutex
	openErr  error
	sendErrs []error // consumed one per send call
	sends    []sendCall
	closed   bool
}

type sendCall struct {
	channelID string
	data      *discordgo.MessageSend
}

func (m *mockSession) Open() error { return m.openErr }

func (m *mockSession) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sends = append(m.sends, sendCall{channelID: channelID, data: data})
	if len(m.sendErrs) > 0 {
		err := m.sendErrs[0]
		m.sendErrs = m.sendErrs[1:]
		return nil, err
	}
	return &discordgo.Message{ID: "msg-1"}, nil
}

func (m *mockSession) sendCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sends)
}

func rateLimitError() *discordgo.RESTError {
	return &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusTooManyRequests},
	}
}

func newConnectedAdapter(t *testing.T, sess *mockSession) *Adapter {
	t.Helper()
	a, err := New(AdapterOpts{ChannelID: "chan-42", Session: sess})
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	if err := a.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	return a
}

func digestMessage() reminder.OutboundMessage {
	return reminder.OutboundMessage{
		Text: "Task reminder: 1 overdue",
		Events: []reminder.FormattedEvent{{
			Title:    "1 task overdue",
			Body:     "Wed Jun 10 — Session (Learn Spanish)",
			Severity: "warning",
			Color:    reminder.ColorWarning,
			Fields:   []reminder.Field{{Name: "Tasks", Value: "1", Short: true}},
		}},
	}
}

func TestNew_RequiresTokenOrSession(t *testing.T) {
	if _, err := New(AdapterOpts{}); err == nil {
		t.Error("expected error without token or session")
	}
	if _, err := New(AdapterOpts{BotToken: "token"}); err != nil {
		t.Errorf("unexpected error with token: %v", err)
	}
}

func TestConnect_OpenFailure(t *testing.T) {
	sess := &mockSession{openErr: errors.New("gateway unreachable")}
	a, _ := New(AdapterOpts{Session: sess})
	if err := a.Connect(context.Background()); err == nil {
		t.Error("expected open failure to surface")
	}
}

func TestSend_TranslatesEventsToEmbeds(t *testing.T) {
	sess := &mockSession{}
	a := newConnectedAdapter(t, sess)

	if err := a.Send(context.Background(), digestMessage()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sess.sends) != 1 {
		t.Fatalf("got %d sends, want 1", len(sess.sends))
	}
	call := sess.sends[0]
	if call.channelID != "chan-42" {
		t.Errorf("channel = %q", call.channelID)
	}
	if call.data.Content != "Task reminder: 1 overdue" {
		t.Errorf("content = %q", call.data.Content)
	}
	if len(call.data.Embeds) != 1 {
		t.Fatalf("got %d embeds, want 1", len(call.data.Embeds))
	}
	embed := call.data.Embeds[0]
	if embed.Title != "1 task overdue" || embed.Color != 0xff9800 {
		t.Errorf("embed = %+v", embed)
	}
	if len(embed.Fields) != 1 || embed.Fields[0].Name != "Tasks" || !embed.Fields[0].Inline {
		t.Errorf("embed fields = %+v", embed.Fields)
	}
}

func TestSend_NotConnected(t *testing.T) {
	a, _ := New(AdapterOpts{Session: &mockSession{}, ChannelID: "chan-42"})
	if err := a.Send(context.Background(), digestMessage()); err == nil {
		t.Error("expected error before Connect")
	}
}

func TestSend_NoChannel(t *testing.T) {
	sess := &mockSession{}
	a, _ := New(AdapterOpts{Session: sess})
	a.Connect(context.Background())

	if err := a.Send(context.Background(), reminder.OutboundMessage{Text: "hi"}); err == nil {
		t.Error("expected error without any channel")
	}
	if sess.sendCount() != 0 {
		t.Error("message sent despite missing channel")
	}
}

func TestSend_NonRateLimitErrorNotRetried(t *testing.T) {
	sess := &mockSession{sendErrs: []error{errors.New("missing permissions")}}
	a := newConnectedAdapter(t, sess)

	if err := a.Send(context.Background(), digestMessage()); err == nil {
		t.Error("expected error to surface")
	}
	if got := sess.sendCount(); got != 1 {
		t.Errorf("send attempts = %d, want 1", got)
	}
}

func TestSend_RateLimitAbortsOnCancel(t *testing.T) {
	sess := &mockSession{sendErrs: []error{rateLimitError()}}
	a := newConnectedAdapter(t, sess)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.Send(ctx, digestMessage()); err == nil {
		t.Error("expected cancellation to abort the retry wait")
	}
	if got := sess.sendCount(); got != 1 {
		t.Errorf("send attempts = %d, want 1 before the cancelled wait", got)
	}
}

func TestClose_ClosesSession(t *testing.T) {
	sess := &mockSession{}
	a := newConnectedAdapter(t, sess)
	if err := a.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sess.closed {
		t.Error("underlying session not closed")
	}
	// Idempotent.
	if err := a.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		hex  string
		want int
	}{
		{"#36a64f", 0x36a64f},
		{"36a64f", 0x36a64f},
		{"#FF9800", 0xff9800},
		{"", 0},
	}
	for _, c := range cases {
		if got := parseHexColor(c.hex); got != c.want {
			t.Errorf("parseHexColor(%q) = %#x, want %#x", c.hex, got, c.want)
		}
	}
}
