package telegram

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/goleak"

	"todo-assistant/internal/assistant"
	"todo-assistant/internal/model"
	"todo-assistant/pkg/log"
	pkgTelegram "todo-assistant/pkg/telegram"
)

type sent struct {
	chatID int64
	text   string
	mode   string
}

type mockSender struct {
	mu   sync.Mutex
	msgs []sent
	ch   chan sent
}

func newMockSender() *mockSender {
	return &mockSender{ch: make(chan sent, 10)}
}

func (m *mockSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	return m.SendMessageWithMode(ctx, chatID, text, "")
}

func (m *mockSender) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	s := sent{chatID: chatID, text: text, mode: parseMode}
	m.mu.Lock()
	m.msgs = append(m.msgs, s)
	m.mu.Unlock()
	m.ch <- s
	return nil
}

type mockUseCase struct {
	lastScope model.Scope
	lastText  string
	err       error
}

func (m *mockUseCase) ProcessCommand(ctx context.Context, sc model.Scope, input assistant.ProcessCommandInput) (assistant.ProcessCommandOutput, error) {
	m.lastScope, m.lastText = sc, input.Text
	if m.err != nil {
		return assistant.ProcessCommandOutput{}, m.err
	}
	return assistant.ProcessCommandOutput{Intent: "add", Response: "I've added 'buy milk' to your todo list."}, nil
}

func (m *mockUseCase) Chat(ctx context.Context, sc model.Scope, input assistant.ChatInput) (assistant.ChatOutput, error) {
	return assistant.ChatOutput{}, nil
}

func newHandler(uc assistant.UseCase, bot Sender, secret string) *handler {
	return New(log.NewNop(), uc, bot, secret).(*handler)
}

func textMessage(text string) *pkgTelegram.Message {
	return &pkgTelegram.Message{
		MessageID: 1,
		From:      &pkgTelegram.User{ID: 42, Username: "alice"},
		Chat:      &pkgTelegram.Chat{ID: 100, Type: "private"},
		Text:      text,
	}
}

func TestProcessMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("Start", func(t *testing.T) {
		bot, uc := newMockSender(), &mockUseCase{}
		if err := newHandler(uc, bot, "").processMessage(ctx, textMessage("/start")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bot.msgs) != 1 || bot.msgs[0].text != msgStart || bot.msgs[0].mode != "Markdown" {
			t.Errorf("unexpected messages: %+v", bot.msgs)
		}
		if uc.lastText != "" {
			t.Errorf("/start must not reach the assistant")
		}
	})

	t.Run("Help", func(t *testing.T) {
		bot := newMockSender()
		if err := newHandler(&mockUseCase{}, bot, "").processMessage(ctx, textMessage("/help")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bot.msgs[0].text != msgHelp {
			t.Errorf("got %q", bot.msgs[0].text)
		}
	})

	t.Run("Command", func(t *testing.T) {
		bot, uc := newMockSender(), &mockUseCase{}
		if err := newHandler(uc, bot, "").processMessage(ctx, textMessage("add buy milk")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if uc.lastScope.UserID != "telegram_42" || uc.lastScope.Username != "alice" {
			t.Errorf("scope = %+v", uc.lastScope)
		}
		if len(bot.msgs) != 1 || bot.msgs[0].chatID != 100 || bot.msgs[0].text != "I've added 'buy milk' to your todo list." {
			t.Errorf("unexpected messages: %+v", bot.msgs)
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		bot := newMockSender()
		if err := newHandler(&mockUseCase{}, bot, "").processMessage(ctx, textMessage("")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bot.msgs) != 0 {
			t.Errorf("expected no reply")
		}
	})

	t.Run("UseCaseError", func(t *testing.T) {
		uc := &mockUseCase{err: errors.New("db down")}
		if err := newHandler(uc, newMockSender(), "").processMessage(ctx, textMessage("add x")); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestHandleWebhook(t *testing.T) {
	// Every reply goroutine must finish once its message is sent.
	defer goleak.VerifyNone(t)

	gin.SetMode(gin.TestMode)
	body := []byte(`{"update_id":1,"message":{"message_id":1,"from":{"id":42,"first_name":"A"},"chat":{"id":100,"type":"private"},"date":0,"text":"add buy milk"}}`)

	serve := func(h Handler, payload []byte, secret string) *httptest.ResponseRecorder {
		r := gin.New()
		RegisterRoutes(r, h)
		req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		if secret != "" {
			req.Header.Set(pkgTelegram.SecretTokenHeader, secret)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("AcceptsAndRepliesAsync", func(t *testing.T) {
		bot := newMockSender()
		w := serve(newHandler(&mockUseCase{}, bot, ""), body, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}

		select {
		case s := <-bot.ch:
			if s.chatID != 100 {
				t.Errorf("chatID = %d", s.chatID)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("no reply sent")
		}
	})

	t.Run("FailureNotifiesUser", func(t *testing.T) {
		bot := newMockSender()
		serve(newHandler(&mockUseCase{err: errors.New("db down")}, bot, ""), body, "")

		select {
		case s := <-bot.ch:
			if s.text != msgFailed {
				t.Errorf("text = %q", s.text)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("no failure notice sent")
		}
	})

	t.Run("IgnoresNonMessage", func(t *testing.T) {
		w := serve(newHandler(&mockUseCase{}, newMockSender(), ""), []byte(`{"update_id":2}`), "")
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte("ignored")) {
			t.Errorf("got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("BadJSON", func(t *testing.T) {
		w := serve(newHandler(&mockUseCase{}, newMockSender(), ""), []byte(`{`), "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("SecretMismatch", func(t *testing.T) {
		w := serve(newHandler(&mockUseCase{}, newMockSender(), "s3cret"), body, "wrong")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("SecretMatch", func(t *testing.T) {
		bot := newMockSender()
		w := serve(newHandler(&mockUseCase{}, bot, "s3cret"), body, "s3cret")
		if w.Code != http.StatusOK {
			t.Errorf("status = %d", w.Code)
		}
		<-bot.ch
	})
}
