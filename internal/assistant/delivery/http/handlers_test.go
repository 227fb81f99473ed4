package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"todo-assistant/internal/assistant"
	"todo-assistant/internal/middleware"
	"todo-assistant/internal/model"
	"todo-assistant/pkg/log"
)

type fakeUseCase struct {
	lastScope model.Scope
	lastText  string
	err       error
}

func (f *fakeUseCase) ProcessCommand(ctx context.Context, sc model.Scope, input assistant.ProcessCommandInput) (assistant.ProcessCommandOutput, error) {
	f.lastScope, f.lastText = sc, input.Text
	if f.err != nil {
		return assistant.ProcessCommandOutput{}, f.err
	}
	return assistant.ProcessCommandOutput{
		Intent:         "add",
		Response:       "I've added 'buy milk' to your todo list.",
		ConversationID: "c1",
	}, nil
}

func (f *fakeUseCase) Chat(ctx context.Context, sc model.Scope, input assistant.ChatInput) (assistant.ChatOutput, error) {
	f.lastScope, f.lastText = sc, input.Text
	return assistant.ChatOutput{Response: "hi", ConversationID: "c1"}, nil
}

func newTestRouter(uc assistant.UseCase, internalKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	mw := middleware.New(l, middleware.Config{InternalKey: internalKey, RequestsPerMin: 600, MaxKeys: 10, KeyTTL: time.Minute})
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), mw)
	return r
}

func post(r http.Handler, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCommand(t *testing.T) {
	user := map[string]string{middleware.HeaderUserID: "alice"}

	t.Run("Success", func(t *testing.T) {
		uc := &fakeUseCase{}
		w := post(newTestRouter(uc, ""), "/api/v1/assistant/commands", `{"message":"add buy milk"}`, user)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "alice", uc.lastScope.UserID)
		require.Equal(t, "add buy milk", uc.lastText)

		var body struct {
			Data commandResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, "add", body.Data.Intent)
		require.Equal(t, "c1", body.Data.ConversationID)
	})

	t.Run("EmptyMessage", func(t *testing.T) {
		w := post(newTestRouter(&fakeUseCase{}, ""), "/api/v1/assistant/commands", `{"message":""}`, user)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("NoUser", func(t *testing.T) {
		w := post(newTestRouter(&fakeUseCase{}, ""), "/api/v1/assistant/commands", `{"message":"x"}`, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("InternalKeyRequired", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{}, "secret")
		w := post(r, "/api/v1/assistant/commands", `{"message":"x"}`, user)
		require.Equal(t, http.StatusUnauthorized, w.Code)

		w = post(r, "/api/v1/assistant/commands", `{"message":"x"}`, map[string]string{
			middleware.HeaderUserID:      "alice",
			middleware.HeaderInternalKey: "secret",
		})
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("TranscriptFailure", func(t *testing.T) {
		uc := &fakeUseCase{err: errors.New("db down")}
		w := post(newTestRouter(uc, ""), "/api/v1/assistant/commands", `{"message":"x"}`, user)
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestChat(t *testing.T) {
	uc := &fakeUseCase{}
	w := post(newTestRouter(uc, ""), "/api/v1/assistant/chat", `{"message":"hello"}`, map[string]string{middleware.HeaderUserID: "alice"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "hello", uc.lastText)
}
