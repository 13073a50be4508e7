package messenger

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"oyunlag-bot/internal/domain"
)

type capturedRequest struct {
	path  string
	query string
	body  map[string]any
}

func newCaptureServer(t *testing.T, status int, captured *[]capturedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		*captured = append(*captured, capturedRequest{
			path:  r.URL.Path,
			query: r.URL.RawQuery,
			body:  body,
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"message_id":"mid.1"}`))
	}))
}

func TestNewClientRequiresToken(t *testing.T) {
	_, err := NewClient("")
	require.Error(t, err)

	_, err = NewClient("   ")
	require.Error(t, err)
}

func TestSendTextShape(t *testing.T) {
	var captured []capturedRequest
	srv := newCaptureServer(t, http.StatusOK, &captured)
	defer srv.Close()

	c, err := NewClient("token-1", WithBaseURL(srv.URL))
	require.NoError(t, err)

	err = c.SendText(context.Background(), "psid-1", "hello", []domain.QuickReply{
		{ContentType: "text", Title: "Menu", Payload: "GET_STARTED"},
	})
	require.NoError(t, err)

	require.Len(t, captured, 1)
	require.Equal(t, "/me/messages", captured[0].path)
	require.Contains(t, captured[0].query, "access_token=token-1")

	msg := captured[0].body["message"].(map[string]any)
	require.Equal(t, "hello", msg["text"])
	replies := msg["quick_replies"].([]any)
	require.Len(t, replies, 1)
	require.Equal(t, "GET_STARTED", replies[0].(map[string]any)["payload"])
}

func TestSendButtonsTruncatesToThree(t *testing.T) {
	var captured []capturedRequest
	srv := newCaptureServer(t, http.StatusOK, &captured)
	defer srv.Close()

	c, err := NewClient("token-1", WithBaseURL(srv.URL))
	require.NoError(t, err)

	buttons := []domain.Button{
		{Type: domain.ButtonPostback, Title: "a", Payload: "A"},
		{Type: domain.ButtonPostback, Title: "b", Payload: "B"},
		{Type: domain.ButtonPostback, Title: "c", Payload: "C"},
		{Type: domain.ButtonPostback, Title: "d", Payload: "D"},
	}
	require.NoError(t, c.SendButtons(context.Background(), "psid-1", "pick one", buttons))

	msg := captured[0].body["message"].(map[string]any)
	payload := msg["attachment"].(map[string]any)["payload"].(map[string]any)
	require.Equal(t, "button", payload["template_type"])
	require.Equal(t, "pick one", payload["text"])
	require.Len(t, payload["buttons"].([]any), 3)
}

func TestSendCarouselShape(t *testing.T) {
	var captured []capturedRequest
	srv := newCaptureServer(t, http.StatusOK, &captured)
	defer srv.Close()

	c, err := NewClient("token-1", WithBaseURL(srv.URL))
	require.NoError(t, err)

	cards := []domain.Card{
		{Title: "Card 1", Subtitle: "sub", ImageURL: "https://example.com/1.jpg"},
		{Title: "Card 2"},
	}
	require.NoError(t, c.SendCarousel(context.Background(), "psid-1", cards))

	msg := captured[0].body["message"].(map[string]any)
	payload := msg["attachment"].(map[string]any)["payload"].(map[string]any)
	require.Equal(t, "generic", payload["template_type"])
	require.Len(t, payload["elements"].([]any), 2)
}

func TestSendCarouselRejectsEmpty(t *testing.T) {
	c, err := NewClient("token-1")
	require.NoError(t, err)
	require.Error(t, c.SendCarousel(context.Background(), "psid-1", nil))
}

func TestFetchUserName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/psid-1", r.URL.Path)
		require.Equal(t, "first_name", r.URL.Query().Get("fields"))
		require.Equal(t, "token-1", r.URL.Query().Get("access_token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"first_name":"Bat","id":"psid-1"}`))
	}))
	defer srv.Close()

	c, err := NewClient("token-1", WithBaseURL(srv.URL))
	require.NoError(t, err)

	name, err := c.FetchUserName(context.Background(), "psid-1")
	require.NoError(t, err)
	require.Equal(t, "Bat", name)
}

func TestFetchUserNameUnshared(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"psid-1"}`))
	}))
	defer srv.Close()

	c, err := NewClient("token-1", WithBaseURL(srv.URL))
	require.NoError(t, err)

	name, err := c.FetchUserName(context.Background(), "psid-1")
	require.NoError(t, err)
	require.Empty(t, name)
}

func TestFetchUserNameSurfacesHTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c, err := NewClient("token-1", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.FetchUserName(context.Background(), "psid-1")
	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusForbidden, statusErr.StatusCode)

	_, err = c.FetchUserName(context.Background(), " ")
	require.Error(t, err)
}

func TestSendSurfacesHTTPStatus(t *testing.T) {
	var captured []capturedRequest
	srv := newCaptureServer(t, http.StatusBadRequest, &captured)
	defer srv.Close()

	c, err := NewClient("token-1", WithBaseURL(srv.URL))
	require.NoError(t, err)

	err = c.SendText(context.Background(), "psid-1", "hello", nil)
	require.Error(t, err)

	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
}
