package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// stubGemini points the proxy at a local stub for the duration of the test.
func stubGemini(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	orig := geminiEndpoint
	geminiEndpoint = srv.URL + "/generate?key="
	t.Cleanup(func() {
		geminiEndpoint = orig
		srv.Close()
	})
}

func TestChatRequiresTokenAndConfiguration(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/api/chat", map[string]string{"message": "hi"}, nil)
	assertStatus(t, rr, http.StatusUnauthorized)

	userID := env.signupAndGetID(t, studentSignup("chat@example.com"))
	headers := authHeader(t, userID, "student")

	rr = env.do(t, http.MethodPost, "/api/chat", map[string]string{"message": ""}, headers)
	assertStatus(t, rr, http.StatusBadRequest)

	// The test handler has no Gemini key configured.
	rr = env.do(t, http.MethodPost, "/api/chat", map[string]string{"message": "hi"}, headers)
	assertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestChatRelaysUpstreamReply(t *testing.T) {
	stubGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"You're doing great."}],"role":"model"}}]}`)
	})

	env := newTestEnvWithGemini(t, "test-key")
	userID := env.signupAndGetID(t, studentSignup("relay@example.com"))

	rr := env.do(t, http.MethodPost, "/api/chat",
		map[string]string{"message": "rough week"}, authHeader(t, userID, "student"))
	assertStatus(t, rr, http.StatusOK)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeBody(t, rr, &resp)
	if !resp.Success || resp.Message != "You're doing great." {
		t.Fatalf("unexpected reply: %+v", resp)
	}
}

func TestChatHidesUpstreamFailures(t *testing.T) {
	stubGemini(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	})

	env := newTestEnvWithGemini(t, "test-key")
	userID := env.signupAndGetID(t, studentSignup("failing@example.com"))

	rr := env.do(t, http.MethodPost, "/api/chat",
		map[string]string{"message": "hi"}, authHeader(t, userID, "student"))
	assertStatus(t, rr, http.StatusInternalServerError)
	if strings.Contains(rr.Body.String(), "quota") {
		t.Fatalf("upstream detail leaked to the client: %s", rr.Body.String())
	}
}
