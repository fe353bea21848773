package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
			Role  string       `json:"role"`
		} `json:"content"`
	} `json:"candidates"`
}

// geminiEndpoint is a variable so tests can point the proxy at a stub.
var geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent?key="

const supportPrompt = `You are the MindEase AI support companion for college students. Follow these rules:
1. Offer supportive, empathetic listening around everyday stress, study pressure and sleep.
2. You are not a therapist and must never diagnose, prescribe, or give medical advice.
3. If the user mentions self-harm or crisis, respond with: "Please reach out to a crisis helpline or a counsellor right away. You can book a session with a MindEase counsellor from your dashboard."
4. For questions about booking, point the user to the Book Session page.
5. Keep responses short and warm, and answer in the language the user writes in.`

// Chat proxies the AI-support conversation to the Gemini API. The model
// stays an external collaborator; this endpoint only injects the MindEase
// instructions and the user's message.
func (h *Handler) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Message cannot be empty"})
		return
	}

	if h.GeminiAPIKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "AI support is not configured"})
		return
	}

	body := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: supportPrompt}}},
			{Role: "model", Parts: []geminiPart{{Text: "Understood. I will follow these rules."}}},
			{Role: "user", Parts: []geminiPart{{Text: req.Message}}},
		},
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		serverError(c, "Chat request encoding failed", err)
		return
	}

	httpReq, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost,
		geminiEndpoint+h.GeminiAPIKey, bytes.NewBuffer(jsonBody))
	if err != nil {
		serverError(c, "Chat request creation failed", err)
		return
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		serverError(c, "Chat upstream request failed", err)
		return
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		serverError(c, "Chat upstream read failed", err)
		return
	}
	if httpResp.StatusCode != http.StatusOK {
		serverError(c, "Chat upstream error", fmt.Errorf("upstream returned %s", httpResp.Status))
		return
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		serverError(c, "Chat upstream decoding failed", err)
		return
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		serverError(c, "Chat upstream error", errors.New("empty or invalid response"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": parsed.Candidates[0].Content.Parts[0].Text,
	})
}
