package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_GenerateText(t *testing.T) {
	var gotRequest GenerateContentRequest
	var gotKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Expect a mild day with occasional showers."}]}}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "gemini-2.5-flash")
	client.baseURL = server.URL

	text, err := client.GenerateText(context.Background(), "You are a weather assistant.", "Summarize: veryWet=49")
	if err != nil {
		t.Fatalf("GenerateText returned error: %v", err)
	}

	if text != "Expect a mild day with occasional showers." {
		t.Errorf("text = %q, want the candidate text", text)
	}
	if gotKey != "test-key" {
		t.Errorf("key = %q, want %q", gotKey, "test-key")
	}
	if gotRequest.SystemInstruction == nil || len(gotRequest.SystemInstruction.Parts) == 0 {
		t.Fatal("request is missing the system instruction")
	}
	if gotRequest.SystemInstruction.Parts[0].Text != "You are a weather assistant." {
		t.Errorf("system instruction = %q", gotRequest.SystemInstruction.Parts[0].Text)
	}
	if len(gotRequest.Contents) != 1 || !strings.Contains(gotRequest.Contents[0].Parts[0].Text, "veryWet=49") {
		t.Errorf("contents = %+v, want the user query", gotRequest.Contents)
	}
}

func TestClient_GenerateText_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		apiKey  string
		wantErr string
	}{
		{
			name:    "missing api key",
			apiKey:  "",
			wantErr: "not configured",
		},
		{
			name:    "upstream error status",
			status:  http.StatusTooManyRequests,
			body:    `{"error":{"message":"quota exceeded"}}`,
			apiKey:  "k",
			wantErr: "429",
		},
		{
			name:    "no candidates",
			status:  http.StatusOK,
			body:    `{"candidates":[]}`,
			apiKey:  "k",
			wantErr: "no candidate text",
		},
		{
			name:    "empty parts",
			status:  http.StatusOK,
			body:    `{"candidates":[{"content":{"parts":[]}}]}`,
			apiKey:  "k",
			wantErr: "no candidate text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(tt.apiKey, "")
			client.baseURL = server.URL

			_, err := client.GenerateText(context.Background(), "system", "user")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}
