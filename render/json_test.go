package render

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestJSONRendererRender(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	r.Render(analyze(t, "She does not like coffee."))

	var got struct {
		Sentence string `json:"sentence"`
		Category string `json:"category"`
		Order    string `json:"order"`
		Message  string `json:"message"`
		Triple   struct {
			Subject string `json:"subject"`
			Verb    string `json:"verb"`
			Object  string `json:"object"`
		} `json:"triple"`
		Tokens []json.RawMessage `json:"tokens"`
	}

	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if got.Category != "negative_sentence" {
		t.Errorf("expected category 'negative_sentence', got %q", got.Category)
	}

	if got.Order != "active" {
		t.Errorf("expected order 'active', got %q", got.Order)
	}

	if got.Triple.Subject != "She" || got.Triple.Verb != "like" || got.Triple.Object != "coffee" {
		t.Errorf("unexpected triple %+v", got.Triple)
	}

	if len(got.Tokens) != 6 {
		t.Fatalf("expected 6 tokens, got %d", len(got.Tokens))
	}
}

func TestJSONRendererOneLine(t *testing.T) {
	var buf bytes.Buffer
	NewJSONRenderer(&buf).Render(analyze(t, "John threw the ball."))

	if n := bytes.Count(buf.Bytes(), []byte("\n")); n != 1 {
		t.Errorf("expected a single JSON line, got %d lines", n)
	}
}
