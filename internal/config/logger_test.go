package config_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saulo-duarte/tutor-lambda/internal/config"
)

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	config.Init()
	config.Logger.SetOutput(&buf)

	ctx := config.ContextWithRequestID(context.Background(), "req-42")
	config.WithContext(ctx).Info("hello")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log deveria ser JSON: %v", err)
	}
	if entry["request_id"] != "req-42" {
		t.Errorf("request_id incorreto: %v", entry["request_id"])
	}
	if config.RequestIDFromContext(context.Background()) != "" {
		t.Errorf("contexto sem request id deveria retornar vazio")
	}
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	config.Error(rec, http.StatusBadRequest, "bad")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status incorreto: %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type incorreto: %s", ct)
	}
	var body config.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.StatusCode != http.StatusBadRequest || body.Message != "bad" {
		t.Errorf("corpo incorreto: %+v", body)
	}
}
