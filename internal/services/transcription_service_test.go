package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestTranscriptionServiceUnavailableWithoutAPIKey(t *testing.T) {
	t.Parallel()

	service := NewTranscriptionService("", "", zap.NewNop())

	if _, err := service.Transcribe(context.Background(), "/tmp/missing.wav"); !errors.Is(err, ErrTranscriptionUnavailable) {
		t.Fatalf("expected ErrTranscriptionUnavailable, got %v", err)
	}
	if _, err := service.Summarize(context.Background(), "some text"); !errors.Is(err, ErrTranscriptionUnavailable) {
		t.Fatalf("expected ErrTranscriptionUnavailable, got %v", err)
	}
}

func TestTranscriptionServiceDefaultsModel(t *testing.T) {
	t.Parallel()

	service := NewTranscriptionService("", "", zap.NewNop())
	if service.model == "" {
		t.Fatal("expected a default model when none configured")
	}
}
