package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

var (
	ErrTranscriptionUnavailable = errors.New("transcription service not configured")
	ErrEmptyTranscript          = errors.New("recognition produced no text")
)

const summarySystemPrompt = "You are a helpful assistant."

// TranscriptionService wraps speech-to-text and summarization calls to the
// OpenAI API. Both calls are synchronous; callers bound them with a context
// deadline.
type TranscriptionService struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func NewTranscriptionService(apiKey string, model string, logger *zap.Logger) *TranscriptionService {
	service := &TranscriptionService{model: model, logger: logger}
	if strings.TrimSpace(apiKey) != "" {
		service.client = openai.NewClient(apiKey)
	}
	if service.model == "" {
		service.model = openai.GPT3Dot5Turbo
	}
	return service
}

// Transcribe runs Whisper over a stored WAV file and returns the recognized
// text.
func (service *TranscriptionService) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if service.client == nil {
		return "", ErrTranscriptionUnavailable
	}

	response, err := service.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
	})
	if err != nil {
		service.logger.Warn("transcription request failed", zap.String("audio_path", audioPath), zap.Error(err))
		return "", fmt.Errorf("transcribe audio: %w", err)
	}

	text := strings.TrimSpace(response.Text)
	if text == "" {
		return "", ErrEmptyTranscript
	}
	return text, nil
}

// Summarize asks a chat model for a summary of the transcript.
func (service *TranscriptionService) Summarize(ctx context.Context, text string) (string, error) {
	if service.client == nil {
		return "", ErrTranscriptionUnavailable
	}

	response, err := service.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: service.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summarySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Please summarize the following text:\n" + text},
		},
	})
	if err != nil {
		service.logger.Warn("summarization request failed", zap.Error(err))
		return "", fmt.Errorf("summarize text: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", errors.New("summarization returned no choices")
	}
	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}
