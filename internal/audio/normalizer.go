package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrMediaDecode wraps every decode failure so callers can map corrupt or
// unsupported payloads to a client error.
var ErrMediaDecode = errors.New("audio decode failed")

// MaxPayloadBytes caps uploads at voice-note size; the whole payload is
// materialized in memory twice during normalization.
const MaxPayloadBytes = 10 << 20

// Normalizer converts an audio payload in any supported container/codec into
// single-track WAV bytes.
type Normalizer interface {
	Normalize(ctx context.Context, input []byte) ([]byte, error)
}

// FFmpegNormalizer shells out to ffmpeg to transcode arbitrary input to
// 16 kHz mono 16-bit PCM WAV.
type FFmpegNormalizer struct {
	binaryPath string
	logger     *zap.Logger
}

func NewFFmpegNormalizer(binaryPath string, logger *zap.Logger) *FFmpegNormalizer {
	if binaryPath == "" {
		binaryPath = "ffmpeg"
	}
	return &FFmpegNormalizer{binaryPath: binaryPath, logger: logger}
}

func (normalizer *FFmpegNormalizer) Normalize(ctx context.Context, input []byte) ([]byte, error) {
	if len(input) == 0 {
		return nil, fmt.Errorf("%w: empty audio payload", ErrMediaDecode)
	}
	if len(input) > MaxPayloadBytes {
		return nil, fmt.Errorf("%w: payload exceeds %d bytes", ErrMediaDecode, MaxPayloadBytes)
	}

	workDir := os.TempDir()
	inputPath := filepath.Join(workDir, fmt.Sprintf("voicelog-in-%s", uuid.New().String()))
	outputPath := filepath.Join(workDir, fmt.Sprintf("voicelog-out-%s.wav", uuid.New().String()))
	defer os.Remove(inputPath)
	defer os.Remove(outputPath)

	if err := os.WriteFile(inputPath, input, 0o600); err != nil {
		return nil, fmt.Errorf("stage audio payload: %w", err)
	}

	command := exec.CommandContext(ctx, normalizer.binaryPath,
		"-i", inputPath,
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-f", "wav",
		"-y",
		outputPath,
	)
	var stderr bytes.Buffer
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		detail := lastLine(stderr.String())
		normalizer.logger.Warn("ffmpeg transcode failed",
			zap.Error(err),
			zap.String("detail", detail),
		)
		if detail == "" {
			return nil, fmt.Errorf("%w: %v", ErrMediaDecode, err)
		}
		return nil, fmt.Errorf("%w: %s", ErrMediaDecode, detail)
	}

	wav, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("read normalized audio: %w", err)
	}
	return wav, nil
}

func lastLine(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
