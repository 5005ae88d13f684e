package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/alderwick/voicelog/internal/db"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// passthroughNormalizer stands in for ffmpeg so handler tests stay
// hermetic: the payload is returned as-is.
type passthroughNormalizer struct{}

func (passthroughNormalizer) Normalize(_ context.Context, input []byte) ([]byte, error) {
	return input, nil
}

// stubTranscriber returns canned transcription results and records the path
// it was asked to read.
type stubTranscriber struct {
	transcript     string
	summary        string
	transcribedRef string
}

func (stub *stubTranscriber) Transcribe(_ context.Context, audioPath string) (string, error) {
	stub.transcribedRef = audioPath
	return stub.transcript, nil
}

func (stub *stubTranscriber) Summarize(_ context.Context, _ string) (string, error) {
	return stub.summary, nil
}

type testApp struct {
	app         *fiber.App
	database    *gorm.DB
	mediaRoot   string
	transcriber *stubTranscriber
}

func newTestApp(t *testing.T) testApp {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "voicelog-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	mediaRoot := t.TempDir()
	transcriber := &stubTranscriber{transcript: "went for a run", summary: "a run"}
	handler := NewHandler(database, "test-secret-key", mediaRoot, time.UTC, zap.NewNop(), passthroughNormalizer{}, transcriber)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return testApp{
		app:         app,
		database:    database,
		mediaRoot:   mediaRoot,
		transcriber: transcriber,
	}
}

func signupTestUser(t *testing.T, app *fiber.App, username string, password string) {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": password,
	})
	if err != nil {
		t.Fatalf("marshal signup payload: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, "/api/signup", bytes.NewReader(body))
	request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("signup request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("signup expected status 201, got %d", response.StatusCode)
	}
}

func obtainAccessToken(t *testing.T, app *fiber.App, username string, password string) string {
	t.Helper()

	access, _ := obtainTokenPair(t, app, username, password)
	return access
}

func obtainTokenPair(t *testing.T, app *fiber.App, username string, password string) (string, string) {
	t.Helper()

	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		t.Fatalf("marshal credentials: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, "/api/token", bytes.NewReader(body))
	request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("token request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("token expected status 200, got %d", response.StatusCode)
	}

	var payload struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode token response: %v", err)
	}
	if payload.Access == "" || payload.Refresh == "" {
		t.Fatal("token response missing access or refresh token")
	}
	return payload.Access, payload.Refresh
}

func authorizedTestUser(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	signupTestUser(t, app, username, "StrongPass1")
	return obtainAccessToken(t, app, username, "StrongPass1")
}

func authorizedJSONRequest(method string, target string, body []byte, accessToken string) *http.Request {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	if body != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	request.Header.Set("Authorization", "Bearer "+accessToken)
	return request
}

func buildMultipartForm(t *testing.T, fields map[string]string, fileField string, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write form field %s: %v", key, err)
		}
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(fileContent); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buffer, writer.FormDataContentType()
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return payload.Error
}

func decodeJSONBody[T any](t *testing.T, body io.Reader) T {
	t.Helper()

	var payload T
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload
}
