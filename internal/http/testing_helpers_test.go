package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swasthya-ai/internal/domain"
	"swasthya-ai/internal/healthdata"
	"swasthya-ai/internal/repository"
	"swasthya-ai/internal/service"
)

// immediateScheduler ejecuta las entregas en el acto.
type immediateScheduler struct{}

func (immediateScheduler) AfterFunc(_ time.Duration, f func()) { f() }

// memoryArchive guarda sesiones y mensajes archivados en memoria.
type memoryArchive struct {
	mu       sync.Mutex
	sessions map[string]repository.SessionRecord
	messages map[string][]domain.Message
}

func newMemoryArchive() *memoryArchive {
	return &memoryArchive{
		sessions: make(map[string]repository.SessionRecord),
		messages: make(map[string][]domain.Message),
	}
}

func (a *memoryArchive) CreateSession(_ context.Context, rec repository.SessionRecord) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sessions[rec.ID] = rec
	return nil
}

func (a *memoryArchive) GetSession(_ context.Context, id string) (repository.SessionRecord, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	rec, ok := a.sessions[id]
	if !ok {
		return repository.SessionRecord{}, repository.ErrNotFound
	}
	return rec, nil
}

func (a *memoryArchive) Append(_ context.Context, sessionID string, msg domain.Message) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages[sessionID] = append(a.messages[sessionID], msg)
	return nil
}

func (a *memoryArchive) ListBySession(_ context.Context, sessionID string) ([]domain.Message, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.Message(nil), a.messages[sessionID]...), nil
}

type testServer struct {
	router   *gin.Engine
	sessions *service.SessionManager
	tokens   *service.SessionTokenService
	profiles *service.ProfileService
}

func newTestServer(t *testing.T, ai *AIHandler, limiter service.RateLimiter) *testServer {
	t.Helper()
	return buildTestServer(t, ai, limiter, newMemoryArchive())
}

func buildTestServer(t *testing.T, ai *AIHandler, limiter service.RateLimiter, archive service.TranscriptArchive) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	profiles := service.NewProfileService(repository.NewMemoryProfileRepository(), zap.NewNop())
	manager := service.NewSessionManager(service.SessionDeps{
		Profiles:  profiles,
		Scheduler: immediateScheduler{},
	}, archive)
	tokens := service.NewSessionTokenService("test-secret", time.Hour, service.NewMemoryTokenStore())

	router := NewRouter(zap.NewNop(), RouterDeps{
		Chat:      NewChatHandler(zap.NewNop(), manager, tokens),
		Reference: NewReferenceHandler(healthdata.Default()),
		AI:        ai,
		Tokens:    tokens,
		Limiter:   limiter,
	})
	return &testServer{router: router, sessions: manager, tokens: tokens, profiles: profiles}
}

func performRequest(r http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
}
