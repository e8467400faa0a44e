package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"swasthya-ai/internal/domain"
	"swasthya-ai/internal/repository"
)

var (
	ErrSessionNotFound       = errors.New("session not found")
	ErrTranscriptUnavailable = errors.New("transcript archive not configured")
)

// TranscriptArchive registra la cabecera de cada sesión además de sus mensajes
// y permite leerlos de vuelta.
type TranscriptArchive interface {
	TranscriptRecorder
	CreateSession(ctx context.Context, rec repository.SessionRecord) error
	GetSession(ctx context.Context, id string) (repository.SessionRecord, error)
	ListBySession(ctx context.Context, sessionID string) ([]domain.Message, error)
}

// SessionManager mantiene las sesiones activas en memoria.
type SessionManager struct {
	deps    SessionDeps
	archive TranscriptArchive

	mu       sync.RWMutex
	sessions map[string]*ChatSession
}

// NewSessionManager crea el gestor; archive puede ser nil.
func NewSessionManager(deps SessionDeps, archive TranscriptArchive) *SessionManager {
	deps = deps.withDefaults()
	if archive != nil {
		deps.Transcript = archive
	}
	return &SessionManager{
		deps:     deps,
		archive:  archive,
		sessions: make(map[string]*ChatSession),
	}
}

// Create abre una sesión nueva. profileID vacío usa la clave de perfil fija.
func (m *SessionManager) Create(ctx context.Context, lang domain.Language, profileID string) (*ChatSession, error) {
	parsed, ok := domain.ParseLanguage(string(lang))
	if !ok {
		return nil, ErrUnsupportedLanguage
	}
	id := uuid.NewString()
	profileKey := ProfileKey(profileID)

	if m.archive != nil {
		rec := repository.SessionRecord{
			ID:         id,
			ProfileKey: profileKey,
			Language:   parsed,
			CreatedAt:  m.deps.Now().UTC(),
		}
		if err := m.archive.CreateSession(ctx, rec); err != nil {
			m.deps.Logger.Warn("archive session failed", zap.String("session_id", id), zap.Error(err))
		}
	}

	session, err := NewChatSession(ctx, m.deps, id, parsed, profileKey)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[id] = session
	n := len(m.sessions)
	m.mu.Unlock()

	m.deps.Metrics.SetActiveSessions(n)
	m.deps.Logger.Info("session created", zap.String("session_id", id), zap.String("language", string(parsed)))
	return session, nil
}

func (m *SessionManager) Get(id string) (*ChatSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[strings.TrimSpace(id)]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (m *SessionManager) Delete(id string) error {
	id = strings.TrimSpace(id)
	m.mu.Lock()
	session, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	n := len(m.sessions)
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	session.Close()
	m.deps.Metrics.SetActiveSessions(n)
	return nil
}

// Transcript lee del archivo la cabecera y los mensajes de una sesión.
// Funciona también para sesiones ya expulsadas de memoria.
func (m *SessionManager) Transcript(ctx context.Context, id string) (repository.SessionRecord, []domain.Message, error) {
	if m.archive == nil {
		return repository.SessionRecord{}, nil, ErrTranscriptUnavailable
	}
	id = strings.TrimSpace(id)
	rec, err := m.archive.GetSession(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.SessionRecord{}, nil, ErrSessionNotFound
	}
	if err != nil {
		return repository.SessionRecord{}, nil, fmt.Errorf("load transcript session: %w", err)
	}
	messages, err := m.archive.ListBySession(ctx, id)
	if err != nil {
		return repository.SessionRecord{}, nil, fmt.Errorf("load transcript messages: %w", err)
	}
	return rec, messages, nil
}

// Cleanup cierra las sesiones sin actividad durante maxIdle y devuelve cuántas eliminó.
func (m *SessionManager) Cleanup(maxIdle time.Duration) int {
	cutoff := m.deps.Now().UTC().Add(-maxIdle)

	m.mu.Lock()
	var stale []*ChatSession
	for id, session := range m.sessions {
		if session.LastActive().Before(cutoff) {
			stale = append(stale, session)
			delete(m.sessions, id)
		}
	}
	n := len(m.sessions)
	m.mu.Unlock()

	for _, session := range stale {
		session.Close()
	}
	if len(stale) > 0 {
		m.deps.Metrics.SetActiveSessions(n)
		m.deps.Logger.Info("idle sessions evicted", zap.Int("count", len(stale)))
	}
	return len(stale)
}

func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
