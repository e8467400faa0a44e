package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"swasthya-ai/internal/domain"
	"swasthya-ai/internal/repository"
)

type fakeArchive struct {
	recordingTranscript
	sessions  []repository.SessionRecord
	createErr error
}

func (f *fakeArchive) CreateSession(_ context.Context, rec repository.SessionRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, rec)
	return f.createErr
}

func (f *fakeArchive) GetSession(_ context.Context, id string) (repository.SessionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.sessions {
		if rec.ID == id {
			return rec, nil
		}
	}
	return repository.SessionRecord{}, repository.ErrNotFound
}

func (f *fakeArchive) ListBySession(_ context.Context, _ string) ([]domain.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Message(nil), f.messages...), nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestSessionManager_CreateGetDelete(t *testing.T) {
	archive := &fakeArchive{}
	m := NewSessionManager(SessionDeps{Scheduler: &manualScheduler{}}, archive)
	ctx := context.Background()

	s, err := m.Create(ctx, domain.LanguageTelugu, "user-7")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.ProfileKey() != ProfileKey("user-7") {
		t.Fatalf("unexpected profile key %q", s.ProfileKey())
	}
	if len(archive.sessions) != 1 || archive.sessions[0].ID != s.ID() || archive.sessions[0].Language != domain.LanguageTelugu {
		t.Fatalf("expected session archived, got %+v", archive.sessions)
	}
	if len(archive.messages) != 1 {
		t.Fatalf("expected first question archived, got %d", len(archive.messages))
	}

	got, err := m.Get(s.ID())
	if err != nil || got != s {
		t.Fatalf("expected same session, got %v err=%v", got, err)
	}
	if m.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", m.Len())
	}

	if err := m.Delete(s.ID()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := m.Get(s.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if err := m.Delete(s.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on second delete, got %v", err)
	}
	if err := s.SelectOption(ctx, "fever"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("closed session should reject options, got %v", err)
	}
}

func TestSessionManager_CreateRejectsUnknownLanguage(t *testing.T) {
	m := NewSessionManager(SessionDeps{Scheduler: &manualScheduler{}}, nil)
	if _, err := m.Create(context.Background(), "de", ""); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("no session should be stored")
	}
}

func TestSessionManager_ArchiveFailureDoesNotBlockCreate(t *testing.T) {
	archive := &fakeArchive{createErr: errors.New("db down")}
	m := NewSessionManager(SessionDeps{Scheduler: &manualScheduler{}}, archive)
	if _, err := m.Create(context.Background(), domain.LanguageEnglish, ""); err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
}

func TestSessionManager_CleanupEvictsIdleSessions(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	m := NewSessionManager(SessionDeps{Scheduler: &manualScheduler{}, Now: clock.Now}, nil)
	ctx := context.Background()

	idle, _ := m.Create(ctx, domain.LanguageEnglish, "")
	active, _ := m.Create(ctx, domain.LanguageHindi, "")

	clock.Advance(20 * time.Minute)
	if err := active.SelectOption(ctx, "fever"); err != nil {
		t.Fatalf("select: %v", err)
	}
	clock.Advance(15 * time.Minute)

	if n := m.Cleanup(30 * time.Minute); n != 1 {
		t.Fatalf("expected 1 evicted, got %d", n)
	}
	if _, err := m.Get(idle.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("idle session should be gone")
	}
	if _, err := m.Get(active.ID()); err != nil {
		t.Fatalf("active session should remain: %v", err)
	}
}

func TestSessionManager_DeleteTrimsID(t *testing.T) {
	m := NewSessionManager(SessionDeps{Scheduler: &manualScheduler{}}, nil)
	s, _ := m.Create(context.Background(), domain.LanguageEnglish, "")

	if _, err := m.Get("  " + s.ID() + " "); err != nil {
		t.Fatalf("get with padded id: %v", err)
	}
	if err := m.Delete(" " + s.ID() + "\n"); err != nil {
		t.Fatalf("expected padded id to delete, got %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("expected no sessions, got %d", m.Len())
	}
}

func TestSessionManager_Transcript(t *testing.T) {
	ctx := context.Background()

	if _, _, err := NewSessionManager(SessionDeps{Scheduler: &manualScheduler{}}, nil).Transcript(ctx, "x"); !errors.Is(err, ErrTranscriptUnavailable) {
		t.Fatalf("expected ErrTranscriptUnavailable, got %v", err)
	}

	archive := &fakeArchive{}
	m := NewSessionManager(SessionDeps{Scheduler: &manualScheduler{}}, archive)
	s, _ := m.Create(ctx, domain.LanguageHindi, "")

	rec, messages, err := m.Transcript(ctx, s.ID())
	if err != nil {
		t.Fatalf("transcript: %v", err)
	}
	if rec.ID != s.ID() || rec.Language != domain.LanguageHindi {
		t.Fatalf("unexpected record %+v", rec)
	}
	if len(messages) != 1 {
		t.Fatalf("expected first question archived, got %d", len(messages))
	}
	if _, _, err := m.Transcript(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
