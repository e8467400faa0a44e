package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"swasthya-ai/internal/domain"
	"swasthya-ai/internal/healthdata"
	"swasthya-ai/internal/metrics"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

const (
	subscriberBuffer = 32
	recordTimeout    = 2 * time.Second
)

// TranscriptRecorder archiva los mensajes a medida que se agregan. Es opcional.
type TranscriptRecorder interface {
	Append(ctx context.Context, sessionID string, msg domain.Message) error
}

type EventKind string

const (
	EventMessage EventKind = "message"
	EventReset   EventKind = "reset"
)

// SessionEvent notifica a los suscriptores cambios en el historial.
type SessionEvent struct {
	Kind     EventKind       `json:"kind"`
	Message  *domain.Message `json:"message,omitempty"`
	Language domain.Language `json:"language"`
}

// SessionDeps agrupa las dependencias compartidas por todas las sesiones.
type SessionDeps struct {
	Resolver   *ResponseResolver
	Questions  []domain.Question
	Profiles   *ProfileService
	Transcript TranscriptRecorder
	Scheduler  Scheduler
	Pacing     Pacing
	Metrics    *metrics.Collector
	Logger     *zap.Logger
	Now        func() time.Time
}

func (d SessionDeps) withDefaults() SessionDeps {
	if d.Resolver == nil {
		d.Resolver = NewResponseResolver(nil)
	}
	if d.Questions == nil {
		d.Questions = healthdata.Default().Questions
	}
	if d.Scheduler == nil {
		d.Scheduler = NewTimerScheduler()
	}
	if d.Pacing.isZero() {
		d.Pacing = DefaultPacing
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// ChatSession es el estado de una conversación: historial, cuestionario, perfil e idioma.
// Las respuestas se entregan con demora; cambiar de idioma incrementa la generación
// y descarta cualquier entrega pendiente de la generación anterior.
type ChatSession struct {
	deps       SessionDeps
	id         string
	profileKey string
	createdAt  time.Time

	mu          sync.Mutex
	lang        domain.Language
	flow        *SymptomFlow
	presented   int
	messages    []domain.Message
	profile     domain.UserProfile
	profileRev  uint64
	appliedRev  uint64
	pending     int
	generation  uint64
	seq         int64
	lastActive  time.Time
	closed      bool
	subscribers map[int]chan SessionEvent
	nextSubID   int
}

// NewChatSession crea la sesión, carga el perfil y presenta la primera pregunta.
// Un perfil que no se puede leer no impide crear la sesión.
func NewChatSession(ctx context.Context, deps SessionDeps, id string, lang domain.Language, profileKey string) (*ChatSession, error) {
	parsed, ok := domain.ParseLanguage(string(lang))
	if !ok {
		return nil, ErrUnsupportedLanguage
	}
	deps = deps.withDefaults()
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}
	if strings.TrimSpace(profileKey) == "" {
		profileKey = ProfileStorageKey
	}

	now := deps.Now().UTC()
	s := &ChatSession{
		deps:        deps,
		id:          id,
		profileKey:  profileKey,
		createdAt:   now,
		lang:        parsed,
		flow:        NewSymptomFlow(deps.Questions),
		presented:   -1,
		lastActive:  now,
		subscribers: make(map[int]chan SessionEvent),
	}

	if deps.Profiles != nil {
		profile, err := deps.Profiles.Load(ctx, profileKey)
		if err != nil {
			deps.Logger.Warn("profile load failed, starting empty", zap.String("session_id", id), zap.Error(err))
		}
		s.profile = profile
	}

	s.mu.Lock()
	first := s.startLocked()
	s.mu.Unlock()
	s.record(ctx, first...)

	return s, nil
}

func (s *ChatSession) ID() string {
	return s.id
}

func (s *ChatSession) ProfileKey() string {
	return s.profileKey
}

func (s *ChatSession) Language() domain.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Composing es true mientras haya alguna respuesta pendiente de entrega.
func (s *ChatSession) Composing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending > 0
}

func (s *ChatSession) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// SubmitText agrega el mensaje del usuario y programa la respuesta del bot.
// Antes de terminar el cuestionario el texto libre se descarta; devuelve false en ese caso
// y también para texto vacío.
func (s *ChatSession) SubmitText(ctx context.Context, raw string) bool {
	text := strings.TrimSpace(raw)
	if text == "" {
		return false
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.touchLocked()
	if !s.flow.Finished() {
		s.mu.Unlock()
		s.deps.Logger.Debug("free text ignored during questionnaire", zap.String("session_id", s.id))
		return false
	}
	userMsg := s.appendLocked(text, true, nil)
	res := s.deps.Resolver.Resolve(text, s.lang)
	s.pending++
	gen := s.generation
	lang := s.lang
	var rev uint64
	if res.Facts.HasAny() {
		s.profile = s.profile.Merge(factsToProfile(res.Facts))
		s.profileRev++
		rev = s.profileRev
	}
	s.mu.Unlock()

	s.record(ctx, userMsg)
	if res.Facts.HasAny() {
		s.persistProfile(ctx, factsToProfile(res.Facts), rev)
	}

	s.deps.Scheduler.AfterFunc(s.deps.Pacing.ReplyDelay(), func() {
		s.deliverReply(gen, lang, res)
	})
	return true
}

// SelectOption responde la pregunta actual del cuestionario.
func (s *ChatSession) SelectOption(ctx context.Context, optionID string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	s.touchLocked()
	if s.flow.Finished() {
		s.mu.Unlock()
		return ErrFlowFinished
	}
	if s.presented != s.flow.Index() {
		s.mu.Unlock()
		return ErrQuestionPending
	}
	step, err := s.flow.Answer(strings.TrimSpace(optionID))
	if err != nil {
		s.mu.Unlock()
		return err
	}

	appended := []domain.Message{s.appendLocked(step.Option.Text.In(s.lang), true, nil)}
	if step.Finished {
		closing := healthdata.Closing(s.lang, s.flow.SelectedTexts(s.lang))
		appended = append(appended, s.appendLocked(closing, false, nil))
	}
	gen := s.generation
	s.mu.Unlock()

	s.record(ctx, appended...)
	if step.Finished {
		s.deps.Metrics.FlowCompleted()
		return nil
	}

	next := step.Next
	s.deps.Scheduler.AfterFunc(s.deps.Pacing.QuestionDelay, func() {
		s.presentQuestion(gen, next)
	})
	return nil
}

// SetLanguage cambia el idioma y reinicia la conversación en la primera pregunta.
// Elegir el idioma actual no tiene efecto.
func (s *ChatSession) SetLanguage(ctx context.Context, lang domain.Language) error {
	parsed, ok := domain.ParseLanguage(string(lang))
	if !ok {
		return ErrUnsupportedLanguage
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	s.touchLocked()
	if parsed == s.lang {
		s.mu.Unlock()
		return nil
	}
	s.lang = parsed
	appended := s.resetLocked()
	s.mu.Unlock()

	s.record(ctx, appended...)
	return nil
}

// UpdateProfile aplica una actualización parcial del perfil, la persiste y devuelve
// el perfil resultante, que incluye lo guardado por otras sesiones con la misma clave.
func (s *ChatSession) UpdateProfile(ctx context.Context, update domain.UserProfile) domain.UserProfile {
	s.mu.Lock()
	s.touchLocked()
	s.profile = s.profile.Merge(update)
	s.profileRev++
	rev := s.profileRev
	s.mu.Unlock()

	s.persistProfile(ctx, update, rev)
	return s.Profile()
}

// ReloadProfile vuelve a leer el perfil del almacén. Mientras haya escrituras propias en
// curso se devuelve la copia local.
func (s *ChatSession) ReloadProfile(ctx context.Context) domain.UserProfile {
	if s.deps.Profiles == nil {
		return s.Profile()
	}
	s.mu.Lock()
	rev := s.profileRev
	s.mu.Unlock()

	stored, err := s.deps.Profiles.Load(ctx, s.profileKey)
	if err != nil {
		s.deps.Logger.Warn("profile reload failed", zap.String("session_id", s.id), zap.Error(err))
		return s.Profile()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appliedRev == rev && s.profileRev == rev {
		s.profile = stored
	}
	return s.profile
}

func (s *ChatSession) Profile() domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Snapshot devuelve una copia del estado actual.
func (s *ChatSession) Snapshot() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := make([]domain.Message, len(s.messages))
	copy(messages, s.messages)
	return domain.SessionState{
		ID:        s.id,
		Language:  s.lang,
		Flow:      s.flow.Status(),
		Messages:  messages,
		Profile:   s.profile,
		Composing: s.pending > 0,
		CreatedAt: s.createdAt,
	}
}

// Subscribe devuelve un canal de eventos y una función para cancelar la suscripción.
// Un suscriptor lento pierde eventos en lugar de bloquear la sesión.
func (s *ChatSession) Subscribe() (<-chan SessionEvent, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan SessionEvent, subscriberBuffer)
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch
	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(c)
		}
	}
}

// Close descarta entregas pendientes y cierra los suscriptores.
func (s *ChatSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.generation++
	s.pending = 0
	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
}

func (s *ChatSession) deliverReply(gen uint64, lang domain.Language, res Resolution) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	msg := s.appendLocked(res.Reply, false, nil)
	s.pending--
	s.mu.Unlock()

	s.deps.Metrics.ObserveReply(string(res.Branch), string(lang))
	s.record(context.Background(), msg)
}

func (s *ChatSession) presentQuestion(gen uint64, q domain.Question) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	msg := s.appendLocked(q.Prompt.In(s.lang), false, q.Options)
	s.presented = s.flow.Index()
	s.mu.Unlock()

	s.record(context.Background(), msg)
}

// resetLocked vacía el historial y vuelve al inicio del cuestionario.
func (s *ChatSession) resetLocked() []domain.Message {
	s.generation++
	s.pending = 0
	s.messages = nil
	s.flow.Reset()
	s.presented = -1
	s.notifyLocked(SessionEvent{Kind: EventReset, Language: s.lang})
	return s.startLocked()
}

// startLocked presenta la primera pregunta, o el saludo si no hay cuestionario.
func (s *ChatSession) startLocked() []domain.Message {
	if q, ok := s.flow.Current(); ok {
		msg := s.appendLocked(q.Prompt.In(s.lang), false, q.Options)
		s.presented = s.flow.Index()
		return []domain.Message{msg}
	}
	return []domain.Message{s.appendLocked(healthdata.Welcome(s.lang), false, nil)}
}

func (s *ChatSession) appendLocked(text string, isUser bool, options []domain.Option) domain.Message {
	s.seq++
	msg := domain.Message{
		ID:        newMessageID(),
		Seq:       s.seq,
		Text:      text,
		IsUser:    isUser,
		Timestamp: s.deps.Now().UTC(),
		Options:   options,
	}
	s.messages = append(s.messages, msg)
	s.notifyLocked(SessionEvent{Kind: EventMessage, Message: &msg, Language: s.lang})
	return msg
}

func (s *ChatSession) notifyLocked(ev SessionEvent) {
	for _, ch := range s.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (s *ChatSession) touchLocked() {
	s.lastActive = s.deps.Now().UTC()
}

// persistProfile guarda la actualización en el almacén y adopta el perfil fusionado que
// devuelve. Si el almacén falla se conserva la fusión local. Una revisión más vieja que la
// ya aplicada no pisa el perfil.
func (s *ChatSession) persistProfile(ctx context.Context, update domain.UserProfile, rev uint64) {
	if s.deps.Profiles == nil {
		return
	}
	merged, err := s.deps.Profiles.Update(ctx, s.profileKey, update)
	if err != nil {
		s.deps.Logger.Warn("profile persist failed", zap.String("session_id", s.id), zap.Error(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if rev <= s.appliedRev {
		return
	}
	s.appliedRev = rev
	if err == nil {
		s.profile = merged
	}
}

func (s *ChatSession) record(ctx context.Context, msgs ...domain.Message) {
	if s.deps.Transcript == nil || len(msgs) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()
	for _, msg := range msgs {
		if err := s.deps.Transcript.Append(ctx, s.id, msg); err != nil {
			s.deps.Logger.Warn("transcript append failed", zap.String("session_id", s.id), zap.Error(err))
			return
		}
	}
}

func factsToProfile(f Facts) domain.UserProfile {
	return domain.UserProfile{Name: f.Name, Age: f.Age}
}

// newMessageID usa UUIDv7, ordenable por creación.
func newMessageID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
