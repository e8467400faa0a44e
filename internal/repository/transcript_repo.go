package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"swasthya-ai/internal/domain"
)

var ErrNotFound = errors.New("record not found")

// SessionRecord es la cabecera archivada de una sesión de chat.
type SessionRecord struct {
	ID         string          `json:"id"`
	ProfileKey string          `json:"profile_key"`
	Language   domain.Language `json:"language"`
	CreatedAt  time.Time       `json:"created_at"`
}

type PgTranscriptRepository struct {
	pool Querier
}

func NewPgTranscriptRepository(pool Querier) *PgTranscriptRepository {
	return &PgTranscriptRepository{pool: pool}
}

func (r *PgTranscriptRepository) CreateSession(ctx context.Context, rec SessionRecord) error {
	const query = `
		INSERT INTO chat_sessions (id, profile_key, language, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query,
		rec.ID,
		rec.ProfileKey,
		string(rec.Language),
		rec.CreatedAt,
	)
	return err
}

func (r *PgTranscriptRepository) GetSession(ctx context.Context, id string) (SessionRecord, error) {
	const query = `
		SELECT id, profile_key, language, created_at
		FROM chat_sessions
		WHERE id = $1
	`
	var rec SessionRecord
	var lang string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.ProfileKey,
		&lang,
		&rec.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return SessionRecord{}, ErrNotFound
	}
	rec.Language = domain.Language(lang)
	return rec, err
}

func (r *PgTranscriptRepository) Append(ctx context.Context, sessionID string, msg domain.Message) error {
	const query = `
		INSERT INTO chat_messages (id, session_id, seq, text, is_user, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		msg.ID,
		sessionID,
		msg.Seq,
		msg.Text,
		msg.IsUser,
		msg.Timestamp,
	)
	return err
}

func (r *PgTranscriptRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.Message, error) {
	const query = `
		SELECT id, seq, text, is_user, created_at
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY seq ASC
	`

	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		err = rows.Scan(
			&msg.ID,
			&msg.Seq,
			&msg.Text,
			&msg.IsUser,
			&msg.Timestamp,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
