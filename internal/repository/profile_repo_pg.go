package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

type PgProfileRepository struct {
	pool Querier
}

func NewPgProfileRepository(pool Querier) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

func (r *PgProfileRepository) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `
		SELECT data
		FROM user_profiles
		WHERE key = $1
	`
	var data string
	err := r.pool.QueryRow(ctx, query, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

func (r *PgProfileRepository) Put(ctx context.Context, key string, data []byte) error {
	const query = `
		INSERT INTO user_profiles (key, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query, key, string(data), time.Now().UTC())
	return err
}
