package repository

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var profilesBucket = []byte("profiles")

// BoltProfileRepository persiste perfiles en un archivo local, el equivalente en servidor
// del almacenamiento del navegador.
type BoltProfileRepository struct {
	db *bolt.DB
}

func NewBoltProfileRepository(path string) (*BoltProfileRepository, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(profilesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating profiles bucket: %w", err)
	}

	return &BoltProfileRepository{db: db}, nil
}

func (r *BoltProfileRepository) Get(_ context.Context, key string) ([]byte, error) {
	var data []byte
	err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(profilesBucket).Get([]byte(key))
		if v == nil {
			return nil
		}
		// Los valores de bolt solo son válidos dentro de la transacción.
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *BoltProfileRepository) Put(_ context.Context, key string, data []byte) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(profilesBucket).Put([]byte(key), data)
	})
}

func (r *BoltProfileRepository) Close() error {
	return r.db.Close()
}
