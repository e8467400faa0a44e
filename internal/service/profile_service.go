package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"swasthya-ai/internal/domain"
	"swasthya-ai/internal/repository"
)

// ProfileStorageKey es la clave bajo la que se guarda el perfil del usuario.
const ProfileStorageKey = "swasthya-user-profile"

var ErrProfileServiceNotConfigured = errors.New("profile service not configured")

// ProfileKey devuelve la clave de almacenamiento para un perfil; sin id se usa la clave fija.
func ProfileKey(profileID string) string {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return ProfileStorageKey
	}
	return ProfileStorageKey + ":" + profileID
}

// ProfileService serializa perfiles en JSON sobre un ProfileRepository.
type ProfileService struct {
	repo   repository.ProfileRepository
	logger *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewProfileService(repo repository.ProfileRepository, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{
		repo:   repo,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Load devuelve el perfil guardado. Datos ausentes o ilegibles se tratan como perfil vacío;
// solo los fallos del backend devuelven error.
func (s *ProfileService) Load(ctx context.Context, key string) (domain.UserProfile, error) {
	if s == nil || s.repo == nil {
		return domain.UserProfile{}, ErrProfileServiceNotConfigured
	}
	data, err := s.repo.Get(ctx, key)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("load profile: %w", err)
	}
	if len(data) == 0 {
		return domain.UserProfile{}, nil
	}
	var profile domain.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		s.logger.Warn("stored profile is malformed, starting empty", zap.String("key", key), zap.Error(err))
		return domain.UserProfile{}, nil
	}
	return profile, nil
}

func (s *ProfileService) Save(ctx context.Context, key string, profile domain.UserProfile) error {
	if s == nil || s.repo == nil {
		return ErrProfileServiceNotConfigured
	}
	data, err := json.Marshal(profile.Normalized())
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.repo.Put(ctx, key, data); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Update carga, fusiona y guarda bajo un lock por clave. El perfil fusionado se devuelve
// aunque falle la persistencia.
func (s *ProfileService) Update(ctx context.Context, key string, update domain.UserProfile) (domain.UserProfile, error) {
	if s == nil || s.repo == nil {
		return domain.UserProfile{}.Merge(update), ErrProfileServiceNotConfigured
	}
	lock := s.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	current, loadErr := s.Load(ctx, key)
	merged := current.Merge(update)
	if loadErr != nil {
		// No se sobrescribe un perfil que no se pudo leer.
		return merged, loadErr
	}
	return merged, s.Save(ctx, key, merged)
}

func (s *ProfileService) keyLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}
