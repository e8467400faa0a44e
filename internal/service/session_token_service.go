package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionTokenIssuer = "swasthya-ai"

var (
	ErrTokenInvalid = errors.New("session token invalid")
	ErrTokenExpired = errors.New("session token expired")
)

// SessionClaims identifica la sesión de chat a la que da acceso el token.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type IssuedToken struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// SessionTokenService emite y valida los bearer tokens de las sesiones (HS256).
// Cada token lleva un jti registrado en el store; revocarlo lo invalida antes de expirar.
type SessionTokenService struct {
	secret []byte
	ttl    time.Duration
	store  TokenStore
	now    func() time.Time
}

func NewSessionTokenService(secret string, ttl time.Duration, store TokenStore) *SessionTokenService {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	if store == nil {
		store = NewMemoryTokenStore()
	}
	return &SessionTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
		now:    time.Now,
	}
}

func (s *SessionTokenService) Issue(ctx context.Context, sessionID string) (IssuedToken, error) {
	if len(s.secret) == 0 || strings.TrimSpace(sessionID) == "" {
		return IssuedToken{}, ErrTokenInvalid
	}
	now := s.now().UTC()
	jti := uuid.NewString()
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    sessionTokenIssuer,
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return IssuedToken{}, err
	}
	if err := s.store.Store(ctx, jti, sessionID, s.ttl); err != nil {
		return IssuedToken{}, err
	}
	return IssuedToken{Token: signed, ExpiresIn: int64(s.ttl.Seconds())}, nil
}

// Parse valida firma, emisor, expiración y que el jti siga registrado.
func (s *SessionTokenService) Parse(ctx context.Context, token string) (SessionClaims, error) {
	if len(s.secret) == 0 || strings.TrimSpace(token) == "" {
		return SessionClaims{}, ErrTokenInvalid
	}

	var claims SessionClaims
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	_, err := parser.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return SessionClaims{}, ErrTokenExpired
		}
		return SessionClaims{}, ErrTokenInvalid
	}
	if !validSessionClaims(claims) {
		return SessionClaims{}, ErrTokenInvalid
	}

	ok, err := s.store.Exists(ctx, claims.ID)
	if err != nil || !ok {
		return SessionClaims{}, ErrTokenInvalid
	}
	return claims, nil
}

// Revoke invalida el token identificado por jti.
func (s *SessionTokenService) Revoke(ctx context.Context, jti string) error {
	if strings.TrimSpace(jti) == "" {
		return ErrTokenInvalid
	}
	return s.store.Revoke(ctx, jti)
}

func validSessionClaims(c SessionClaims) bool {
	if strings.TrimSpace(c.SessionID) == "" || c.Subject != c.SessionID {
		return false
	}
	return c.Issuer == sessionTokenIssuer && c.ID != ""
}
