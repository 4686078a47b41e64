package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/chore-board/internal/domain"
	"github.com/diegoclair/chore-board/internal/domain/contract"
	"github.com/diegoclair/chore-board/internal/domain/entity"
	"github.com/google/uuid"
)

const tokenSeparator = "."

// AuthConfig holds the shared password hash and the session settings.
type AuthConfig struct {
	PasswordHash  string // hex sha256 of the shared password
	SessionSecret []byte
	SessionTTL    time.Duration
}

type authService struct {
	dm  contract.DataManager
	cfg AuthConfig
	now func() time.Time
}

func newAuth(dm contract.DataManager, cfg AuthConfig, now func() time.Time) *authService {
	cfg.PasswordHash = strings.ToLower(strings.TrimSpace(cfg.PasswordHash))
	return &authService{dm: dm, cfg: cfg, now: now}
}

// HashPassword returns the hex sha256 digest the server compares against.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Login checks password against the configured hash and opens a session.
// The token is the session id and its signature; it never contains the hash.
func (s *authService) Login(ctx context.Context, password string) (string, *entity.Session, error) {
	if s.cfg.PasswordHash == "" {
		return "", nil, domain.ErrNotConfigured
	}

	incoming := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(incoming), []byte(s.cfg.PasswordHash)) != 1 {
		return "", nil, domain.ErrWrongPassword
	}

	now := s.now()
	session := &entity.Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
	}

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if _, err := tx.Session().DeleteExpired(ctx, now); err != nil {
			return err
		}
		return tx.Session().Create(ctx, session)
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session.ID + tokenSeparator + s.sign(session.ID), session, nil
}

// Verify accepts a token only if its signature matches and its session exists
// and has not expired.
func (s *authService) Verify(ctx context.Context, token string) (*entity.Session, error) {
	if s.cfg.PasswordHash == "" {
		return nil, domain.ErrNotConfigured
	}

	id, ok := s.parse(token)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.dm.Session().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil || session.Expired(s.now()) {
		return nil, domain.ErrUnauthorized
	}

	return session, nil
}

// Logout revokes the token's session. Unknown or forged tokens are ignored.
func (s *authService) Logout(ctx context.Context, token string) error {
	id, ok := s.parse(token)
	if !ok {
		return nil
	}
	if err := s.dm.Session().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *authService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.dm.Session().DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	return n, nil
}

func (s *authService) parse(token string) (string, bool) {
	id, sig, found := strings.Cut(token, tokenSeparator)
	if !found || id == "" || sig == "" {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(s.sign(id))) {
		return "", false
	}
	return id, true
}

func (s *authService) sign(id string) string {
	mac := hmac.New(sha256.New, s.cfg.SessionSecret)
	mac.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
