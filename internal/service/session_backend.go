package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-app-lock/internal/config"
	"github.com/MKhiriev/go-app-lock/internal/logger"
	"github.com/MKhiriev/go-app-lock/internal/utils"
	"github.com/MKhiriev/go-app-lock/models"
	"github.com/golang-jwt/jwt/v5"
)

// account is one in-memory dev-server user record. Passwords are stored as
// keyed HMAC-SHA256 digests, never in the clear.
type account struct {
	userID       int64
	login        string
	passwordHash string

	databaseUnlocked bool
}

// sessionBackendService is the in-memory [SessionBackendService] of the dev
// server. It exists so the client's full verification flow can be exercised
// without a production messaging backend; accounts live for the lifetime of
// the process.
type sessionBackendService struct {
	cfg config.App

	mu       sync.RWMutex
	byLogin  map[string]*account
	byUserID map[int64]*account
	nextID   int64

	logger *logger.Logger
}

func NewSessionBackend(cfg config.App, logger *logger.Logger) SessionBackendService {
	return &sessionBackendService{
		cfg:      cfg,
		byLogin:  make(map[string]*account),
		byUserID: make(map[int64]*account),
		logger:   logger,
	}
}

// Login implements [SessionBackendService].
func (s *sessionBackendService) Login(ctx context.Context, login, password string) (models.Token, error) {
	if login == "" || password == "" {
		return models.Token{}, fmt.Errorf("%w: empty login or password", ErrInvalidDataProvided)
	}

	passwordHash := utils.HashString(password, s.cfg.HashKey)

	s.mu.Lock()
	acc, exists := s.byLogin[login]
	if !exists {
		s.nextID++
		acc = &account{userID: s.nextID, login: login, passwordHash: passwordHash}
		s.byLogin[login] = acc
		s.byUserID[acc.userID] = acc
		s.logger.Info().Str("func", "Login").Str("login", login).Msg("registered new dev account")
	}
	s.mu.Unlock()

	if subtle.ConstantTimeCompare([]byte(acc.passwordHash), []byte(passwordHash)) != 1 {
		return models.Token{}, ErrWrongPassword
	}

	token, err := utils.GenerateJWTToken(s.cfg.TokenIssuer, acc.userID, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("generate session token: %w", err)
	}
	token.UserID = acc.userID

	return token, nil
}

// ParseToken implements [SessionBackendService].
func (s *sessionBackendService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.cfg.TokenSignKey, s.cfg.TokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

// VerifyPassword implements [SessionBackendService].
func (s *sessionBackendService) VerifyPassword(ctx context.Context, userID int64, password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: empty password", ErrInvalidDataProvided)
	}

	s.mu.RLock()
	acc, exists := s.byUserID[userID]
	s.mu.RUnlock()

	if !exists {
		return models.VerdictUnknown, nil
	}

	passwordHash := utils.HashString(password, s.cfg.HashKey)
	if subtle.ConstantTimeCompare([]byte(acc.passwordHash), []byte(passwordHash)) != 1 {
		return models.VerdictDenied, nil
	}

	return models.VerdictValidated, nil
}

// UnlockDatabase implements [SessionBackendService].
func (s *sessionBackendService) UnlockDatabase(ctx context.Context, userID int64, proof []byte) error {
	if len(proof) == 0 {
		return fmt.Errorf("%w: empty proof", ErrInvalidProof)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, exists := s.byUserID[userID]
	if !exists {
		return fmt.Errorf("%w: unknown account", ErrInvalidProof)
	}
	acc.databaseUnlocked = true

	return nil
}
