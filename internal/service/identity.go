package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/metrics"
)

type (
	UserRepository interface {
		InsertUser(ctx context.Context, user *db.User) error
		FindUserByEmail(ctx context.Context, email string) (*db.User, error)
		FindUserByID(ctx context.Context, id uint64) (*db.User, error)
		UpdateUser(ctx context.Context, id uint64, patch db.UserPatch) (*db.User, error)
	}

	IdentityService struct {
		users  UserRepository
		hasher PasswordHasher
		tokens TokenIssuer
		logger *zap.SugaredLogger
	}
)

func NewIdentityService(users UserRepository, hasher PasswordHasher, tokens TokenIssuer, l *zap.SugaredLogger) *IdentityService {
	return &IdentityService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: l,
	}
}

// Register stores a new user and returns a token for it. A taken email is
// detected by the unique index, not by a lookup beforehand.
func (s *IdentityService) Register(ctx context.Context, email, password string) (*AccessToken, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, s.authFailed("register", errors.Wrap(err, "hash password"))
	}

	user := db.User{
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.InsertUser(ctx, &user); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			metrics.AuthAttemptsTotal.WithLabelValues("register", "conflict").Inc()
			return nil, ErrConflict
		}
		return nil, s.authFailed("register", err)
	}

	s.logger.Infow("user registered", "user_id", user.ID)
	metrics.AuthAttemptsTotal.WithLabelValues("register", metrics.ResultOK).Inc()
	return s.IssueToken(&user)
}

// Login returns ErrWrongCredentials both for an unknown email and for a
// wrong password.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*AccessToken, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			metrics.AuthAttemptsTotal.WithLabelValues("login", "wrong_credentials").Inc()
			return nil, ErrWrongCredentials
		}
		return nil, s.authFailed("login", err)
	}

	ok, err := s.hasher.Verify(user.PasswordHash, password)
	if err != nil {
		return nil, s.authFailed("login", errors.Wrap(err, "verify password"))
	}
	if !ok {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "wrong_credentials").Inc()
		return nil, ErrWrongCredentials
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", metrics.ResultOK).Inc()
	return s.IssueToken(user)
}

func (s *IdentityService) IssueToken(user *db.User) (*AccessToken, error) {
	return s.tokens.Issue(user)
}

func (s *IdentityService) VerifyToken(token string) (*Identity, error) {
	return s.tokens.Verify(token)
}

func (s *IdentityService) authFailed(op string, err error) error {
	metrics.AuthAttemptsTotal.WithLabelValues(op, metrics.ResultError).Inc()
	return err
}
