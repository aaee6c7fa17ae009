package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db/dbtest"
)

var testArgon2Params = Argon2Params{
	Memory:     1024,
	Iterations: 1,
	Threads:    1,
	SaltLength: 16,
	KeyLength:  32,
}

type testEnv struct {
	repo      *db.Repository
	identity  *IdentityService
	bookmarks *BookmarkService
	users     *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repo := dbtest.NewRepository(t)
	logger := zap.NewNop().Sugar()
	tokens := NewJWTIssuer("test-secret", 20*time.Minute)

	return &testEnv{
		repo:      repo,
		identity:  NewIdentityService(repo, NewArgon2Hasher(testArgon2Params), tokens, logger),
		bookmarks: NewBookmarkService(repo, logger),
		users:     NewUserService(repo),
	}
}

// register creates a user and returns its id as resolved from the token.
func (e *testEnv) register(t *testing.T, email string) uint64 {
	t.Helper()

	token, err := e.identity.Register(context.Background(), email, "123456")
	require.NoError(t, err)

	identity, err := e.identity.VerifyToken(token.AccessToken)
	require.NoError(t, err)
	return identity.UserID
}

func strPtr(s string) *string { return &s }
