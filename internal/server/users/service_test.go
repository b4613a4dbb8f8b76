package users_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmarques/despesas/internal/common"
	"github.com/dmarques/despesas/internal/server/auth"
	"github.com/dmarques/despesas/internal/server/config"
	"github.com/dmarques/despesas/internal/server/shared/db"
	"github.com/dmarques/despesas/internal/server/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"
	cfg.TokenValidityDuration = time.Hour
	return cfg
}

func newService(t *testing.T) *users.Service {
	t.Helper()
	manager, err := db.NewRepositoryManager(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })
	return users.NewService(manager.Users(), testConfig())
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ana", "ana@x.com", "abc123")
	require.NoError(t, err)
	assert.Positive(t, user.ID)
	assert.Equal(t, "Ana", user.Name)
	assert.NotEqual(t, "abc123", user.PasswordHash, "plaintext must never be stored")

	result, err := svc.Login(ctx, "ana@x.com", "abc123")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	identity, err := auth.ParseToken(result.Token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, "Ana", identity.UserName)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "ana@x.com", "abc123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Outra Ana", "ana@x.com", "different")
	assert.ErrorIs(t, err, common.ErrorEmailTaken)
}

func TestRegister_DuplicateEmail_Concurrent(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	const attempts = 8
	results := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Register(ctx, "Ana", "race@x.com", "abc123")
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, common.ErrorEmailTaken)
		}
	}
	assert.Equal(t, 1, successes, "exactly one concurrent registration must win")
}

func TestRegister_Validation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	tests := []struct {
		name, userName, email, senha string
	}{
		{"empty name", "", "a@x.com", "abc123"},
		{"empty email", "Ana", "", "abc123"},
		{"empty password", "Ana", "a@x.com", ""},
		{"whitespace name", "   ", "a@x.com", "abc123"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.userName, tc.email, tc.senha)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newService(t)

	_, err := svc.Login(context.Background(), "nobody@x.com", "abc123")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "ana@x.com", "abc123")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "ana@x.com", "abc124")
	assert.ErrorIs(t, err, common.ErrorUnauthorized, "wrong password must look like unknown email")
}

func TestLogin_EmailCaseSensitive(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", "Ana@X.com", "abc123")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "ana@x.com", "abc123")
	assert.ErrorIs(t, err, common.ErrorUnauthorized, "emails are compared as stored")
}
