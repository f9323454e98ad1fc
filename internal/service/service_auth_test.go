package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/asset-tracker/internal/config"
	"github.com/MKhiriev/asset-tracker/internal/logger"
	"github.com/MKhiriev/asset-tracker/internal/mock"
	"github.com/MKhiriev/asset-tracker/internal/store"
	"github.com/MKhiriev/asset-tracker/internal/utils"
	"github.com/MKhiriev/asset-tracker/internal/validators"
	"github.com/MKhiriev/asset-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "asset-tracker-test"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()

	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, config.App{
		TokenSignKey:  testSignKey,
		TokenIssuer:   testIssuer,
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}, logger.Nop())

	return svc, repo
}

func hashed(t *testing.T, password string) string {
	t.Helper()

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: 1, Username: "admin", PasswordHash: hashed(t, "admin123")}
	repo.EXPECT().FindUserByUsername(ctx, "admin").Return(stored, nil)

	user, err := svc.Login(ctx, models.Credentials{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "admin", user.Username)
}

func TestAuthService_Login_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: 1, Username: "admin", PasswordHash: hashed(t, "admin123")}
	repo.EXPECT().FindUserByUsername(ctx, "admin").Return(stored, nil)
	repo.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, wrongPassErr := svc.Login(ctx, models.Credentials{Username: "admin", Password: "wrong"})
	_, unknownErr := svc.Login(ctx, models.Credentials{Username: "ghost", Password: "admin123"})

	require.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr.Error(), unknownErr.Error())
}

func TestAuthService_Login_MissingFields_NoLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.Credentials{})
	require.ErrorIs(t, err, validators.ErrValidation)

	fields := validators.FieldErrors(err)
	require.Len(t, fields, 2)
	assert.Equal(t, validators.FieldUsername, fields[0].Field)
	assert.Equal(t, validators.FieldPassword, fields[1].Field)
}

func TestAuthService_Login_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "admin").Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.Login(ctx, models.Credentials{Username: "admin", Password: "x"})
	require.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
}

// ── CreateToken / ParseToken ─────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42, Username: "admin"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, models.Principal{UserID: 42, Username: "admin"}, parsed.Principal())
}

func TestAuthService_ParseToken_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "")
	require.ErrorIs(t, err, ErrMissingToken)
}

func TestAuthService_ParseToken_Rejections(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	expired, err := utils.GenerateJWTToken(testIssuer, 1, "admin", -time.Minute, testSignKey)
	require.NoError(t, err)
	foreignKey, err := utils.GenerateJWTToken(testIssuer, 1, "admin", time.Hour, "other-key")
	require.NoError(t, err)
	foreignIssuer, err := utils.GenerateJWTToken("someone-else", 1, "admin", time.Hour, testSignKey)
	require.NoError(t, err)
	valid, err := utils.GenerateJWTToken(testIssuer, 1, "admin", time.Hour, testSignKey)
	require.NoError(t, err)
	sig := valid.SignedString

	tests := map[string]string{
		"expired":        expired.SignedString,
		"wrong key":      foreignKey.SignedString,
		"wrong issuer":   foreignIssuer.SignedString,
		"malformed":      "not.a.jwt",
		"tampered":       sig[:len(sig)-4] + flip(sig[len(sig)-4:]),
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, raw)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func flip(s string) string {
	if s == "AAAA" {
		return "BBBB"
	}
	return "AAAA"
}

// ── SeedUser ─────────────────────────────────────────────────────────────────

func TestAuthService_SeedUser_StoresBcryptHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "admin", u.Username)
			assert.NotEqual(t, "admin123", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("admin123")))
			assert.False(t, u.CreatedAt.IsZero())
			u.UserID = 1
			return u, nil
		},
	)

	require.NoError(t, svc.SeedUser(ctx, "admin", "admin123"))
}

func TestAuthService_SeedUser_StampsCreatedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	svc.(*authService).now = func() time.Time { return fixedNow }
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, fixedNow, u.CreatedAt)
			return u, nil
		},
	)

	require.NoError(t, svc.SeedUser(ctx, "admin", "admin123"))
}

func TestAuthService_SeedUser_AlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	require.NoError(t, svc.SeedUser(ctx, "admin", "admin123"))
}

func TestAuthService_SeedUser_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	require.ErrorIs(t, svc.SeedUser(ctx, "", "x"), ErrSeedingUser)

	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)
	err := svc.SeedUser(ctx, "admin", "admin123")
	require.ErrorIs(t, err, ErrSeedingUser)
	require.ErrorIs(t, err, store.ErrExecutingQuery)
}
