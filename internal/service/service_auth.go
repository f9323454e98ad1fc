package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/asset-tracker/internal/config"
	"github.com/MKhiriev/asset-tracker/internal/logger"
	"github.com/MKhiriev/asset-tracker/internal/store"
	"github.com/MKhiriev/asset-tracker/internal/utils"
	"github.com/MKhiriev/asset-tracker/internal/validators"
	"github.com/MKhiriev/asset-tracker/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against bcrypt hashes stored through a
// UserRepository and signs HS256 JWT tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the work factor used when hashing seeded passwords.
	bcryptCost int

	// now stamps the creation time of seeded accounts.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository: userRepository,
		validator:      validators.NewInputValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cost,
		now:            time.Now,
		logger:         logger,
	}
}

// Login authenticates an existing user.
//
// Both fields are required; every missing one is reported in a single
// *validators.ValidationError. The username is matched exactly. An unknown
// username and a password mismatch both yield ErrInvalidCredentials, so the
// caller cannot tell which one failed.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("login validation failed: %w", err)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("username", credentials.Username).Msg("login attempt for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Info().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong signature, malformed)
// is normalised to ErrInvalidToken so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrMissingToken
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}

// SeedUser hashes password with bcrypt and stores the account. An already
// existing username is left untouched and is not an error.
func (a *authService) SeedUser(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: empty username or password", ErrSeedingUser)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSeedingUser, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    a.now().UTC(),
	})
	if errors.Is(err, store.ErrLoginAlreadyExists) {
		a.logger.Info().Str("username", username).Msg("seed user already exists")
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSeedingUser, err)
	}

	a.logger.Info().Int64("id", user.UserID).Str("username", user.Username).Msg("seed user created")
	return nil
}
