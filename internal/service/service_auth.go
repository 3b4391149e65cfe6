package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/antonkuklin/saas-backend/internal/config"
	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/antonkuklin/saas-backend/internal/store"
	"github.com/antonkuklin/saas-backend/internal/utils"
	"github.com/antonkuklin/saas-backend/internal/validators"
	"github.com/antonkuklin/saas-backend/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification with bcrypt, and
// the JWT token lifecycle, using a UserRepository for persistence.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// accounts. Nil when the process runs without a store.
	userRepository store.UserRepository

	// bcryptCost is the bcrypt work factor applied when hashing passwords.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// SignUp creates a new user account.
//
// It validates the payload shape, hashes the password with bcrypt, and
// delegates persistence to the UserRepository. The stored record never
// contains the plaintext password.
//
// Returns the persisted user (with a server-assigned ID) and a signed JWT, or:
//   - ErrInvalidDataProvided (wrapping the field error) on shape failure.
//   - ErrStorageUnavailable when no store is configured.
//   - store.ErrEmailAlreadyExists when the email is taken.
//   - A wrapped storage error on any other repository failure.
func (a *authService) SignUp(ctx context.Context, payload models.SignupPayload) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateSignup(payload); err != nil {
		log.Error().Err(err).Str("email", payload.Email).Msg("invalid signup payload")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if a.userRepository == nil {
		return models.User{}, models.Token{}, ErrStorageUnavailable
	}

	passwordHash, err := utils.HashPassword(payload.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Name:         payload.Name,
		Email:        payload.Email,
		PasswordHash: passwordHash,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", payload.Email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.createToken(registeredUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return registeredUser, token, nil
}

// Login authenticates an existing user.
//
// It validates the payload shape, looks up the account by email, and compares
// the supplied password against the stored bcrypt digest.
//
// Returns the authenticated user and a signed JWT, or:
//   - ErrInvalidDataProvided (wrapping the field error) on shape failure.
//   - ErrStorageUnavailable when no store is configured.
//   - ErrInvalidCredentials on an unknown email or a wrong password; the two
//     cases are deliberately indistinguishable to the caller.
//   - A wrapped storage error on any other repository failure.
func (a *authService) Login(ctx context.Context, payload models.LoginPayload) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateLogin(payload); err != nil {
		log.Error().Err(err).Str("email", payload.Email).Msg("invalid login payload")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if a.userRepository == nil {
		return models.User{}, models.Token{}, ErrStorageUnavailable
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("email", payload.Email).Msg("login attempt for unknown email")
			return models.User{}, models.Token{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", payload.Email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(foundUser.PasswordHash, payload.Password) {
		log.Debug().Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.createToken(foundUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return foundUser, token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) createToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
