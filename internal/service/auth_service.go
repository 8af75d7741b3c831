package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gradehub/resultportal-backend/internal/config"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrOTPUnavailable     = errors.New("otp verification is not configured")
	ErrOTPDelivery        = errors.New("otp delivery failed")
	ErrOTPRejected        = errors.New("otp code rejected")
	ErrTokenInvalid       = errors.New("invalid or expired token")
)

// Claims extends JWT standard claims with the admin flag.
type Claims struct {
	jwt.RegisteredClaims
	IsAdmin bool `json:"is_admin"`
}

// LoginResult is the outcome of the first login step: either a usable token
// (OTP skipped) or a pending session id for the verify-otp step.
type LoginResult struct {
	Token       string
	OTPRequired bool
	SessionID   string
}

// AuthService handles admin authentication, OTP gating, and JWT issuance.
// The admin identity is a single configured account, not a user table.
type AuthService struct {
	cfg      *config.Config
	sessions SessionStore
	verifier CodeVerifier
	log      zerolog.Logger
}

// NewAuthService creates a new AuthService. verifier may be nil when OTP
// delivery is not configured.
func NewAuthService(cfg *config.Config, sessions SessionStore, verifier CodeVerifier, log zerolog.Logger) *AuthService {
	return &AuthService{
		cfg:      cfg,
		sessions: sessions,
		verifier: verifier,
		log:      log.With().Str("component", "auth_service").Logger(),
	}
}

// Login validates the configured admin credentials. With OTP delivery
// configured it sends a code and returns a pending session id; otherwise it
// returns a signed token directly.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if !s.checkCredentials(username, password) {
		return nil, ErrInvalidCredentials
	}

	if !s.cfg.OTPEnabled() || s.verifier == nil {
		s.log.Warn().Msg("OTP delivery not configured, skipping verification")
		token, err := s.generateToken(username)
		if err != nil {
			return nil, err
		}
		return &LoginResult{Token: token}, nil
	}

	if err := s.verifier.Send(ctx, s.cfg.AdminPhone); err != nil {
		s.log.Error().Err(err).Msg("OTP delivery failed")
		return nil, ErrOTPDelivery
	}

	sessionID := uuid.New().String()
	sess := OTPSession{Username: username}
	if err := s.sessions.Put(ctx, sessionID, sess, s.cfg.OTPSessionTTL); err != nil {
		return nil, fmt.Errorf("store pending session: %w", err)
	}

	return &LoginResult{OTPRequired: true, SessionID: sessionID}, nil
}

// VerifyOTP completes the second login step. An unknown or expired session
// and a wrong code are both rejected as verification failures.
func (s *AuthService) VerifyOTP(ctx context.Context, sessionID, code string) (string, error) {
	if !s.cfg.OTPEnabled() || s.verifier == nil {
		return "", ErrOTPUnavailable
	}
	if sessionID == "" {
		return "", ErrOTPRejected
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return "", ErrOTPRejected
		}
		return "", fmt.Errorf("load pending session: %w", err)
	}

	approved, err := s.verifier.Check(ctx, s.cfg.AdminPhone, code)
	if err != nil {
		s.log.Error().Err(err).Msg("OTP check failed")
		return "", ErrOTPDelivery
	}
	if !approved {
		return "", ErrOTPRejected
	}

	// Session is single-use; drop it before issuing the token.
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to drop pending session")
	}

	return s.generateToken(sess.Username)
}

// ValidateToken parses and validates an admin JWT, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || !claims.IsAdmin {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// checkCredentials compares against the configured identity. A bcrypt hash
// is preferred when configured; otherwise the plaintext password is compared
// in constant time.
func (s *AuthService) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUser)) == 1

	if s.cfg.AdminPasswordHash != "" {
		passOK := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) == nil
		return userOK && passOK
	}

	if s.cfg.AdminPassword == "" {
		return false
	}
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
	return userOK && passOK
}

func (s *AuthService) generateToken(username string) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenExpiry)),
		},
		IsAdmin: true,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
