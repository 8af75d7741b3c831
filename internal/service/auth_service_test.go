package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gradehub/resultportal-backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		TokenExpiry:   time.Hour,
		OTPSessionTTL: 10 * time.Minute,
		AdminUser:     "admin",
		AdminPassword: "12345",
	}
}

func otpConfig() *config.Config {
	cfg := testConfig()
	cfg.TwilioAccountSID = "ACxxx"
	cfg.TwilioAuthToken = "token"
	cfg.TwilioVerifySID = "VAxxx"
	cfg.AdminPhone = "+15550001111"
	return cfg
}

func TestLoginWithoutOTPReturnsToken(t *testing.T) {
	svc := NewAuthService(testConfig(), NewMemorySessionStore(), nil, zerolog.Nop())

	result, err := svc.Login(context.Background(), "admin", "12345")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.OTPRequired {
		t.Fatal("OTPRequired = true, want false")
	}
	if result.SessionID != "" {
		t.Errorf("SessionID = %q, want empty", result.SessionID)
	}
	if result.Token == "" {
		t.Fatal("Token is empty")
	}

	claims, err := svc.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Subject != "admin" || !claims.IsAdmin {
		t.Errorf("claims = %+v, want subject admin, is_admin true", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(testConfig(), NewMemorySessionStore(), nil, zerolog.Nop())

	cases := []struct{ user, pass string }{
		{"admin", "wrong"},
		{"wrong", "12345"},
		{"", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Login(context.Background(), tc.user, tc.pass); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q) err = %v, want ErrInvalidCredentials", tc.user, tc.pass, err)
		}
	}
}

func TestLoginWithBcryptHash(t *testing.T) {
	cfg := testConfig()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	cfg.AdminPassword = ""
	cfg.AdminPasswordHash = string(hash)

	svc := NewAuthService(cfg, NewMemorySessionStore(), nil, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "admin", "s3cret"); err != nil {
		t.Fatalf("Login with correct password: %v", err)
	}
	if _, err := svc.Login(context.Background(), "admin", "12345"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login with wrong password err = %v, want ErrInvalidCredentials", err)
	}
}

func TestOTPFlow(t *testing.T) {
	cfg := otpConfig()
	verifier := &fakeVerifier{code: "482910"}
	svc := NewAuthService(cfg, NewMemorySessionStore(), verifier, zerolog.Nop())

	result, err := svc.Login(context.Background(), "admin", "12345")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !result.OTPRequired {
		t.Fatal("OTPRequired = false, want true")
	}
	if result.Token != "" {
		t.Error("Token issued before verification")
	}
	if result.SessionID == "" {
		t.Fatal("SessionID is empty")
	}
	if len(verifier.sent) != 1 || verifier.sent[0] != cfg.AdminPhone {
		t.Errorf("code sent to %v, want [%s]", verifier.sent, cfg.AdminPhone)
	}

	// Wrong code is rejected and the session survives.
	if _, err := svc.VerifyOTP(context.Background(), result.SessionID, "000000"); !errors.Is(err, ErrOTPRejected) {
		t.Fatalf("VerifyOTP wrong code err = %v, want ErrOTPRejected", err)
	}

	token, err := svc.VerifyOTP(context.Background(), result.SessionID, "482910")
	if err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}
	if _, err := svc.ValidateToken(token); err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	// Session is single-use.
	if _, err := svc.VerifyOTP(context.Background(), result.SessionID, "482910"); !errors.Is(err, ErrOTPRejected) {
		t.Errorf("second VerifyOTP err = %v, want ErrOTPRejected", err)
	}
}

func TestVerifyOTPUnknownSession(t *testing.T) {
	svc := NewAuthService(otpConfig(), NewMemorySessionStore(), &fakeVerifier{code: "1"}, zerolog.Nop())

	if _, err := svc.VerifyOTP(context.Background(), "nope", "1"); !errors.Is(err, ErrOTPRejected) {
		t.Errorf("err = %v, want ErrOTPRejected", err)
	}
	if _, err := svc.VerifyOTP(context.Background(), "", "1"); !errors.Is(err, ErrOTPRejected) {
		t.Errorf("empty session err = %v, want ErrOTPRejected", err)
	}
}

func TestVerifyOTPExpiredSession(t *testing.T) {
	cfg := otpConfig()
	cfg.OTPSessionTTL = time.Millisecond
	verifier := &fakeVerifier{code: "482910"}
	svc := NewAuthService(cfg, NewMemorySessionStore(), verifier, zerolog.Nop())

	result, err := svc.Login(context.Background(), "admin", "12345")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := svc.VerifyOTP(context.Background(), result.SessionID, "482910"); !errors.Is(err, ErrOTPRejected) {
		t.Errorf("expired session err = %v, want ErrOTPRejected", err)
	}
}

func TestVerifyOTPWhenUnconfigured(t *testing.T) {
	svc := NewAuthService(testConfig(), NewMemorySessionStore(), nil, zerolog.Nop())

	if _, err := svc.VerifyOTP(context.Background(), "any", "123456"); !errors.Is(err, ErrOTPUnavailable) {
		t.Errorf("err = %v, want ErrOTPUnavailable", err)
	}
}

func TestLoginOTPDeliveryFailure(t *testing.T) {
	verifier := &fakeVerifier{code: "1", sendErr: errors.New("twilio down")}
	svc := NewAuthService(otpConfig(), NewMemorySessionStore(), verifier, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "admin", "12345"); !errors.Is(err, ErrOTPDelivery) {
		t.Errorf("err = %v, want ErrOTPDelivery", err)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	cfg := testConfig()
	cfg.TokenExpiry = -time.Minute
	svc := NewAuthService(cfg, NewMemorySessionStore(), nil, zerolog.Nop())

	result, err := svc.Login(context.Background(), "admin", "12345")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := svc.ValidateToken(result.Token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateToken err = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(testConfig(), NewMemorySessionStore(), nil, zerolog.Nop())

	for _, tok := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		if _, err := svc.ValidateToken(tok); err == nil {
			t.Errorf("ValidateToken(%q) = nil error, want failure", tok)
		}
	}
}
