package service

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	verify "github.com/twilio/twilio-go/rest/verify/v2"

	"github.com/gradehub/resultportal-backend/internal/config"
)

// CodeVerifier delivers and checks one-time codes out-of-band.
type CodeVerifier interface {
	// Send delivers a fresh code to the given phone number.
	Send(ctx context.Context, phone string) error
	// Check reports whether code is the currently valid code for phone.
	Check(ctx context.Context, phone, code string) (bool, error)
}

// TwilioVerifier implements CodeVerifier over the Twilio Verify v2 API.
// Code generation, delivery, and expiry are all handled by the Verify
// service; only the pending login session lives on our side.
type TwilioVerifier struct {
	client    *twilio.RestClient
	verifySID string
}

// NewTwilioVerifier creates a CodeVerifier from the configured Twilio
// credentials.
func NewTwilioVerifier(cfg *config.Config) *TwilioVerifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})
	return &TwilioVerifier{client: client, verifySID: cfg.TwilioVerifySID}
}

func (v *TwilioVerifier) Send(_ context.Context, phone string) error {
	params := &verify.CreateVerificationParams{}
	params.SetTo(phone)
	params.SetChannel("sms")

	if _, err := v.client.VerifyV2.CreateVerification(v.verifySID, params); err != nil {
		return fmt.Errorf("twilio send verification: %w", err)
	}
	return nil
}

func (v *TwilioVerifier) Check(_ context.Context, phone, code string) (bool, error) {
	params := &verify.CreateVerificationCheckParams{}
	params.SetTo(phone)
	params.SetCode(code)

	check, err := v.client.VerifyV2.CreateVerificationCheck(v.verifySID, params)
	if err != nil {
		return false, fmt.Errorf("twilio check verification: %w", err)
	}
	return check.Status != nil && *check.Status == "approved", nil
}
