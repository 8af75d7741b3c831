package config

import (
	"fmt"
)

type SessionKeyStruct struct{}

func NewSessionKeyStruct() *SessionKeyStruct {
	return &SessionKeyStruct{}
}

// OTPSessionKey returns the store key for a pending OTP login session.
func (r *SessionKeyStruct) OTPSessionKey(sessionID string) string {
	return fmt.Sprintf("otp:session:%s", sessionID)
}

var SessionKey = NewSessionKeyStruct()
