// utils/otp.go
package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
)

const (
	otpMin = 1000
	otpMax = 9999
)

// GenerateNumericOTP returns a 4-digit code between 1000 and 9999 inclusive
func GenerateNumericOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+otpMin, 10), nil
}

// MaskEmail partially masks an email address for logs
func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" {
		if email == "" {
			return ""
		}
		return "***"
	}

	name := []rune(parts[0])
	domain := parts[1]

	if len(name) <= 2 {
		return string(name[:1]) + "***@" + domain
	}

	return string(name[:2]) + strings.Repeat("*", len(name)-2) + "@" + domain
}
