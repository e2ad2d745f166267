package models

import "time"

// SendOTPRequest is the body of POST /api/send-otp
type SendOTPRequest struct {
	Email FormString `json:"email"`
}

// VerifyAndSaveRequest is the body of POST /api/verify-and-save
type VerifyAndSaveRequest struct {
	Email    FormString    `json:"email"`
	OTP      SubmittedCode `json:"otp"`
	Category FormString    `json:"category"`
	Type     FormString    `json:"type"`
	Grade    FormString    `json:"grade"`
	Quantity FormString    `json:"quantity"`
	Name     FormString    `json:"name"`
	Phone    FormString    `json:"phone"`
	Message  FormString    `json:"message"`
}

// Fields returns the free-form part of the request
func (r VerifyAndSaveRequest) Fields() InquiryFields {
	return InquiryFields{
		Category: string(r.Category),
		Type:     string(r.Type),
		Grade:    string(r.Grade),
		Quantity: string(r.Quantity),
		Name:     string(r.Name),
		Phone:    string(r.Phone),
		Message:  string(r.Message),
	}
}

// OTPEntry is the value kept for an email while a code is outstanding
type OTPEntry struct {
	Code      string
	ExpiresAt time.Time // zero means the code never expires
}

// Expired reports whether the entry has a deadline that has passed
func (e OTPEntry) Expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && !now.Before(e.ExpiresAt)
}
