package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Inquiry is one submission of the multi-step inquiry form. It is written
// once after the submitter's email has been verified and never updated.
type Inquiry struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email"`
	Category string             `json:"category" bson:"category"`
	Type     string             `json:"type" bson:"type"`
	Grade    string             `json:"grade" bson:"grade"`
	Quantity string             `json:"quantity" bson:"quantity"`
	Name     string             `json:"name" bson:"name"`
	Phone    string             `json:"phone" bson:"phone"`
	Message  string             `json:"message" bson:"message"`
	Date     time.Time          `json:"date" bson:"date"`
}

// InquiryFields are the free-form form fields. None of them is required.
type InquiryFields struct {
	Category string `json:"category"`
	Type     string `json:"type"`
	Grade    string `json:"grade"`
	Quantity string `json:"quantity"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

// NewInquiry copies the submitted fields as-is. An empty date means now.
func NewInquiry(email string, fields InquiryFields, date time.Time) *Inquiry {
	if date.IsZero() {
		date = time.Now()
	}
	return &Inquiry{
		Email:    email,
		Category: fields.Category,
		Type:     fields.Type,
		Grade:    fields.Grade,
		Quantity: fields.Quantity,
		Name:     fields.Name,
		Phone:    fields.Phone,
		Message:  fields.Message,
		Date:     date,
	}
}
