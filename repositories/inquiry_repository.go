package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HSouheill/inquiry_backend/models"
)

// InquiryStore persists verified inquiries
type InquiryStore interface {
	Save(ctx context.Context, inquiry *models.Inquiry) error
}

type InquiryRepository struct {
	collection *mongo.Collection
}

func NewInquiryRepository(collection *mongo.Collection) *InquiryRepository {
	return &InquiryRepository{collection: collection}
}

// Save inserts the inquiry and sets its ID
func (r *InquiryRepository) Save(ctx context.Context, inquiry *models.Inquiry) error {
	if inquiry.ID.IsZero() {
		inquiry.ID = primitive.NewObjectID()
	}

	if _, err := r.collection.InsertOne(ctx, inquiry); err != nil {
		return fmt.Errorf("failed to insert inquiry: %w", err)
	}
	return nil
}
