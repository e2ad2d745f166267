package repositories

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/HSouheill/inquiry_backend/models"
)

func TestInquiryRepositorySave(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns id and inserts", func(mt *mtest.T) {
		repo := NewInquiryRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		inquiry := models.NewInquiry("a@x.com", models.InquiryFields{Name: "Ann"}, time.Now())
		if err := repo.Save(context.Background(), inquiry); err != nil {
			mt.Fatalf("Save: %v", err)
		}
		if inquiry.ID.IsZero() {
			mt.Fatal("Save did not assign an id")
		}
	})

	mt.Run("write error is returned", func(mt *mtest.T) {
		repo := NewInquiryRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		inquiry := models.NewInquiry("a@x.com", models.InquiryFields{}, time.Now())
		if err := repo.Save(context.Background(), inquiry); err == nil {
			mt.Fatal("expected an error from a failed insert")
		}
	})
}
