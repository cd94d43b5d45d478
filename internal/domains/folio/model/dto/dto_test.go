package dto_test

import (
	"testing"

	"hms/internal/domains/folio/model"
	"hms/internal/domains/folio/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestCreateFolioItemRequest_ToModel(t *testing.T) {
	req := dto.CreateFolioItemRequest{
		Kind:        model.KindCharge,
		Description: "Room service",
		Amount:      35.5,
	}

	item := req.ToModel("test-user-id", "booking-id")

	assert.NotEmpty(t, item.ID, "expected ID to be generated")
	assert.Equal(t, "booking-id", item.BookingID)
	assert.Equal(t, model.KindCharge, item.Kind)
	assert.Equal(t, "Room service", item.Description)
	assert.Equal(t, 35.5, item.Amount)
	assert.Equal(t, "test-user-id", item.CreatedBy)
}

func TestFolioResponse_FromModels(t *testing.T) {
	items := []model.FolioItem{
		{ID: "1", BookingID: "booking-id", Kind: model.KindCharge, Description: "Night 1", Amount: 150},
		{ID: "2", BookingID: "booking-id", Kind: model.KindCharge, Description: "Minibar", Amount: 20},
		{ID: "3", BookingID: "booking-id", Kind: model.KindPayment, Description: "Deposit", Amount: 100},
	}

	var folio dto.FolioResponse
	folio.FromModels("booking-id", items)

	assert.Equal(t, "booking-id", folio.BookingID)
	assert.Len(t, folio.Items, 3)
	assert.Equal(t, 170.0, folio.TotalCharges)
	assert.Equal(t, 100.0, folio.TotalPayments)
	assert.Equal(t, 70.0, folio.Balance)
}

func TestFolioResponse_FromModels_Empty(t *testing.T) {
	var folio dto.FolioResponse
	folio.FromModels("booking-id", nil)

	assert.Equal(t, "booking-id", folio.BookingID)
	assert.Empty(t, folio.Items)
	assert.Equal(t, 0.0, folio.Balance)
}
