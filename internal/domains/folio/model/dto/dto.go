package dto

import (
	"hms/internal/domains/folio/model"
	gDto "hms/shared/dto"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
)

type CreateFolioItemRequest struct {
	Kind        string  `json:"kind"        validate:"required,oneof=charge payment"`
	Description string  `json:"description" validate:"required,max=255"`
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
}

func (c *CreateFolioItemRequest) ToModel(user, bookingID string) model.FolioItem {
	return model.FolioItem{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		Kind:        c.Kind,
		Description: c.Description,
		Amount:      c.Amount,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type FolioItemResponse struct {
	ID          string  `json:"id"`
	BookingID   string  `json:"booking_id"`
	Kind        string  `json:"kind"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	gDto.Metadata
}

func (f *FolioItemResponse) FromModel(model model.FolioItem) {
	f.ID = model.ID
	f.BookingID = model.BookingID
	f.Kind = model.Kind
	f.Description = model.Description
	f.Amount = model.Amount
	f.Metadata.FromModel(model.Metadata)
}

// FolioResponse is the full bill for one booking. Balance is the sum of
// charges minus the sum of payments.
type FolioResponse struct {
	BookingID     string              `json:"booking_id"`
	Items         []FolioItemResponse `json:"items"`
	TotalCharges  float64             `json:"total_charges"`
	TotalPayments float64             `json:"total_payments"`
	Balance       float64             `json:"balance"`
}

func (f *FolioResponse) FromModels(bookingID string, models []model.FolioItem) {
	f.BookingID = bookingID
	f.Items = make([]FolioItemResponse, len(models))

	for i, mod := range models {
		f.Items[i].FromModel(mod)

		switch mod.Kind {
		case model.KindCharge:
			f.TotalCharges += mod.Amount
		case model.KindPayment:
			f.TotalPayments += mod.Amount
		}
	}

	f.Balance = f.TotalCharges - f.TotalPayments
}
