package model

import "hms/shared/model"

const (
	TableName  = "folio_items"
	EntityName = "folio_item"

	FieldID          = "id"
	FieldBookingID   = "booking_id"
	FieldKind        = "kind"
	FieldDescription = "description"
	FieldAmount      = "amount"
)

const (
	KindCharge  = "charge"
	KindPayment = "payment"
)

// FolioItem is a single line on a guest's running bill.
type FolioItem struct {
	ID          string  `db:"id"`
	BookingID   string  `db:"booking_id"`
	Kind        string  `db:"kind"`
	Description string  `db:"description"`
	Amount      float64 `db:"amount"`
	model.Metadata
}
