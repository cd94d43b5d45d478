package model

import (
	"time"

	"hms/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldRoomID       = "room_id"
	FieldGuestID      = "guest_id"
	FieldTotalAmount  = "total_amount"
	FieldStatus       = "status"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
)

// Booking lifecycle statuses. Transitions are not enforced; any status may be
// written as long as it is one of these values.
const (
	StatusPending    = "Pending"
	StatusConfirmed  = "Confirmed"
	StatusCheckedIn  = "Checked-in"
	StatusCheckedOut = "Checked-out"
	StatusCanceled   = "Canceled"
)

type Booking struct {
	ID             string    `db:"id"`
	RoomID         string    `db:"room_id"`
	GuestID        string    `db:"guest_id"`
	TotalAmount    float64   `db:"total_amount"`
	Status         string    `db:"status"`
	CheckInDate    time.Time `db:"check_in_date"`
	CheckOutDate   time.Time `db:"check_out_date"`
	RoomNumber     string    `db:"room_number"      table:"rooms"  column:"room_number"`
	GuestFirstName string    `db:"guest_first_name" table:"guests" column:"first_name"`
	GuestLastName  string    `db:"guest_last_name"  table:"guests" column:"last_name"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN rooms ON rooms.id = bookings.room_id LEFT JOIN guests ON guests.id = bookings.guest_id"
}
