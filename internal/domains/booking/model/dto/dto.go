package dto

import (
	"time"

	"hms/internal/domains/booking/model"
	"hms/shared"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID       string  `json:"room_id"        validate:"required,uuid4"`
	GuestID      string  `json:"guest_id"       validate:"required,uuid4"`
	TotalAmount  float64 `json:"total_amount"   validate:"omitempty,min=0"`
	Status       string  `json:"status"         validate:"omitempty,oneof=Pending Confirmed Checked-in Checked-out Canceled"`
	CheckInDate  string  `json:"check_in_date"  validate:"required"`
	CheckOutDate string  `json:"check_out_date" validate:"required"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkInDate, err := time.Parse(constant.DateOnlyFormat, c.CheckInDate)
	if err != nil {
		return model.Booking{}, err
	}

	checkOutDate, err := time.Parse(constant.DateOnlyFormat, c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err
	}

	status := model.StatusPending
	if c.Status != "" {
		status = c.Status
	}

	return model.Booking{
		ID:           uuid.NewString(),
		RoomID:       c.RoomID,
		GuestID:      c.GuestID,
		TotalAmount:  c.TotalAmount,
		Status:       status,
		CheckInDate:  checkInDate,
		CheckOutDate: checkOutDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	RoomID       string   `db:"room_id"      json:"room_id"        validate:"omitempty,uuid4"`
	GuestID      string   `db:"guest_id"     json:"guest_id"       validate:"omitempty,uuid4"`
	TotalAmount  *float64 `db:"total_amount" json:"total_amount"   validate:"omitempty,min=0"`
	Status       string   `db:"status"       json:"status"         validate:"omitempty,oneof=Pending Confirmed Checked-in Checked-out Canceled"`
	CheckInDate  string   `json:"check_in_date"  validate:"omitempty"`
	CheckOutDate string   `json:"check_out_date" validate:"omitempty"`
}

type BookingResponse struct {
	ID             string  `json:"id"`
	RoomID         string  `json:"room_id"`
	RoomNumber     string  `json:"room_number"`
	GuestID        string  `json:"guest_id"`
	GuestFirstName string  `json:"guest_first_name"`
	GuestLastName  string  `json:"guest_last_name"`
	TotalAmount    float64 `json:"total_amount"`
	Status         string  `json:"status"`
	CheckInDate    string  `json:"check_in_date"`
	CheckOutDate   string  `json:"check_out_date"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber
	r.GuestID = model.GuestID
	r.GuestFirstName = model.GuestFirstName
	r.GuestLastName = model.GuestLastName
	r.TotalAmount = model.TotalAmount
	r.Status = model.Status
	r.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateOnlyFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the payload published to the booking events topic whenever a
// booking is created, updated, or deleted.
type BookingEvent struct {
	Event     string    `json:"event"`
	BookingID string    `json:"booking_id"`
	Status    string    `json:"status,omitempty"`
	Actor     string    `json:"actor,omitempty"`
	EmittedAt time.Time `json:"emitted_at"`
}

const (
	EventBookingCreated = "booking.created"
	EventBookingUpdated = "booking.updated"
	EventBookingDeleted = "booking.deleted"
)
