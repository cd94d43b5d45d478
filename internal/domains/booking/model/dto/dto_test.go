package dto_test

import (
	"testing"
	"time"

	"hms/internal/domains/booking/model"
	"hms/internal/domains/booking/model/dto"
	gModel "hms/shared/model"
	"hms/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:       "room-id",
		GuestID:      "guest-id",
		TotalAmount:  450,
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-04",
	}

	userID := "test-user-id"
	booking, err := req.ToModel(userID)

	assert.NoError(t, err)
	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, req.RoomID, booking.RoomID)
	assert.Equal(t, req.GuestID, booking.GuestID)
	assert.Equal(t, req.TotalAmount, booking.TotalAmount)
	assert.Equal(t, model.StatusPending, booking.Status, "status defaults to Pending")
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), booking.CheckInDate)
	assert.Equal(t, time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC), booking.CheckOutDate)
	assert.Equal(t, userID, booking.CreatedBy)
	assert.Equal(t, userID, booking.ModifiedBy)
}

func TestCreateBookingRequest_ToModel_ExplicitStatus(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:       "room-id",
		GuestID:      "guest-id",
		Status:       model.StatusConfirmed,
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-04",
	}

	booking, err := req.ToModel("test-user-id")

	assert.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, booking.Status)
}

func TestCreateBookingRequest_ToModel_InvalidDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:       "room-id",
		GuestID:      "guest-id",
		CheckInDate:  "01/09/2026",
		CheckOutDate: "2026-09-04",
	}

	_, err := req.ToModel("test-user-id")

	assert.Error(t, err)
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	booking := model.Booking{
		ID:             "booking-id",
		RoomID:         "room-id",
		GuestID:        "guest-id",
		TotalAmount:    450,
		Status:         model.StatusCheckedIn,
		CheckInDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:   time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		RoomNumber:     "101",
		GuestFirstName: "John",
		GuestLastName:  "Smith",
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.BookingResponse
	response.FromModel(booking)

	assert.Equal(t, booking.ID, response.ID)
	assert.Equal(t, "101", response.RoomNumber)
	assert.Equal(t, "John", response.GuestFirstName)
	assert.Equal(t, "Smith", response.GuestLastName)
	assert.Equal(t, "2026-09-01", response.CheckInDate)
	assert.Equal(t, "2026-09-04", response.CheckOutDate)
	assert.Equal(t, model.StatusCheckedIn, response.Status)
}
