package model

const (
	EntityName = "dashboard"
)

// TodayActivity holds the counts of today's arrivals and departures,
// partitioned by whether the front desk has processed them yet.
type TodayActivity struct {
	PendingCheckIns    int `db:"pending_check_ins"`
	CompletedCheckIns  int `db:"completed_check_ins"`
	PendingCheckOuts   int `db:"pending_check_outs"`
	CompletedCheckOuts int `db:"completed_check_outs"`
}

// RevenuePoint is one day-group of the trailing seven day revenue series.
type RevenuePoint struct {
	Date     string  `db:"date"`
	Revenue  float64 `db:"revenue"`
	Bookings int     `db:"bookings"`
}

// RoomStatusRow is one room joined to its Checked-in booking, if any.
type RoomStatusRow struct {
	RoomNumber     string  `db:"room_number"`
	RoomType       *string `db:"room_type"`
	Status         string  `db:"status"`
	GuestFirstName *string `db:"guest_first_name"`
	GuestLastName  *string `db:"guest_last_name"`
}

// StatusCount is the number of rooms currently in one status.
type StatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}
