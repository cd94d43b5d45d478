package dto_test

import (
	"testing"

	"hms/internal/domains/dashboard/model"
	"hms/internal/domains/dashboard/model/dto"
	roomModel "hms/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
)

func TestDashboardResponse_FromModels_EmptyHotel(t *testing.T) {
	var response dto.DashboardResponse
	response.FromModels(0, model.TodayActivity{}, nil, nil, nil)

	assert.Equal(t, 0.0, response.KPIStats.TodayRevenue.Value)
	assert.Equal(t, 0, response.KPIStats.OccupiedRooms.Value)
	assert.Equal(t, 0, response.KPIStats.OccupiedRooms.Total)
	assert.Equal(t, 0.0, response.KPIStats.OccupiedRooms.Percentage, "empty hotel must not divide by zero")
	assert.Equal(t, 0, response.KPIStats.TotalRooms.Value)
	assert.Equal(t, 0, response.KPIStats.AvailableRooms.Value)
	assert.Empty(t, response.RevenueChartData)
	assert.Empty(t, response.RoomStatusOverview)
	assert.Equal(t, dto.OccupancyBreakdown{}, response.OccupancyBreakdown)
}

func TestDashboardResponse_FromModels_OccupancyPercentage(t *testing.T) {
	counts := []model.StatusCount{
		{Status: roomModel.StatusAvailable, Count: 10},
		{Status: roomModel.StatusOccupied, Count: 32},
		{Status: roomModel.StatusCleaning, Count: 5},
		{Status: roomModel.StatusMaintenance, Count: 3},
	}

	var response dto.DashboardResponse
	response.FromModels(0, model.TodayActivity{}, nil, nil, counts)

	assert.Equal(t, 32, response.KPIStats.OccupiedRooms.Value)
	assert.Equal(t, 50, response.KPIStats.OccupiedRooms.Total)
	assert.Equal(t, 64.0, response.KPIStats.OccupiedRooms.Percentage)
	assert.Equal(t, 50, response.KPIStats.TotalRooms.Value)
	assert.Equal(t, 18, response.KPIStats.AvailableRooms.Value, "available counts every room that is not occupied")

	assert.Equal(t, dto.OccupancyBreakdown{
		Available:   10,
		Occupied:    32,
		Cleaning:    5,
		Maintenance: 3,
	}, response.OccupancyBreakdown)
}

func TestDashboardResponse_FromModels_PercentageRounding(t *testing.T) {
	counts := []model.StatusCount{
		{Status: roomModel.StatusAvailable, Count: 2},
		{Status: roomModel.StatusOccupied, Count: 1},
	}

	var response dto.DashboardResponse
	response.FromModels(0, model.TodayActivity{}, nil, nil, counts)

	assert.Equal(t, 33.3, response.KPIStats.OccupiedRooms.Percentage)
}

func TestDashboardResponse_FromModels_UnknownStatusDropped(t *testing.T) {
	counts := []model.StatusCount{
		{Status: roomModel.StatusAvailable, Count: 4},
		{Status: "Renovation", Count: 2},
	}

	var response dto.DashboardResponse
	response.FromModels(0, model.TodayActivity{}, nil, nil, counts)

	// Unknown statuses still count toward the totals but get no bucket.
	assert.Equal(t, 6, response.KPIStats.TotalRooms.Value)
	assert.Equal(t, dto.OccupancyBreakdown{Available: 4}, response.OccupancyBreakdown)
}

func TestDashboardResponse_FromModels_TodayActivity(t *testing.T) {
	activity := model.TodayActivity{
		PendingCheckIns:    3,
		CompletedCheckIns:  2,
		PendingCheckOuts:   1,
		CompletedCheckOuts: 4,
	}

	var response dto.DashboardResponse
	response.FromModels(150.5, activity, nil, nil, nil)

	assert.Equal(t, 150.5, response.KPIStats.TodayRevenue.Value)
	assert.Equal(t, dto.ActivityKPI{Pending: 3, Completed: 2}, response.KPIStats.CheckIns)
	assert.Equal(t, dto.ActivityKPI{Pending: 1, Completed: 4}, response.KPIStats.CheckOuts)
}

func TestDashboardResponse_FromModels_RevenueSeries(t *testing.T) {
	series := []model.RevenuePoint{
		{Date: "Aug 23", Revenue: 120, Bookings: 2},
		{Date: "Aug 25", Revenue: 300.75, Bookings: 3},
	}

	var response dto.DashboardResponse
	response.FromModels(0, model.TodayActivity{}, series, nil, nil)

	assert.Equal(t, []dto.RevenuePoint{
		{Date: "Aug 23", Revenue: 120, Bookings: 2},
		{Date: "Aug 25", Revenue: 300.75, Bookings: 3},
	}, response.RevenueChartData)
}

func TestDashboardResponse_FromModels_RoomStatusOverview(t *testing.T) {
	deluxe := "Deluxe"
	first := "John"
	last := "Smith"
	empty := ""

	overview := []model.RoomStatusRow{
		{RoomNumber: "101", RoomType: &deluxe, Status: "occupied", GuestFirstName: &first, GuestLastName: &last},
		{RoomNumber: "102", RoomType: &deluxe, Status: "available"},
		{RoomNumber: "103", RoomType: nil, Status: "cleaning", GuestFirstName: &first, GuestLastName: &empty},
	}

	var response dto.DashboardResponse
	response.FromModels(0, model.TodayActivity{}, nil, overview, nil)

	assert.Len(t, response.RoomStatusOverview, 3)

	occupied := response.RoomStatusOverview[0]
	assert.Equal(t, "101", occupied.RoomNumber)
	assert.Equal(t, "Deluxe", occupied.RoomType)
	assert.Equal(t, "occupied", occupied.Status)
	assert.NotNil(t, occupied.CurrentGuest)
	assert.Equal(t, "John Smith", *occupied.CurrentGuest)

	vacant := response.RoomStatusOverview[1]
	assert.Equal(t, "", vacant.RoomType, "missing room type renders as empty string")
	assert.Nil(t, vacant.CurrentGuest, "room without an active stay carries no guest")

	partial := response.RoomStatusOverview[2]
	assert.NotNil(t, partial.CurrentGuest)
	assert.Equal(t, "John", *partial.CurrentGuest, "empty name parts are not joined")
}
