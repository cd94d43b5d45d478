package dto

import (
	"strings"

	"hms/internal/domains/dashboard/model"
	roomModel "hms/internal/domains/room/model"
	"hms/shared"
)

const percentBase = 100

// DashboardResponse is the KPI snapshot for the current calendar day.
type DashboardResponse struct {
	KPIStats           KPIStats           `json:"kpi_stats"`
	RevenueChartData   []RevenuePoint     `json:"revenue_chart_data"`
	RoomStatusOverview []RoomStatusEntry  `json:"room_status_overview"`
	OccupancyBreakdown OccupancyBreakdown `json:"occupancy_breakdown"`
}

type KPIStats struct {
	TodayRevenue   RevenueKPI   `json:"today_revenue"`
	OccupiedRooms  OccupancyKPI `json:"occupied_rooms"`
	TotalRooms     ValueKPI     `json:"total_rooms"`
	AvailableRooms ValueKPI     `json:"available_rooms"`
	CheckIns       ActivityKPI  `json:"check_ins"`
	CheckOuts      ActivityKPI  `json:"check_outs"`
}

type RevenueKPI struct {
	Value float64 `json:"value"`
}

type OccupancyKPI struct {
	Value      int     `json:"value"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

type ValueKPI struct {
	Value int `json:"value"`
}

type ActivityKPI struct {
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

type RevenuePoint struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

type RoomStatusEntry struct {
	RoomNumber   string  `json:"room_number"`
	RoomType     string  `json:"room_type"`
	Status       string  `json:"status"`
	CurrentGuest *string `json:"current_guest"`
}

type OccupancyBreakdown struct {
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Cleaning    int `json:"cleaning"`
	Maintenance int `json:"maintenance"`
}

// FromModels assembles the snapshot out of the five aggregate query results.
func (r *DashboardResponse) FromModels(
	todayRevenue float64,
	activity model.TodayActivity,
	series []model.RevenuePoint,
	overview []model.RoomStatusRow,
	counts []model.StatusCount,
) {
	totalRooms := 0
	occupiedRooms := 0

	for _, count := range counts {
		totalRooms += count.Count

		if count.Status == roomModel.StatusOccupied {
			occupiedRooms += count.Count
		}
	}

	percentage := 0.0
	if totalRooms > 0 {
		percentage = shared.RoundToOneDecimal(float64(occupiedRooms) / float64(totalRooms) * percentBase)
	}

	r.KPIStats = KPIStats{
		TodayRevenue: RevenueKPI{Value: todayRevenue},
		OccupiedRooms: OccupancyKPI{
			Value:      occupiedRooms,
			Total:      totalRooms,
			Percentage: percentage,
		},
		TotalRooms:     ValueKPI{Value: totalRooms},
		AvailableRooms: ValueKPI{Value: totalRooms - occupiedRooms},
		CheckIns: ActivityKPI{
			Pending:   activity.PendingCheckIns,
			Completed: activity.CompletedCheckIns,
		},
		CheckOuts: ActivityKPI{
			Pending:   activity.PendingCheckOuts,
			Completed: activity.CompletedCheckOuts,
		},
	}

	r.RevenueChartData = make([]RevenuePoint, len(series))
	for i, point := range series {
		r.RevenueChartData[i] = RevenuePoint{
			Date:     point.Date,
			Revenue:  point.Revenue,
			Bookings: point.Bookings,
		}
	}

	r.RoomStatusOverview = make([]RoomStatusEntry, len(overview))
	for i, row := range overview {
		entry := RoomStatusEntry{
			RoomNumber:   row.RoomNumber,
			Status:       row.Status,
			CurrentGuest: guestName(row),
		}

		if row.RoomType != nil {
			entry.RoomType = *row.RoomType
		}

		r.RoomStatusOverview[i] = entry
	}

	r.OccupancyBreakdown = breakdownFromCounts(counts)
}

// guestName joins the guest name columns from the Checked-in booking join, or
// returns nil when the room has no active stay.
func guestName(row model.RoomStatusRow) *string {
	if row.GuestFirstName == nil && row.GuestLastName == nil {
		return nil
	}

	parts := []string{}

	if row.GuestFirstName != nil && *row.GuestFirstName != "" {
		parts = append(parts, *row.GuestFirstName)
	}

	if row.GuestLastName != nil && *row.GuestLastName != "" {
		parts = append(parts, *row.GuestLastName)
	}

	name := strings.Join(parts, " ")

	return &name
}

// breakdownFromCounts normalizes the grouped counts into the four known
// buckets. Statuses outside the fixed set are dropped, not re-bucketed.
func breakdownFromCounts(counts []model.StatusCount) OccupancyBreakdown {
	breakdown := OccupancyBreakdown{}

	for _, count := range counts {
		switch count.Status {
		case roomModel.StatusAvailable:
			breakdown.Available = count.Count
		case roomModel.StatusOccupied:
			breakdown.Occupied = count.Count
		case roomModel.StatusCleaning:
			breakdown.Cleaning = count.Count
		case roomModel.StatusMaintenance:
			breakdown.Maintenance = count.Count
		}
	}

	return breakdown
}
