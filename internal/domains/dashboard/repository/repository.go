package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/dashboard/model"
	"hms/shared/constant"
	"hms/shared/logger"
)

// Revenue is summed over bookings created today; canceled bookings never count
// towards revenue, even when created today.
const queryTodayRevenue = `
SELECT COALESCE(SUM(total_amount), 0)
FROM bookings
WHERE created_at::date = CURRENT_DATE
  AND status <> 'Canceled'`

// Arrivals still waiting are Pending or Confirmed; a Checked-in booking whose
// check-out date is today is a departure that has not happened yet.
const queryTodayActivity = `
SELECT
  COUNT(*) FILTER (WHERE check_in_date = CURRENT_DATE AND status IN ('Pending', 'Confirmed'))  AS pending_check_ins,
  COUNT(*) FILTER (WHERE check_in_date = CURRENT_DATE AND status = 'Checked-in')               AS completed_check_ins,
  COUNT(*) FILTER (WHERE check_out_date = CURRENT_DATE AND status = 'Checked-in')              AS pending_check_outs,
  COUNT(*) FILTER (WHERE check_out_date = CURRENT_DATE AND status = 'Checked-out')             AS completed_check_outs
FROM bookings`

// One row per distinct calendar day inside the trailing seven days, ordered by
// the earliest booking in each day-group.
const queryRevenueSeries = `
SELECT
  TO_CHAR(created_at::date, 'Mon DD')  AS date,
  COALESCE(SUM(total_amount), 0)       AS revenue,
  COUNT(id)                            AS bookings
FROM bookings
WHERE created_at >= CURRENT_DATE - INTERVAL '6 days'
GROUP BY created_at::date
ORDER BY MIN(created_at)`

// At most one booking can be Checked-in per room, so the LEFT JOIN yields one
// row per room with NULL guest columns when the room has no active stay.
const queryRoomStatusOverview = `
SELECT
  rooms.room_number,
  room_types.name      AS room_type,
  LOWER(rooms.status)  AS status,
  guests.first_name    AS guest_first_name,
  guests.last_name     AS guest_last_name
FROM rooms
LEFT JOIN room_types ON room_types.id = rooms.room_type_id
LEFT JOIN bookings   ON bookings.room_id = rooms.id AND bookings.status = 'Checked-in'
LEFT JOIN guests     ON guests.id = bookings.guest_id
ORDER BY rooms.room_number`

const queryRoomStatusCounts = `
SELECT status, COUNT(id) AS count
FROM rooms
GROUP BY status`

// Dashboard issues the read-only aggregate queries behind the KPI snapshot.
type Dashboard interface {
	TodayRevenue(ctx context.Context) (float64, error)
	TodayActivity(ctx context.Context) (model.TodayActivity, error)
	RevenueSeries(ctx context.Context) ([]model.RevenuePoint, error)
	RoomStatusOverview(ctx context.Context) ([]model.RoomStatusRow, error)
	RoomStatusCounts(ctx context.Context) ([]model.StatusCount, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Dashboard {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) TodayRevenue(ctx context.Context) (float64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.TodayRevenue", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryTodayRevenue)

	var revenue float64

	err := repo.db.Read.GetContext(ctx, &revenue, queryTodayRevenue)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum today's revenue: %w", err)
	}

	return revenue, nil
}

func (repo *repositoryImpl) TodayActivity(ctx context.Context) (model.TodayActivity, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.TodayActivity", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryTodayActivity)

	var activity model.TodayActivity

	err := repo.db.Read.GetContext(ctx, &activity, queryTodayActivity)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return activity, fmt.Errorf("failed to count today's check-ins and check-outs: %w", err)
	}

	return activity, nil
}

func (repo *repositoryImpl) RevenueSeries(ctx context.Context) ([]model.RevenuePoint, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.RevenueSeries", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRevenueSeries)

	var points []model.RevenuePoint

	err := repo.db.Read.SelectContext(ctx, &points, queryRevenueSeries)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to build revenue series: %w", err)
	}

	return points, nil
}

func (repo *repositoryImpl) RoomStatusOverview(ctx context.Context) ([]model.RoomStatusRow, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.RoomStatusOverview", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRoomStatusOverview)

	var rows []model.RoomStatusRow

	err := repo.db.Read.SelectContext(ctx, &rows, queryRoomStatusOverview)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list room statuses: %w", err)
	}

	return rows, nil
}

func (repo *repositoryImpl) RoomStatusCounts(ctx context.Context) ([]model.StatusCount, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.RoomStatusCounts", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRoomStatusCounts)

	var counts []model.StatusCount

	err := repo.db.Read.SelectContext(ctx, &counts, queryRoomStatusCounts)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to count rooms by status: %w", err)
	}

	return counts, nil
}
