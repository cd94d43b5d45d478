package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/otel/mocks"
	dashboardMocks "hms/internal/domains/dashboard/mocks"
	"hms/internal/domains/dashboard/model"
	"hms/internal/domains/dashboard/service"
	roomModel "hms/internal/domains/room/model"
	cacheMocks "hms/shared/cache/mocks"
)

func TestDashboardService_GetSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := dashboardMocks.NewMockDashboard(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	deluxe := "Deluxe"
	first := "John"
	last := "Smith"

	counts := []model.StatusCount{
		{Status: roomModel.StatusAvailable, Count: 10},
		{Status: roomModel.StatusOccupied, Count: 32},
		{Status: roomModel.StatusCleaning, Count: 5},
		{Status: roomModel.StatusMaintenance, Count: 3},
	}

	overview := []model.RoomStatusRow{
		{RoomNumber: "101", RoomType: &deluxe, Status: "occupied", GuestFirstName: &first, GuestLastName: &last},
		{RoomNumber: "102", RoomType: &deluxe, Status: "available"},
	}

	series := []model.RevenuePoint{
		{Date: "Aug 28", Revenue: 450, Bookings: 2},
	}

	activity := model.TodayActivity{
		PendingCheckIns:    3,
		CompletedCheckIns:  1,
		PendingCheckOuts:   2,
		CompletedCheckOuts: 4,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cache hit skips the database",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "dashboard:get", gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss assembles the snapshot from five queries",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "dashboard:get", gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().TodayRevenue(gomock.Any()).Return(1250.5, nil)
				mockRepo.EXPECT().TodayActivity(gomock.Any()).Return(activity, nil)
				mockRepo.EXPECT().RevenueSeries(gomock.Any()).Return(series, nil)
				mockRepo.EXPECT().RoomStatusOverview(gomock.Any()).Return(overview, nil)
				mockRepo.EXPECT().RoomStatusCounts(gomock.Any()).Return(counts, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), "dashboard:get", gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "revenue query failure aborts the snapshot",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "dashboard:get", gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					TodayRevenue(gomock.Any()).
					Return(0.0, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "failure in a later query aborts without partial results",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "dashboard:get", gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().TodayRevenue(gomock.Any()).Return(1250.5, nil)
				mockRepo.EXPECT().TodayActivity(gomock.Any()).Return(activity, nil)
				mockRepo.EXPECT().RevenueSeries(gomock.Any()).Return(series, nil)
				mockRepo.EXPECT().
					RoomStatusOverview(gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetSnapshot(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.name == "cache miss assembles the snapshot from five queries" {
				assert.Equal(t, 1250.5, res.KPIStats.TodayRevenue.Value)
				assert.Equal(t, 32, res.KPIStats.OccupiedRooms.Value)
				assert.Equal(t, 50, res.KPIStats.OccupiedRooms.Total)
				assert.Equal(t, 64.0, res.KPIStats.OccupiedRooms.Percentage)
				assert.Equal(t, 18, res.KPIStats.AvailableRooms.Value)
				assert.Len(t, res.RevenueChartData, 1)
				assert.Len(t, res.RoomStatusOverview, 2)
				assert.Equal(t, 32, res.OccupancyBreakdown.Occupied)
			}
		})
	}
}
