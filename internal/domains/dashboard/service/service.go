package service

import (
	"context"
	"fmt"

	"hms/config"
	"hms/infras/otel"
	"hms/internal/domains/dashboard/model/dto"
	"hms/internal/domains/dashboard/repository"
	"hms/shared/cache"
	"hms/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetDashboard = "dashboard:get"
)

type Dashboard interface {
	GetSnapshot(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	repo  repository.Dashboard
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Dashboard, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dashboard {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetSnapshot runs the five aggregate queries sequentially and assembles the
// KPI snapshot. The first failing query aborts the whole snapshot; there are
// no partial results.
func (s *serviceImpl) GetSnapshot(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSnapshot")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetDashboard, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetDashboard).Msg("cache hit for dashboard snapshot")

		return res, nil
	}

	todayRevenue, err := s.repo.TodayRevenue(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum today's revenue")

		return res, fmt.Errorf("failed to sum today's revenue: %w", err)
	}

	activity, err := s.repo.TodayActivity(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count today's check-ins and check-outs")

		return res, fmt.Errorf("failed to count today's check-ins and check-outs: %w", err)
	}

	series, err := s.repo.RevenueSeries(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to build revenue series")

		return res, fmt.Errorf("failed to build revenue series: %w", err)
	}

	overview, err := s.repo.RoomStatusOverview(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list room statuses")

		return res, fmt.Errorf("failed to list room statuses: %w", err)
	}

	counts, err := s.repo.RoomStatusCounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms by status")

		return res, fmt.Errorf("failed to count rooms by status: %w", err)
	}

	res.FromModels(todayRevenue, activity, series, overview, counts)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetDashboard, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard snapshot to cache")
		}
	}()

	return res, nil
}
