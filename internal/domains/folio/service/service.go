package service

import (
	"context"
	"fmt"

	"hms/config"
	"hms/infras/otel"
	bookingModel "hms/internal/domains/booking/model"
	bookingRepository "hms/internal/domains/booking/repository"
	"hms/internal/domains/folio/model"
	"hms/internal/domains/folio/model/dto"
	"hms/internal/domains/folio/repository"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheGetFolio = "folio:get"

type Folio interface {
	Create(ctx context.Context, req dto.CreateFolioItemRequest, bookingID string) error
	GetByBooking(ctx context.Context, bookingID string) (dto.FolioResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.FolioItem
	bookingRepo bookingRepository.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.FolioItem, bookingRepo bookingRepository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Folio {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFolioItemRequest, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	bookingExists, err := s.bookingRepo.Exist(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !bookingExists {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, bookingID)); err != nil {
		log.Error().Err(err).Msg("failed to create folio item")

		return fmt.Errorf("failed to create folio item: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFolio, bookingID)); err != nil {
			log.Error().Err(err).Msg("failed to delete folio from cache")
		}
	}()

	return nil
}

func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID string) (res dto.FolioResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetFolio, bookingID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	bookingExists, err := s.bookingRepo.Exist(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return res, fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !bookingExists {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	params := gDto.QueryParams{
		SortBy:  model.TableName + ".created_at",
		SortDir: "ASC",
	}

	items, err := s.repo.GetAll(ctx, params, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get folio items")

		return res, fmt.Errorf("failed to get folio items: %w", err)
	}

	res.FromModels(bookingID, items)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save folio to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get folio item")

		return fmt.Errorf("failed to get folio item: %w", err)
	}

	if item.ID == constant.Empty {
		return failure.NotFound("folio item not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete folio item")

		return fmt.Errorf("failed to delete folio item: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFolio, item.BookingID)); err != nil {
			log.Error().Err(err).Msg("failed to delete folio from cache")
		}
	}()

	return nil
}
