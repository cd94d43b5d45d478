package service

import (
	"context"
	"fmt"

	"hms/config"
	"hms/infras/otel"
	"hms/internal/domains/housekeeping/model"
	"hms/internal/domains/housekeeping/model/dto"
	"hms/internal/domains/housekeeping/repository"
	roomModel "hms/internal/domains/room/model"
	roomRepository "hms/internal/domains/room/repository"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTask    = "housekeeping:get"
	cacheGetAllTask = "housekeeping:gets"
	cacheCountTask  = "housekeeping:count"
)

type Housekeeping interface {
	Create(ctx context.Context, req dto.CreateTaskRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTasksResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.TaskResponse, error)
	Update(ctx context.Context, req dto.UpdateTaskRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Task
	roomRepo roomRepository.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Task, roomRepo roomRepository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Housekeeping {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTaskRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create housekeeping task")

		return fmt.Errorf("failed to create housekeeping task: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTask)
		shared.InvalidateCaches(c, s.cache, cacheCountTask)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTasksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTask, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for housekeeping tasks")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count housekeeping tasks")

		return res, fmt.Errorf("failed to count housekeeping tasks: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping tasks")

		return res, fmt.Errorf("failed to get housekeeping tasks: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save housekeeping tasks to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTask, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count housekeeping tasks")

		return res, fmt.Errorf("failed to count housekeeping tasks: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save housekeeping task count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTask, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	task, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping task")

		return res, fmt.Errorf("failed to get housekeeping task: %w", err)
	}

	if task.ID == constant.Empty {
		return res, failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	res.FromModel(task)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save housekeeping task to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTaskRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	task, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping task")

		return fmt.Errorf("failed to get housekeeping task: %w", err)
	}

	if task.ID == constant.Empty {
		return failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update housekeeping task")

		return fmt.Errorf("failed to update housekeeping task: %w", err)
	}

	// Completing a task releases a room that was held for cleaning.
	if req.Done != nil && *req.Done && !task.Done {
		if err := s.releaseRoom(ctx, task.RoomID, user); err != nil {
			log.Error().Err(err).Msg("failed to release room after cleaning")

			return err
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTask, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete housekeeping task from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTask)
		shared.InvalidateCaches(c, s.cache, cacheCountTask)
	}()

	return nil
}

func (s *serviceImpl) releaseRoom(ctx context.Context, roomID, user string) error {
	roomFilter := shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName)

	room, err := s.roomRepo.Get(ctx, roomFilter)
	if err != nil {
		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.Status != roomModel.StatusCleaning {
		return nil
	}

	updatedFields := map[string]any{
		roomModel.FieldStatus:    roomModel.StatusAvailable,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.roomRepo.Update(ctx, updatedFields, roomFilter); err != nil {
		return fmt.Errorf("failed to update room status: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey("room:get", roomID)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, "room:gets")
		shared.InvalidateCaches(c, s.cache, "room:count")
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if housekeeping task exists")

		return fmt.Errorf("failed to check if housekeeping task exists: %w", err)
	}

	if !exist {
		return failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete housekeeping task")

		return fmt.Errorf("failed to delete housekeeping task: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTask, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete housekeeping task from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTask)
		shared.InvalidateCaches(c, s.cache, cacheCountTask)
	}()

	return nil
}
