//go:build wireinject
// +build wireinject

package di

import (
	"hms/config"
	"hms/infras/jwt"
	"hms/infras/kafka"
	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/infras/redis"
	"hms/infras/s3"
	"hms/permissions"
	"hms/shared/cache"
	"hms/transport/http"
	"hms/transport/http/middleware"
	"hms/transport/http/router"

	"github.com/google/wire"

	authService "hms/internal/domains/auth/service"
	bookingRepository "hms/internal/domains/booking/repository"
	bookingService "hms/internal/domains/booking/service"
	dashboardRepository "hms/internal/domains/dashboard/repository"
	dashboardService "hms/internal/domains/dashboard/service"
	folioRepository "hms/internal/domains/folio/repository"
	folioService "hms/internal/domains/folio/service"
	guestRepository "hms/internal/domains/guest/repository"
	guestService "hms/internal/domains/guest/service"
	housekeepingRepository "hms/internal/domains/housekeeping/repository"
	housekeepingService "hms/internal/domains/housekeeping/service"
	roomRepository "hms/internal/domains/room/repository"
	roomService "hms/internal/domains/room/service"
	roomtypeRepository "hms/internal/domains/roomtype/repository"
	roomtypeService "hms/internal/domains/roomtype/service"
	staffRepository "hms/internal/domains/staff/repository"
	staffService "hms/internal/domains/staff/service"

	authHandler "hms/internal/handlers/auth"
	bookingHandler "hms/internal/handlers/booking"
	dashboardHandler "hms/internal/handlers/dashboard"
	folioHandler "hms/internal/handlers/folio"
	guestHandler "hms/internal/handlers/guest"
	housekeepingHandler "hms/internal/handlers/housekeeping"
	roomHandler "hms/internal/handlers/room"
	roomtypeHandler "hms/internal/handlers/roomtype"
	staffHandler "hms/internal/handlers/staff"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var dashboardDomain = wire.NewSet(
	dashboardRepository.New,
	dashboardService.New,
)

var roomTypeDomain = wire.NewSet(
	roomtypeRepository.New,
	roomtypeService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var folioDomain = wire.NewSet(
	folioRepository.New,
	folioService.New,
)

var housekeepingDomain = wire.NewSet(
	housekeepingRepository.New,
	housekeepingService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	dashboardDomain,
	roomTypeDomain,
	roomDomain,
	guestDomain,
	bookingDomain,
	folioDomain,
	housekeepingDomain,
	staffDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	dashboardHandler.New,
	roomtypeHandler.New,
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	folioHandler.New,
	housekeepingHandler.New,
	staffHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
