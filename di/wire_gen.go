// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"hms/config"
	"hms/infras/jwt"
	"hms/infras/kafka"
	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/infras/redis"
	"hms/infras/s3"
	"hms/internal/domains/auth/service"
	repository6 "hms/internal/domains/booking/repository"
	service6 "hms/internal/domains/booking/service"
	repository2 "hms/internal/domains/dashboard/repository"
	service2 "hms/internal/domains/dashboard/service"
	repository7 "hms/internal/domains/folio/repository"
	service7 "hms/internal/domains/folio/service"
	repository5 "hms/internal/domains/guest/repository"
	service5 "hms/internal/domains/guest/service"
	repository8 "hms/internal/domains/housekeeping/repository"
	service8 "hms/internal/domains/housekeeping/service"
	repository4 "hms/internal/domains/room/repository"
	service4 "hms/internal/domains/room/service"
	repository3 "hms/internal/domains/roomtype/repository"
	service3 "hms/internal/domains/roomtype/service"
	"hms/internal/domains/staff/repository"
	service9 "hms/internal/domains/staff/service"
	"hms/internal/handlers/auth"
	"hms/internal/handlers/booking"
	"hms/internal/handlers/dashboard"
	"hms/internal/handlers/folio"
	"hms/internal/handlers/guest"
	"hms/internal/handlers/housekeeping"
	"hms/internal/handlers/room"
	"hms/internal/handlers/roomtype"
	"hms/internal/handlers/staff"
	"hms/permissions"
	"hms/shared/cache"
	"hms/transport/http"
	"hms/transport/http/middleware"
	"hms/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryStaff := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(repositoryStaff, configConfig, otelOtel, jwtJWT)
	handler := auth.New(serviceAuth, otelOtel)
	repositoryDashboard := repository2.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceDashboard := service2.New(repositoryDashboard, configConfig, redisCache, otelOtel)
	dashboardHandler := dashboard.New(serviceDashboard, otelOtel)
	roomType := repository3.New(connection, otelOtel)
	serviceRoomType := service3.New(roomType, configConfig, redisCache, otelOtel)
	roomtypeHandler := roomtype.New(serviceRoomType, otelOtel)
	repositoryRoom := repository4.New(connection, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceRoom := service4.New(repositoryRoom, roomType, configConfig, redisCache, otelOtel, s3S3)
	roomHandler := room.New(serviceRoom, otelOtel)
	repositoryGuest := repository5.New(connection, otelOtel)
	serviceGuest := service5.New(repositoryGuest, configConfig, redisCache, otelOtel)
	guestHandler := guest.New(serviceGuest, otelOtel)
	repositoryBooking := repository6.New(connection, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceBooking := service6.New(repositoryBooking, repositoryRoom, repositoryGuest, configConfig, redisCache, otelOtel, kafkaClient)
	folioItem := repository7.New(connection, otelOtel)
	serviceFolio := service7.New(folioItem, repositoryBooking, configConfig, redisCache, otelOtel)
	bookingHandler := booking.New(serviceBooking, serviceFolio, otelOtel)
	folioHandler := folio.New(serviceFolio, otelOtel)
	task := repository8.New(connection, otelOtel)
	serviceHousekeeping := service8.New(task, repositoryRoom, configConfig, redisCache, otelOtel)
	housekeepingHandler := housekeeping.New(serviceHousekeeping, otelOtel)
	serviceStaff := service9.New(repositoryStaff, configConfig, redisCache, otelOtel)
	staffHandler := staff.New(serviceStaff, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:         handler,
		Dashboard:    dashboardHandler,
		RoomType:     roomtypeHandler,
		Room:         roomHandler,
		Guest:        guestHandler,
		Booking:      bookingHandler,
		Folio:        folioHandler,
		Housekeeping: housekeepingHandler,
		Staff:        staffHandler,
	}
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	routerRouter := router.New(domainHandlers, appMiddleware, authRole)
	httpHTTP := http.New(configConfig, routerRouter)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New, s3.New)

var middlewares = wire.NewSet(permissions.Get, middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var dashboardDomain = wire.NewSet(repository2.New, service2.New)

var roomTypeDomain = wire.NewSet(repository3.New, service3.New)

var roomDomain = wire.NewSet(repository4.New, service4.New)

var guestDomain = wire.NewSet(repository5.New, service5.New)

var bookingDomain = wire.NewSet(repository6.New, service6.New)

var folioDomain = wire.NewSet(repository7.New, service7.New)

var housekeepingDomain = wire.NewSet(repository8.New, service8.New)

var staffDomain = wire.NewSet(repository.New, service9.New)

var authDomain = wire.NewSet(service.New)

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

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, dashboard.New, roomtype.New, room.New, guest.New, booking.New, folio.New, housekeeping.New, staff.New, router.New)
