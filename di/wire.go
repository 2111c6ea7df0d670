//go:build wireinject
// +build wireinject

package di

import (
	"casatente/config"
	"casatente/infras/jwt"
	"casatente/infras/kafka"
	"casatente/infras/otel"
	"casatente/infras/postgres"
	"casatente/infras/redis"
	"casatente/internal/notifier"
	"casatente/permissions"
	"casatente/scheduler"
	"casatente/shared/cache"
	"casatente/transport/http"
	"casatente/transport/http/middleware"
	"casatente/transport/http/router"

	amenityHandler "casatente/internal/handlers/amenity"
	feedbackHandler "casatente/internal/handlers/feedback"
	reservationHandler "casatente/internal/handlers/reservation"
	roomHandler "casatente/internal/handlers/room"
	userHandler "casatente/internal/handlers/user"

	amenityRepository "casatente/internal/domains/amenity/repository"
	amenityService "casatente/internal/domains/amenity/service"
	feedbackRepository "casatente/internal/domains/feedback/repository"
	feedbackService "casatente/internal/domains/feedback/service"
	reservationRepository "casatente/internal/domains/reservation/repository"
	reservationService "casatente/internal/domains/reservation/service"
	roomRepository "casatente/internal/domains/room/repository"
	roomService "casatente/internal/domains/room/service"
	userRepository "casatente/internal/domains/user/repository"
	userService "casatente/internal/domains/user/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
	notifier.New,
)

var amenityDomain = wire.NewSet(
	amenityRepository.New,
	amenityService.New,
)

var feedbackDomain = wire.NewSet(
	feedbackRepository.New,
	feedbackService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var domains = wire.NewSet(
	roomDomain,
	reservationDomain,
	amenityDomain,
	feedbackDomain,
	userDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	reservationHandler.New,
	amenityHandler.New,
	feedbackHandler.New,
	userHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		scheduler.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
