//go:build wireinject
// +build wireinject

package di

import (
	"halachi/config"
	"halachi/infras/filestore"
	"halachi/infras/kafka"
	"halachi/infras/otel"
	"halachi/infras/redis"
	"halachi/shared/cache"
	"halachi/transport/http"
	"halachi/transport/http/middleware"
	"halachi/transport/http/router"

	bookingRepository "halachi/internal/domains/booking/repository"
	bookingService "halachi/internal/domains/booking/service"
	categoryRepository "halachi/internal/domains/category/repository"
	categoryService "halachi/internal/domains/category/service"
	hotelRepository "halachi/internal/domains/hotel/repository"
	hotelService "halachi/internal/domains/hotel/service"
	mediaService "halachi/internal/domains/media/service"
	mediaStorage "halachi/internal/domains/media/storage"
	reviewRepository "halachi/internal/domains/review/repository"
	reviewService "halachi/internal/domains/review/service"
	seoRepository "halachi/internal/domains/seo/repository"
	seoService "halachi/internal/domains/seo/service"
	siteService "halachi/internal/domains/site/service"
	tourRepository "halachi/internal/domains/tour/repository"
	tourService "halachi/internal/domains/tour/service"

	bookingHandler "halachi/internal/handlers/booking"
	categoryHandler "halachi/internal/handlers/category"
	hotelHandler "halachi/internal/handlers/hotel"
	mediaHandler "halachi/internal/handlers/media"
	reviewHandler "halachi/internal/handlers/review"
	seoHandler "halachi/internal/handlers/seo"
	siteHandler "halachi/internal/handlers/site"
	tourHandler "halachi/internal/handlers/tour"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	kafka.New,
	filestore.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewStaticAuthorizer,
	middleware.NewAdminMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var tourDomain = wire.NewSet(
	tourRepository.New,
	tourService.New,
)

var categoryDomain = wire.NewSet(
	categoryRepository.New,
	categoryService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var seoDomain = wire.NewSet(
	seoRepository.New,
	seoService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var mediaDomain = wire.NewSet(
	mediaStorage.New,
	mediaService.New,
)

var siteDomain = wire.NewSet(
	siteService.New,
)

var domains = wire.NewSet(
	hotelDomain,
	tourDomain,
	categoryDomain,
	reviewDomain,
	seoDomain,
	bookingDomain,
	mediaDomain,
	siteDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	siteHandler.New,
	hotelHandler.New,
	tourHandler.New,
	categoryHandler.New,
	reviewHandler.New,
	seoHandler.New,
	bookingHandler.New,
	mediaHandler.New,
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
