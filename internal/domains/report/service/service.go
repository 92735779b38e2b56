package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"agendalab/config"
	"agendalab/infras/otel"
	bookingModel "agendalab/internal/domains/booking/model"
	bookingRepo "agendalab/internal/domains/booking/repository"
	materialModel "agendalab/internal/domains/material/model"
	materialRepo "agendalab/internal/domains/material/repository"
	"agendalab/internal/domains/report/model/dto"
	"agendalab/internal/domains/report/repository"
	scheduleModel "agendalab/internal/domains/schedule/model"
	"agendalab/shared"
	"agendalab/shared/cache"
	"agendalab/shared/constant"
	gDto "agendalab/shared/dto"
	"agendalab/shared/failure"
	"agendalab/shared/timezone"
)

const cacheGetDashboard = "report:dashboard"

// activityWindowDays bounds the most-active-professor aggregation.
const activityWindowDays = 30

type Report interface {
	GetDashboard(ctx context.Context, date string) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	repo      repository.Report
	bookings  bookingRepo.Booking
	materials materialRepo.Material
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Report, bookings bookingRepo.Booking, materials materialRepo.Material, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		repo:      repo,
		bookings:  bookings,
		materials: materials,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) GetDashboard(ctx context.Context, date string) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	if date == constant.Empty {
		date = timezone.Now().Format(constant.DateOnlyFormat)
	}

	if _, err = time.Parse(constant.DateOnlyFormat, date); err != nil {
		// nolint:wrapcheck
		return res, failure.BadRequestFromString("invalid date, expected format YYYY-MM-DD")
	}

	cacheKey := shared.BuildCacheKey(cacheGetDashboard, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dashboard")

		return res, nil
	}

	bookingsToday, err := s.bookings.Count(ctx, activeBookingsFilter(date))
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings for dashboard")

		return res, err
	}

	lowStock, err := s.materials.Count(ctx, lowStockFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to count low stock materials")

		return res, err
	}

	since := timezone.Now().AddDate(0, 0, -activityWindowDays)

	activity, err := s.repo.MostActiveProfessor(ctx, since)
	if err != nil {
		log.Error().Err(err).Msg("failed to get most active professor")

		return res, err
	}

	res = dto.DashboardResponse{
		Date:                date,
		BookingsToday:       bookingsToday,
		OccupancyRate:       float64(bookingsToday) / float64(len(scheduleModel.Slots())),
		MostActiveProfessor: activity.Professor,
		LowStockMaterials:   lowStock,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard to cache")
		}
	}()

	return res, nil
}

func activeBookingsFilter(date string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    bookingModel.TableName,
				Field:    bookingModel.FieldDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
			},
			gDto.Filter{
				Table:    bookingModel.TableName,
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    constant.BookingStatusCancelled,
			},
		},
	}
}

func lowStockFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    materialModel.TableName,
				Field:    materialModel.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{constant.MaterialStatusLowStock, constant.MaterialStatusDepleted},
			},
		},
	}
}
