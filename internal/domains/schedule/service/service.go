package service

import (
	"context"
	"fmt"
	"time"

	"agendalab/config"
	"agendalab/infras/otel"
	bookingModel "agendalab/internal/domains/booking/model"
	bookingRepo "agendalab/internal/domains/booking/repository"
	labModel "agendalab/internal/domains/lab/model"
	labRepo "agendalab/internal/domains/lab/repository"
	"agendalab/internal/domains/schedule/model"
	"agendalab/internal/domains/schedule/model/dto"
	"agendalab/shared"
	"agendalab/shared/cache"
	"agendalab/shared/constant"
	gDto "agendalab/shared/dto"
	"agendalab/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAvailability = "availability:get"

	// High enough to cover every slot of one lab on one date
	availabilityQueryLimit = 100
)

type Schedule interface {
	GetCatalog(ctx context.Context) dto.SlotCatalogResponse
	GetAvailability(ctx context.Context, labID, date string) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	labRepo     labRepo.Lab
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, labRepo labRepo.Lab, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Schedule {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		labRepo:     labRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) GetCatalog(ctx context.Context) dto.SlotCatalogResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCatalog")
	defer scope.End()

	return dto.SlotCatalogResponse{Slots: model.Slots()}
}

func (s *serviceImpl) GetAvailability(ctx context.Context, labID, date string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.LabID = labID
	res.Date = date

	if date == constant.Empty {
		res.Slots = model.Derive(date, nil)

		return res, nil
	}

	if _, err = time.Parse(constant.DateOnlyFormat, date); err != nil {
		return res, failure.BadRequestFromString("invalid date, expected format YYYY-MM-DD") // nolint:wrapcheck
	}

	labExists, err := s.labRepo.Exist(ctx, shared.FilterByID(labID, labModel.FieldID, labModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if lab exists")

		return res, fmt.Errorf("failed to check if lab exists: %w", err)
	}

	if !labExists {
		return res, failure.NotFound("lab not found") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetAvailability, labID, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return res, nil
	}

	bookings, err := s.activeBookings(ctx, labID, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for availability")

		return res, fmt.Errorf("failed to get bookings for availability: %w", err)
	}

	res.Slots = model.Derive(date, bookings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) activeBookings(ctx context.Context, labID, date string) ([]bookingModel.Booking, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldLabID,
				Operator: gDto.FilterOperatorEq,
				Value:    labID,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    constant.BookingStatusCancelled,
				Table:    bookingModel.TableName,
			},
		},
	}

	// Insertion order keeps the first-booking-wins rule deterministic
	params := gDto.QueryParams{
		Page:    1,
		Limit:   availabilityQueryLimit,
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	return s.bookingRepo.GetAll(ctx, params, filter) // nolint:wrapcheck
}
