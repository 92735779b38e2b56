package service

import (
	"context"
	"errors"
	"fmt"

	"agendalab/config"
	"agendalab/infras/otel"
	"agendalab/internal/domains/booking/model"
	"agendalab/internal/domains/booking/model/dto"
	"agendalab/internal/domains/booking/repository"
	labModel "agendalab/internal/domains/lab/model"
	labRepo "agendalab/internal/domains/lab/repository"
	notificationDto "agendalab/internal/domains/notification/model/dto"
	notificationService "agendalab/internal/domains/notification/service"
	scheduleModel "agendalab/internal/domains/schedule/model"
	"agendalab/shared"
	"agendalab/shared/cache"
	"agendalab/shared/constant"
	gDto "agendalab/shared/dto"
	"agendalab/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Violations of the partial unique index on (lab_id, data, horario)
const pgUniqueViolation = "23505"

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	// Derived availability is keyed under the schedule service prefix
	cacheGetAvailability = "availability:get"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Booking
	labRepo  labRepo.Lab
	notifier notificationService.Notification
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Booking, labRepo labRepo.Lab, notifier notificationService.Notification, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		labRepo:  labRepo,
		notifier: notifier,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

type requester struct {
	userID string
	name   string
	role   string
}

func requesterFromContext(ctx context.Context) requester {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	name, _ := ctx.Value(constant.ContextKeyUserName).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return requester{userID: userID, name: name, role: role}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := requesterFromContext(ctx)

	if req.Date == constant.Empty {
		return res, failure.BadRequestFromString("booking date is required") // nolint:wrapcheck
	}

	if !scheduleModel.IsValidSlot(req.Slot) {
		return res, failure.BadRequestFromString("unknown time slot") // nolint:wrapcheck
	}

	lab, err := s.labRepo.Get(ctx, shared.FilterByID(req.LabID, labModel.FieldID, labModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get lab")

		return res, fmt.Errorf("failed to get lab: %w", err)
	}

	if lab.ID == constant.Empty {
		return res, failure.BadRequestFromString("lab does not exist") // nolint:wrapcheck
	}

	if !lab.Active {
		return res, failure.BadRequestFromString("lab is not active") // nolint:wrapcheck
	}

	// Early exclusivity check for a clean 409; the partial unique index still
	// backstops concurrent creates that race past it
	taken, err := s.slotTaken(ctx, req.LabID, req.Date, req.Slot, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot availability")

		return res, fmt.Errorf("failed to check slot availability: %w", err)
	}

	if taken {
		return res, failure.Conflict("time slot is already booked for this date") // nolint:wrapcheck
	}

	status := constant.BookingStatusPending
	if model.CanManageAll(user.role) {
		status = constant.BookingStatusConfirmed
	}

	booking, err := req.ToModel(user.userID, user.name, status)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return res, failure.Conflict("time slot is already booked for this date") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.fireHook(ctx, user, booking, notificationService.ActionCreated,
		fmt.Sprintf("Professor %s requested %s on %s", user.name, booking.Slot, req.Date))

	s.invalidate(ctx, booking.ID)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if req.Slot != constant.Empty && !scheduleModel.IsValidSlot(req.Slot) {
		return failure.BadRequestFromString("unknown time slot") // nolint:wrapcheck
	}

	user := requesterFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !model.CanModify(user.role, user.name, booking) {
		return failure.Forbidden("you are not allowed to modify this booking") // nolint:wrapcheck
	}

	if booking.Status == constant.BookingStatusCancelled {
		return failure.Conflict("booking is already cancelled") // nolint:wrapcheck
	}

	targetDate := booking.Date.Format(constant.DateOnlyFormat)
	if req.Date != constant.Empty {
		targetDate = req.Date
	}

	targetSlot := booking.Slot
	if req.Slot != constant.Empty {
		targetSlot = req.Slot
	}

	if targetDate != booking.Date.Format(constant.DateOnlyFormat) || targetSlot != booking.Slot {
		taken, err := s.slotTaken(ctx, booking.LabID, targetDate, targetSlot, booking.ID)
		if err != nil {
			log.Error().Err(err).Msg("failed to check slot availability")

			return fmt.Errorf("failed to check slot availability: %w", err)
		}

		if taken {
			return failure.Conflict("time slot is already booked for this date") // nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req, user.name)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return failure.Conflict("time slot is already booked for this date") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.fireHook(ctx, user, booking, notificationService.ActionUpdated,
		fmt.Sprintf("Professor %s updated the booking for %s on %s", user.name, targetSlot, targetDate))

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user := requesterFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !model.CanModify(user.role, user.name, booking) {
		return failure.Forbidden("you are not allowed to cancel this booking") // nolint:wrapcheck
	}

	if booking.Status == constant.BookingStatusCancelled {
		return failure.Conflict("booking is already cancelled") // nolint:wrapcheck
	}

	cancel := dto.CancelBookingRequest{Status: constant.BookingStatusCancelled}

	updatedFields := shared.TransformFields(cancel, user.name)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.fireHook(ctx, user, booking, notificationService.ActionCancelled,
		fmt.Sprintf("Professor %s cancelled the booking for %s on %s",
			user.name, booking.Slot, booking.Date.Format(constant.DateOnlyFormat)))

	s.invalidate(ctx, id)

	return nil
}

// slotTaken reports whether an active booking other than excludeID already
// claims (labID, date, slot).
func (s *serviceImpl) slotTaken(ctx context.Context, labID, date, slot, excludeID string) (bool, error) {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldLabID,
			Operator: gDto.FilterOperatorEq,
			Value:    labID,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorEq,
			Value:    date,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldSlot,
			Operator: gDto.FilterOperatorEq,
			Value:    slot,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorNotEq,
			Value:    constant.BookingStatusCancelled,
			Table:    model.TableName,
		},
	}

	if excludeID != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeID,
			Table:    model.TableName,
		})
	}

	return s.repo.Exist(ctx, gDto.FilterGroup{ // nolint:wrapcheck
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	})
}

// fireHook emits the advisory notification for professor-owned mutations.
// Admin and coordenacao changes stay silent.
func (s *serviceImpl) fireHook(ctx context.Context, user requester, booking model.Booking, action, message string) {
	if user.role != constant.RoleProfessor {
		return
	}

	event := notificationDto.BookingEvent{
		BookingID: booking.ID,
		Action:    action,
		Actor:     user.name,
		Message:   message,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notifier.Notify(c, event); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to emit booking notification")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetAvailability)
	}()
}
