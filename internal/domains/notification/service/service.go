package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"agendalab/config"
	"agendalab/infras/kafka"
	"agendalab/infras/otel"
	"agendalab/internal/domains/notification/model"
	"agendalab/internal/domains/notification/model/dto"
	"agendalab/internal/domains/notification/repository"
	"agendalab/shared"
	"agendalab/shared/cache"
	"agendalab/shared/constant"
	gDto "agendalab/shared/dto"
	"agendalab/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllNotification = "notification:gets"
	cacheCountNotification  = "notification:count"
)

const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionCancelled = "cancelled"
)

type Notification interface {
	Notify(ctx context.Context, event dto.BookingEvent) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetNotificationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Notification
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	kafka kafka.Client
}

func New(repo repository.Notification, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Notification {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		kafka: kafka,
	}
}

func titleForAction(action string) (title, notificationType string) {
	switch action {
	case ActionCreated:
		return "New booking request", constant.NotificationTypeInfo
	case ActionUpdated:
		return "Booking updated", constant.NotificationTypeInfo
	case ActionCancelled:
		return "Booking cancelled", constant.NotificationTypeWarning
	default:
		return "Booking activity", constant.NotificationTypeInfo
	}
}

// Notify stores an advisory notification and publishes the event to the
// booking topic. Publish failures are logged and swallowed, the stored row
// is the source of truth.
func (s *serviceImpl) Notify(ctx context.Context, event dto.BookingEvent) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Notify")
	defer scope.End()
	defer scope.TraceIfError(err)

	title, notificationType := titleForAction(event.Action)

	req := dto.NotifyRequest{
		Title:     title,
		Message:   event.Message,
		Type:      notificationType,
		RelatedID: event.BookingID,
	}

	if err = s.repo.Insert(ctx, req.ToModel(event.Actor)); err != nil {
		log.Error().Err(err).Msg("failed to store notification")

		return fmt.Errorf("failed to store notification: %w", err)
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.BookingTopic, kafka.Message{
		Key:   event.BookingID,
		Value: event,
	}); err != nil {
		log.Warn().Err(err).Str("booking_id", event.BookingID).Msg("failed to publish booking event")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllNotification)
		shared.InvalidateCaches(c, s.cache, cacheCountNotification)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllNotification, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for notifications")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save notifications to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountNotification, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for notification count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save notification count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserName).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if notification exists")

		return fmt.Errorf("failed to check if notification exists: %w", err)
	}

	if !exist {
		return failure.NotFound("notification not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(dto.MarkReadRequest{Read: true}, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to mark notification as read")

		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllNotification)
		shared.InvalidateCaches(c, s.cache, cacheCountNotification)
	}()

	return nil
}

func (s *serviceImpl) MarkAllRead(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkAllRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserName).(string)

	unreadFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRead,
				Operator: gDto.FilterOperatorEq,
				Value:    false,
				Table:    model.TableName,
			},
		},
	}

	updatedFields := shared.TransformFields(dto.MarkReadRequest{Read: true}, user)
	if err = s.repo.Update(ctx, updatedFields, unreadFilter); err != nil {
		log.Error().Err(err).Msg("failed to mark all notifications as read")

		return fmt.Errorf("failed to mark all notifications as read: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllNotification)
		shared.InvalidateCaches(c, s.cache, cacheCountNotification)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if notification exists")

		return fmt.Errorf("failed to check if notification exists: %w", err)
	}

	if !exist {
		return failure.NotFound("notification not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete notification")

		return fmt.Errorf("failed to delete notification: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllNotification)
		shared.InvalidateCaches(c, s.cache, cacheCountNotification)
	}()

	return nil
}
