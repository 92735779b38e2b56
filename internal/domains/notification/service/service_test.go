package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"agendalab/config"
	"agendalab/infras/kafka"
	kafkaMocks "agendalab/infras/kafka/mocks"
	"agendalab/infras/otel/mocks"
	notificationMocks "agendalab/internal/domains/notification/mocks"
	"agendalab/internal/domains/notification/model"
	"agendalab/internal/domains/notification/model/dto"
	"agendalab/internal/domains/notification/service"
	cacheMocks "agendalab/shared/cache/mocks"
	"agendalab/shared/constant"
)

type notificationFixture struct {
	repo  *notificationMocks.MockNotification
	kafka *kafkaMocks.MockClient
	svc   service.Notification
}

func newNotificationFixture(t *testing.T) *notificationFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := notificationMocks.NewMockNotification(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.BookingTopic = "booking-events"

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return &notificationFixture{
		repo:  repo,
		kafka: mockKafka,
		svc:   service.New(repo, cfg, mockCache, mockOtel, mockKafka),
	}
}

func bookingEvent(action string) dto.BookingEvent {
	return dto.BookingEvent{
		BookingID: "booking-1",
		Action:    action,
		Actor:     "Maria Silva",
		Message:   "Professor Maria Silva requested 08:00 - 09:40 on 2025-06-10",
	}
}

func TestNotificationService_Notify(t *testing.T) {
	tests := []struct {
		name      string
		event     dto.BookingEvent
		setupMock func(f *notificationFixture)
		wantErr   bool
	}{
		{
			name:  "created event stores info notification and publishes",
			event: bookingEvent(service.ActionCreated),
			setupMock: func(f *notificationFixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, notif model.Notification) error {
						assert.Equal(t, "New booking request", notif.Title)
						assert.Equal(t, constant.NotificationTypeInfo, notif.Type)
						assert.Equal(t, "booking-1", notif.RelatedID)

						return nil
					})

				f.kafka.EXPECT().
					SendMessages(gomock.Any(), "booking-events", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, msgs ...kafka.Message) error {
						assert.Len(t, msgs, 1)
						assert.Equal(t, "booking-1", msgs[0].Key)

						return nil
					})
			},
		},
		{
			name:  "cancelled event stores warning notification",
			event: bookingEvent(service.ActionCancelled),
			setupMock: func(f *notificationFixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, notif model.Notification) error {
						assert.Equal(t, constant.NotificationTypeWarning, notif.Type)

						return nil
					})

				f.kafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:  "publish failure is swallowed",
			event: bookingEvent(service.ActionUpdated),
			setupMock: func(f *notificationFixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				f.kafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("broker unreachable"))
			},
		},
		{
			name:  "insert failure is returned",
			event: bookingEvent(service.ActionCreated),
			setupMock: func(f *notificationFixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newNotificationFixture(t)
			tt.setupMock(f)

			err := f.svc.Notify(context.Background(), tt.event)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotificationService_MarkRead(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *notificationFixture)
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(f *notificationFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
						assert.Equal(t, true, req[model.FieldRead])

						return nil
					})
			},
		},
		{
			name: "not found",
			setupMock: func(f *notificationFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			setupMock: func(f *notificationFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newNotificationFixture(t)
			tt.setupMock(f)

			err := f.svc.MarkRead(context.Background(), "notification-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	f := newNotificationFixture(t)

	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	assert.NoError(t, f.svc.MarkAllRead(context.Background()))
}

func TestNotificationService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *notificationFixture)
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(f *notificationFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "not found",
			setupMock: func(f *notificationFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newNotificationFixture(t)
			tt.setupMock(f)

			err := f.svc.Delete(context.Background(), "notification-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
