package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"agendalab/config"
	"agendalab/infras/otel/mocks"
	bookingMocks "agendalab/internal/domains/booking/mocks"
	"agendalab/internal/domains/booking/model"
	"agendalab/internal/domains/booking/model/dto"
	"agendalab/internal/domains/booking/service"
	labMocks "agendalab/internal/domains/lab/mocks"
	labModel "agendalab/internal/domains/lab/model"
	notificationMocks "agendalab/internal/domains/notification/service/mocks"
	cacheMocks "agendalab/shared/cache/mocks"
	"agendalab/shared/constant"
	gModel "agendalab/shared/model"
	"agendalab/shared/timezone"
)

type bookingFixture struct {
	ctrl     *gomock.Controller
	repo     *bookingMocks.MockBooking
	labRepo  *labMocks.MockLab
	notifier *notificationMocks.MockNotification
	svc      service.Booking
}

// newPermissiveCache stubs every cache operation, since invalidations run in
// goroutines and may race with test teardown.
func newPermissiveCache(ctrl *gomock.Controller) *cacheMocks.MockRedisCache {
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return mockCache
}

func newBookingFixture(t *testing.T) *bookingFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := bookingMocks.NewMockBooking(ctrl)
	labRepo := labMocks.NewMockLab(ctrl)
	notifier := notificationMocks.NewMockNotification(ctrl)
	mockCache := newPermissiveCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Hook fires in a goroutine, so the call may or may not land before the
	// test returns
	notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	return &bookingFixture{
		ctrl:     ctrl,
		repo:     repo,
		labRepo:  labRepo,
		notifier: notifier,
		svc:      service.New(repo, labRepo, notifier, cfg, mockCache, mockOtel),
	}
}

func professorContext(name string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserName, name)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleProfessor)
}

func adminContext(name string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserName, name)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
}

func activeLab() labModel.Lab {
	return labModel.Lab{
		ID:     "lab-1",
		Name:   "Lab de Química",
		Active: true,
	}
}

func confirmedBooking(t *testing.T) model.Booking {
	t.Helper()

	date, err := time.Parse(constant.DateOnlyFormat, "2025-06-10")
	assert.NoError(t, err)

	return model.Booking{
		ID:        "booking-1",
		LabID:     "lab-1",
		Date:      date,
		Slot:      "08:00 - 09:40",
		Professor: "Prof. Maria Silva",
		Subject:   "Química Orgânica",
		Group:     "3A",
		Status:    constant.BookingStatusConfirmed,
		UserID:    "user-1",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "Maria Silva",
			ModifiedBy: "Maria Silva",
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	validReq := dto.CreateBookingRequest{
		LabID:   "lab-1",
		Date:    "2025-06-10",
		Slot:    "08:00 - 09:40",
		Subject: "Química Orgânica",
		Group:   "3A",
	}

	tests := []struct {
		name       string
		ctx        context.Context
		req        dto.CreateBookingRequest
		setupMock  func(f *bookingFixture)
		wantErr    bool
		wantStatus string
	}{
		{
			name: "professor create defaults to pending",
			ctx:  professorContext("Maria Silva"),
			req:  validReq,
			setupMock: func(f *bookingFixture) {
				f.labRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeLab(), nil)

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: constant.BookingStatusPending,
		},
		{
			name: "admin create is confirmed immediately",
			ctx:  adminContext("Admin"),
			req:  validReq,
			setupMock: func(f *bookingFixture) {
				f.labRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeLab(), nil)

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: constant.BookingStatusConfirmed,
		},
		{
			name: "missing date rejected",
			ctx:  professorContext("Maria Silva"),
			req: dto.CreateBookingRequest{
				LabID: "lab-1",
				Slot:  "08:00 - 09:40",
			},
			setupMock: func(f *bookingFixture) {},
			wantErr:   true,
		},
		{
			name: "slot outside catalog rejected",
			ctx:  professorContext("Maria Silva"),
			req: dto.CreateBookingRequest{
				LabID: "lab-1",
				Date:  "2025-06-10",
				Slot:  "07:00 - 08:00",
			},
			setupMock: func(f *bookingFixture) {},
			wantErr:   true,
		},
		{
			name: "nonexistent lab rejected",
			ctx:  professorContext("Maria Silva"),
			req:  validReq,
			setupMock: func(f *bookingFixture) {
				f.labRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(labModel.Lab{}, nil)
			},
			wantErr: true,
		},
		{
			name: "inactive lab rejected",
			ctx:  professorContext("Maria Silva"),
			req:  validReq,
			setupMock: func(f *bookingFixture) {
				lab := activeLab()
				lab.Active = false

				f.labRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(lab, nil)
			},
			wantErr: true,
		},
		{
			name: "taken slot conflicts",
			ctx:  professorContext("Maria Silva"),
			req:  validReq,
			setupMock: func(f *bookingFixture) {
				f.labRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeLab(), nil)

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			ctx:  professorContext("Maria Silva"),
			req:  validReq,
			setupMock: func(f *bookingFixture) {
				f.labRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeLab(), nil)

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(tt.ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.req.Slot, res.Slot)
			assert.Equal(t, tt.req.Date, res.Date)
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	validUpdate := dto.UpdateBookingRequest{Subject: "Físico-Química"}

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.UpdateBookingRequest
		setupMock func(f *bookingFixture)
		wantErr   bool
	}{
		{
			name: "owner professor can update",
			ctx:  professorContext("Maria Silva"),
			req:  validUpdate,
			setupMock: func(f *bookingFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking(t), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "admin can update any booking",
			ctx:  adminContext("Someone Else"),
			req:  validUpdate,
			setupMock: func(f *bookingFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking(t), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "non-owner professor forbidden",
			ctx:  professorContext("Bruno Costa"),
			req:  validUpdate,
			setupMock: func(f *bookingFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking(t), nil)
			},
			wantErr: true,
		},
		{
			name: "cancelled booking cannot be edited",
			ctx:  professorContext("Maria Silva"),
			req:  validUpdate,
			setupMock: func(f *bookingFixture) {
				cancelled := confirmedBooking(t)
				cancelled.Status = constant.BookingStatusCancelled

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			ctx:  professorContext("Maria Silva"),
			req:  validUpdate,
			setupMock: func(f *bookingFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name:      "empty update rejected",
			ctx:       professorContext("Maria Silva"),
			req:       dto.UpdateBookingRequest{},
			setupMock: func(f *bookingFixture) {},
			wantErr:   true,
		},
		{
			name: "moving to a taken slot conflicts",
			ctx:  professorContext("Maria Silva"),
			req:  dto.UpdateBookingRequest{Slot: "10:00 - 11:40"},
			setupMock: func(f *bookingFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking(t), nil)

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "moving to a free slot succeeds",
			ctx:  professorContext("Maria Silva"),
			req:  dto.UpdateBookingRequest{Slot: "10:00 - 11:40"},
			setupMock: func(f *bookingFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking(t), nil)

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)
			tt.setupMock(f)

			err := f.svc.Update(tt.ctx, tt.req, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(f *bookingFixture)
		wantErr   bool
	}{
		{
			name: "owner professor can cancel",
			ctx:  professorContext("Maria Silva"),
			setupMock: func(f *bookingFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking(t), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "coordenacao can cancel any booking",
			ctx: func() context.Context {
				ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "coord-1")
				ctx = context.WithValue(ctx, constant.ContextKeyUserName, "Coordenadora")

				return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleCoordenacao)
			}(),
			setupMock: func(f *bookingFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking(t), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "non-owner professor forbidden",
			ctx:  professorContext("Bruno Costa"),
			setupMock: func(f *bookingFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmedBooking(t), nil)
			},
			wantErr: true,
		},
		{
			name: "cancelling twice rejected",
			ctx:  professorContext("Maria Silva"),
			setupMock: func(f *bookingFixture) {
				cancelled := confirmedBooking(t)
				cancelled.Status = constant.BookingStatusCancelled

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			ctx:  professorContext("Maria Silva"),
			setupMock: func(f *bookingFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)
			tt.setupMock(f)

			err := f.svc.Cancel(tt.ctx, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
