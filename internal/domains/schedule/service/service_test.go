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
	bookingModel "agendalab/internal/domains/booking/model"
	labMocks "agendalab/internal/domains/lab/mocks"
	"agendalab/internal/domains/schedule/model"
	"agendalab/internal/domains/schedule/service"
	cacheMocks "agendalab/shared/cache/mocks"
	"agendalab/shared/constant"
)

func TestScheduleService_GetCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockLabRepo := labMocks.NewMockLab(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockBookingRepo, mockLabRepo, cfg, mockCache, mockOtel)

	res := svc.GetCatalog(context.Background())

	assert.Equal(t, model.Slots(), res.Slots)
}

func TestScheduleService_GetAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockLabRepo := labMocks.NewMockLab(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockBookingRepo, mockLabRepo, cfg, mockCache, mockOtel)

	// Async cache writes may or may not land before the test finishes
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	date := "2025-06-10"
	parsedDate, err := time.Parse(constant.DateOnlyFormat, date)
	assert.NoError(t, err)

	tests := []struct {
		name      string
		labID     string
		date      string
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, res []model.SlotStatus)
	}{
		{
			name:      "empty date returns empty slot list",
			labID:     "lab-1",
			date:      "",
			setupMock: func() {},
			check: func(t *testing.T, res []model.SlotStatus) {
				assert.Empty(t, res)
			},
		},
		{
			name:      "malformed date rejected",
			labID:     "lab-1",
			date:      "10/06/2025",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:  "lab not found",
			labID: "missing-lab",
			date:  date,
			setupMock: func() {
				mockLabRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name:  "lab existence check error",
			labID: "lab-1",
			date:  date,
			setupMock: func() {
				mockLabRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name:  "derives availability from active bookings",
			labID: "lab-1",
			date:  date,
			setupMock: func() {
				mockLabRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				bookings := []bookingModel.Booking{
					{
						ID:        "booking-1",
						LabID:     "lab-1",
						Date:      parsedDate,
						Slot:      "08:00 - 09:40",
						Professor: "Prof. Maria Silva",
						Status:    constant.BookingStatusConfirmed,
					},
				}

				mockBookingRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookings, nil)
			},
			check: func(t *testing.T, res []model.SlotStatus) {
				assert.Len(t, res, len(model.Slots()))
				assert.False(t, res[1].Available)
				assert.Equal(t, "Prof. Maria Silva", res[1].Occupant)
				assert.True(t, res[0].Available)
			},
		},
		{
			name:  "cache hit skips repositories",
			labID: "lab-1",
			date:  date,
			setupMock: func() {
				mockLabRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:  "booking query error",
			labID: "lab-1",
			date:  date,
			setupMock: func() {
				mockLabRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockBookingRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAvailability(context.Background(), tt.labID, tt.date)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.labID, res.LabID)

			if tt.check != nil {
				tt.check(t, res.Slots)
			}
		})
	}
}
