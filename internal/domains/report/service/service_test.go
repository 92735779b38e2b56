package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"agendalab/config"
	"agendalab/infras/otel/mocks"
	bookingMocks "agendalab/internal/domains/booking/mocks"
	materialMocks "agendalab/internal/domains/material/mocks"
	reportMocks "agendalab/internal/domains/report/mocks"
	"agendalab/internal/domains/report/model"
	"agendalab/internal/domains/report/service"
	cacheMocks "agendalab/shared/cache/mocks"
)

type reportFixture struct {
	repo      *reportMocks.MockReport
	bookings  *bookingMocks.MockBooking
	materials *materialMocks.MockMaterial
	cache     *cacheMocks.MockRedisCache
	svc       service.Report
}

func newReportFixture(t *testing.T) *reportFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := reportMocks.NewMockReport(ctrl)
	bookings := bookingMocks.NewMockBooking(ctrl)
	materials := materialMocks.NewMockMaterial(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return &reportFixture{
		repo:      repo,
		bookings:  bookings,
		materials: materials,
		cache:     mockCache,
		svc:       service.New(repo, bookings, materials, cfg, mockCache, mockOtel),
	}
}

func TestReportService_GetDashboard(t *testing.T) {
	t.Run("aggregates dashboard numbers", func(t *testing.T) {
		f := newReportFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.bookings.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(3, nil)

		f.materials.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)

		f.repo.EXPECT().
			MostActiveProfessor(gomock.Any(), gomock.Any()).
			Return(model.ProfessorActivity{Professor: "Prof. Maria Silva", Total: 7}, nil)

		res, err := f.svc.GetDashboard(context.Background(), "2025-06-10")

		assert.NoError(t, err)
		assert.Equal(t, "2025-06-10", res.Date)
		assert.Equal(t, 3, res.BookingsToday)
		assert.InDelta(t, 0.5, res.OccupancyRate, 0.001)
		assert.Equal(t, "Prof. Maria Silva", res.MostActiveProfessor)
		assert.Equal(t, 2, res.LowStockMaterials)
	})

	t.Run("empty date defaults to today", func(t *testing.T) {
		f := newReportFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.bookings.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		f.materials.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		f.repo.EXPECT().
			MostActiveProfessor(gomock.Any(), gomock.Any()).
			Return(model.ProfessorActivity{}, nil)

		res, err := f.svc.GetDashboard(context.Background(), "")

		assert.NoError(t, err)
		assert.NotEmpty(t, res.Date)
		assert.Zero(t, res.OccupancyRate)
		assert.Empty(t, res.MostActiveProfessor)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		f := newReportFixture(t)

		_, err := f.svc.GetDashboard(context.Background(), "10/06/2025")

		assert.Error(t, err)
	})

	t.Run("cache hit skips repositories", func(t *testing.T) {
		f := newReportFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := f.svc.GetDashboard(context.Background(), "2025-06-10")

		assert.NoError(t, err)
	})

	t.Run("count error propagates", func(t *testing.T) {
		f := newReportFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.bookings.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := f.svc.GetDashboard(context.Background(), "2025-06-10")

		assert.Error(t, err)
	})
}
