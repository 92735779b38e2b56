package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"agendalab/config"
	"agendalab/infras/otel/mocks"
	s3Mocks "agendalab/infras/s3/mocks"
	materialMocks "agendalab/internal/domains/material/mocks"
	"agendalab/internal/domains/material/model"
	"agendalab/internal/domains/material/model/dto"
	"agendalab/internal/domains/material/service"
	movementModel "agendalab/internal/domains/movement/model"
	cacheMocks "agendalab/shared/cache/mocks"
	"agendalab/shared/constant"
)

type materialFixture struct {
	repo *materialMocks.MockMaterial
	s3   *s3Mocks.MockS3
	svc  service.Material
}

func newMaterialFixture(t *testing.T) *materialFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := materialMocks.NewMockMaterial(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// invalidations run in goroutines
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return &materialFixture{
		repo: repo,
		s3:   mockS3,
		svc:  service.New(repo, cfg, mockCache, mockOtel, mockS3),
	}
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
}

func beaker(stock, minimum int) model.Material {
	return model.Material{
		ID:       "material-1",
		Name:     "Béquer 250ml",
		Category: "Vidraria",
		Stock:    stock,
		Minimum:  minimum,
		Location: "Armário 2",
		Status:   model.StatusForStock(stock, minimum),
	}
}

func TestMaterialService_Create(t *testing.T) {
	req := dto.CreateMaterialRequest{
		Name:     "Béquer 250ml",
		Category: "Vidraria",
		Stock:    20,
		Minimum:  5,
	}

	tests := []struct {
		name      string
		setupMock func(f *materialFixture)
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(f *materialFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mat model.Material) error {
						assert.Equal(t, constant.MaterialStatusAvailable, mat.Status)

						return nil
					})
			},
		},
		{
			name: "duplicate name conflicts",
			setupMock: func(f *materialFixture) {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func(f *materialFixture) {
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
			f := newMaterialFixture(t)
			tt.setupMock(f)

			err := f.svc.Create(userContext(), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMaterialService_Move(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.MoveMaterialRequest
		setupMock  func(f *materialFixture)
		wantErr    bool
		wantStock  int
		wantStatus string
	}{
		{
			name: "entrada raises stock",
			req:  dto.MoveMaterialRequest{Type: constant.MovementTypeIn, Quantity: 10},
			setupMock: func(f *materialFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(beaker(3, 5), nil)

				f.repo.EXPECT().
					Move(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req map[string]any, _ any, mov movementModel.Movement) error {
						assert.Equal(t, 13, req[model.FieldStock])
						assert.Equal(t, constant.MaterialStatusAvailable, req[model.FieldStatus])
						assert.Equal(t, constant.MovementTypeIn, mov.Type)
						assert.Equal(t, "material-1", mov.MaterialID)

						return nil
					})
			},
			wantStock:  13,
			wantStatus: constant.MaterialStatusAvailable,
		},
		{
			name: "saida within stock lowers it",
			req:  dto.MoveMaterialRequest{Type: constant.MovementTypeOut, Quantity: 16},
			setupMock: func(f *materialFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(beaker(20, 5), nil)

				f.repo.EXPECT().
					Move(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStock:  4,
			wantStatus: constant.MaterialStatusLowStock,
		},
		{
			name: "saida down to zero depletes",
			req:  dto.MoveMaterialRequest{Type: constant.MovementTypeOut, Quantity: 20},
			setupMock: func(f *materialFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(beaker(20, 5), nil)

				f.repo.EXPECT().
					Move(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStock:  0,
			wantStatus: constant.MaterialStatusDepleted,
		},
		{
			name: "saida beyond stock rejected",
			req:  dto.MoveMaterialRequest{Type: constant.MovementTypeOut, Quantity: 21},
			setupMock: func(f *materialFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(beaker(20, 5), nil)
			},
			wantErr: true,
		},
		{
			name: "material not found",
			req:  dto.MoveMaterialRequest{Type: constant.MovementTypeIn, Quantity: 1},
			setupMock: func(f *materialFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Material{}, nil)
			},
			wantErr: true,
		},
		{
			name: "transaction error",
			req:  dto.MoveMaterialRequest{Type: constant.MovementTypeIn, Quantity: 1},
			setupMock: func(f *materialFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(beaker(20, 5), nil)

				f.repo.EXPECT().
					Move(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMaterialFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Move(userContext(), tt.req, "material-1")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStock, res.Stock)
			assert.Equal(t, tt.wantStatus, res.Status)
		})
	}
}

func TestMaterialService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *materialFixture)
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(f *materialFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(beaker(20, 5), nil)
			},
		},
		{
			name: "not found",
			setupMock: func(f *materialFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Material{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMaterialFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Get(userContext(), "material-1")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "material-1", res.ID)
		})
	}
}
