package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"agendalab/config"
	"agendalab/infras/otel"
	"agendalab/infras/s3"
	"agendalab/internal/domains/material/model"
	"agendalab/internal/domains/material/model/dto"
	"agendalab/internal/domains/material/repository"
	"agendalab/shared"
	"agendalab/shared/cache"
	"agendalab/shared/constant"
	gDto "agendalab/shared/dto"
	"agendalab/shared/failure"
	"agendalab/shared/timezone"
)

const (
	cacheGetMaterial    = "material:get"
	cacheGetAllMaterial = "material:get_all"
	cacheCountMaterial  = "material:count"
)

type Material interface {
	Create(ctx context.Context, req dto.CreateMaterialRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMaterialsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.MaterialResponse, error)
	Update(ctx context.Context, req dto.UpdateMaterialRequest, id string) error
	Delete(ctx context.Context, id string) error
	Move(ctx context.Context, req dto.MoveMaterialRequest, id string) (dto.MaterialResponse, error)
	UploadPhoto(ctx context.Context, req dto.UploadPhotoRequest) (dto.UploadPhotoResponse, error)
}

type serviceImpl struct {
	repo  repository.Material
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Material, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Material {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMaterialRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	nameFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Name,
			},
		},
	}

	exist, err := s.repo.Exist(ctx, nameFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check material name")

		return err
	}

	if exist {
		// nolint:wrapcheck
		return failure.Conflict("material with this name already exists")
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to insert material")

		return fmt.Errorf("failed to insert material: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMaterial)
		shared.InvalidateCaches(c, s.cache, cacheCountMaterial)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMaterialsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMaterial, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for materials")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count materials")

		return res, err
	}

	materials, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get materials")

		return res, err
	}

	res.FromModels(materials, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save materials to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountMaterial, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for material count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count materials")

		return total, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save material count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MaterialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetMaterial, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for material")

		return res, nil
	}

	material, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get material")

		return res, fmt.Errorf("failed to get material: %w", err)
	}

	if material.ID == constant.Empty {
		// nolint:wrapcheck
		return res, failure.NotFound("material not found")
	}

	res.FromModel(material)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save material to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateMaterialRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check material existence")

		return err
	}

	if !exist {
		// nolint:wrapcheck
		return failure.NotFound("material not found")
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update material")

		return fmt.Errorf("failed to update material: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	material, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get material for deletion")

		return fmt.Errorf("failed to get material: %w", err)
	}

	if material.ID == constant.Empty {
		// nolint:wrapcheck
		return failure.NotFound("material not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete material")

		return fmt.Errorf("failed to delete material: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if material.PhotoURL != constant.Empty {
			bucketName := s.cfg.External.S3.BucketName

			objectName := s.s3.GetObjectNameFromURL(bucketName, material.PhotoURL)
			if objectName != constant.Empty {
				if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
					log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete photo from S3")
				}
			}
		}
	}()

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Move(ctx context.Context, req dto.MoveMaterialRequest, id string) (res dto.MaterialResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Move")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	material, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get material for movement")

		return res, fmt.Errorf("failed to get material: %w", err)
	}

	if material.ID == constant.Empty {
		// nolint:wrapcheck
		return res, failure.NotFound("material not found")
	}

	newStock := material.Stock
	switch req.Type {
	case constant.MovementTypeIn:
		newStock += req.Quantity
	case constant.MovementTypeOut:
		if req.Quantity > material.Stock {
			// nolint:wrapcheck
			return res, failure.BadRequestFromString("insufficient stock for this movement")
		}

		newStock -= req.Quantity
	}

	newStatus := model.StatusForStock(newStock, material.Minimum)

	updatedFields := map[string]any{
		model.FieldStock:         newStock,
		model.FieldStatus:        newStatus,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Move(ctx, updatedFields, filter, req.ToMovement(id, user)); err != nil {
		log.Error().Err(err).Msg("failed to apply material movement")

		return res, fmt.Errorf("failed to apply material movement: %w", err)
	}

	material.Stock = newStock
	material.Status = newStatus
	res.FromModel(material)

	s.invalidate(ctx, id)

	return res, nil
}

func (s *serviceImpl) UploadPhoto(ctx context.Context, req dto.UploadPhotoRequest) (res dto.UploadPhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadPhoto")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.PhotoFile, req.Photo, req.Photo.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload photo to S3")

		return res, fmt.Errorf("failed to upload photo to S3: %w", err)
	}

	res.FromModel(url, req.Photo.Filename)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetMaterial, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete material cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllMaterial)
		shared.InvalidateCaches(c, s.cache, cacheCountMaterial)
	}()
}
