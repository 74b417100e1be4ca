package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Preference=MockPreferenceService

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"tzform/config"
	"tzform/infras/kafka"
	"tzform/infras/otel"
	"tzform/internal/domains/preference/model"
	"tzform/internal/domains/preference/model/dto"
	"tzform/internal/domains/preference/repository"
	"tzform/shared"
	"tzform/shared/cache"
	"tzform/shared/constant"
	gDto "tzform/shared/dto"
	"tzform/shared/failure"
	"tzform/shared/logger"
	"tzform/shared/timezone"
)

const (
	cacheKeyList   = "preferences"
	cacheKeyDetail = "preference"

	MessageNotFound = "Preference not found"
)

var sortableFields = []string{
	constant.FieldCreatedAt,
	constant.FieldModifiedAt,
	model.FieldName,
	model.FieldEmail,
	model.FieldDateTime,
}

type Preference interface {
	Create(ctx context.Context, req dto.PreferenceRequest) (dto.PreferenceResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter model.Filter) (dto.GetPreferencesResponse, error)
	Get(ctx context.Context, id string) (dto.PreferenceResponse, error)
	Update(ctx context.Context, id string, req dto.PreferenceRequest) (dto.PreferenceResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Preference
	cfg       *config.Config
	cache     cache.Cache
	publisher kafka.Publisher
	otel      otel.Otel
}

func New(repo repository.Preference, cfg *config.Config, cache cache.Cache, publisher kafka.Publisher, otel otel.Otel) Preference {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		publisher: publisher,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.PreferenceRequest) (res dto.PreferenceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".preference.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pref := req.ToModel()

	if err = s.repo.Insert(ctx, pref); err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("failed to create preference")

		return res, fmt.Errorf("failed to create preference: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheKeyList)
	s.publish(ctx, model.EventCreated, pref)

	res.FromModel(pref)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter model.Filter) (res dto.GetPreferencesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".preference.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.Sanitize(sortableFields)

	cacheKey := shared.BuildCacheKey(cacheKeyList,
		strconv.Itoa(params.Page), strconv.Itoa(params.Limit), params.SortBy, params.SortDir,
		"name="+filter.Name, "email="+filter.Email)

	if cerr := s.cache.Get(ctx, cacheKey, &res); cerr == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("failed to count preferences")

		return res, fmt.Errorf("failed to count preferences: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get preferences")

		return res, fmt.Errorf("failed to get preferences: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	if cerr := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); cerr != nil {
		logger.Ctx(ctx).Warn().Err(cerr).Msg("failed to cache preferences")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PreferenceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".preference.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.PrefixID(cacheKeyDetail, id)

	if cerr := s.cache.Get(ctx, cacheKey, &res); cerr == nil {
		return res, nil
	}

	pref, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(pref)

	if cerr := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); cerr != nil {
		logger.Ctx(ctx).Warn().Err(cerr).Str("id", id).Msg("failed to cache preference")
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.PreferenceRequest) (res dto.PreferenceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".preference.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	existing, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	pref := req.Apply(existing)

	if err = s.repo.Update(ctx, pref); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return res, failure.NotFound(MessageNotFound) //nolint:wrapcheck
		}

		logger.Ctx(ctx).Error().Err(err).Str("id", id).Msg("failed to update preference")

		return res, fmt.Errorf("failed to update preference: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheKeyList, shared.PrefixID(cacheKeyDetail, id))
	s.publish(ctx, model.EventUpdated, pref)

	res.FromModel(pref)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".preference.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return failure.NotFound(MessageNotFound) //nolint:wrapcheck
		}

		logger.Ctx(ctx).Error().Err(err).Str("id", id).Msg("failed to delete preference")

		return fmt.Errorf("failed to delete preference: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheKeyList, shared.PrefixID(cacheKeyDetail, id))
	s.publish(ctx, model.EventDeleted, model.Preference{ID: id})

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Preference, error) {
	pref, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return pref, failure.NotFound(MessageNotFound) //nolint:wrapcheck
	}

	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("id", id).Msg("failed to get preference")

		return pref, fmt.Errorf("failed to get preference: %w", err)
	}

	return pref, nil
}

// publish emits a change event. Broker failures are logged, not returned.
func (s *serviceImpl) publish(ctx context.Context, eventType string, pref model.Preference) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+eventType)
	defer scope.End()

	msg := kafka.Message{Key: pref.ID, Value: model.NewEvent(eventType, pref, timezone.Now())}

	if err := s.publisher.Publish(ctx, msg); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Str("event", eventType).Str("id", pref.ID).Msg("failed to publish preference event")
	}
}
