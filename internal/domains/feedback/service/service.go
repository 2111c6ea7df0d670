package service

import (
	"context"
	"fmt"

	"casatente/config"
	"casatente/infras/otel"
	"casatente/internal/domains/feedback/model"
	"casatente/internal/domains/feedback/model/dto"
	"casatente/internal/domains/feedback/repository"
	reservationModel "casatente/internal/domains/reservation/model"
	reservationRepo "casatente/internal/domains/reservation/repository"
	"casatente/shared"
	"casatente/shared/cache"
	"casatente/shared/constant"
	gDto "casatente/shared/dto"
	"casatente/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllFeedback = "feedback:gets"
)

type Feedback interface {
	Create(ctx context.Context, req dto.CreateFeedbackRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams) (dto.GetFeedbacksResponse, error)
}

type serviceImpl struct {
	repo            repository.Feedback
	reservationRepo reservationRepo.Reservation
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(repo repository.Feedback, reservationRepo reservationRepo.Reservation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Feedback {
	return &serviceImpl{
		repo:            repo,
		reservationRepo: reservationRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

// Create stores guest feedback. Only guests with at least one completed stay
// may leave feedback.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFeedbackRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = req.UserID
	}

	completedFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    reservationModel.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    req.UserID,
				Table:    reservationModel.TableName,
			},
			gDto.Filter{
				Field:    reservationModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    reservationModel.StatusCompleted,
				Table:    reservationModel.TableName,
			},
		},
	}

	completed, err := s.reservationRepo.Exist(ctx, completedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check completed stays")

		return fmt.Errorf("failed to check completed stays: %w", err)
	}

	if !completed {
		return failure.Forbidden("feedback requires a completed stay") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create feedback")

		return fmt.Errorf("failed to create feedback: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllFeedback)
	}()

	return nil
}

// GetAll lists feedback joined with the guest name, best rated first.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams) (res dto.GetFeedbacksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = model.FieldRating
		req.SortDir = gDto.SortDirDesc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFeedback, req, gDto.FilterGroup{})

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for feedbacks")

		return res, nil
	}

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count feedbacks")

		return res, fmt.Errorf("failed to count feedbacks: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get feedbacks")

		return res, fmt.Errorf("failed to get feedbacks: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save feedbacks to cache")
		}
	}()

	return res, nil
}
