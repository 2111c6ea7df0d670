package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"casatente/config"
	"casatente/infras/otel/mocks"
	feedbackMocks "casatente/internal/domains/feedback/mocks"
	"casatente/internal/domains/feedback/model"
	"casatente/internal/domains/feedback/model/dto"
	"casatente/internal/domains/feedback/service"
	reservationMocks "casatente/internal/domains/reservation/mocks"
	"casatente/shared/cache"
	cacheMocks "casatente/shared/cache/mocks"
	gDto "casatente/shared/dto"
	"casatente/shared/failure"
)

func newService(t *testing.T) (service.Feedback, *feedbackMocks.MockFeedback, *reservationMocks.MockReservation, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := feedbackMocks.NewMockFeedback(ctrl)
	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockReservationRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockReservationRepo, mockCache
}

func TestFeedbackService_Create(t *testing.T) {
	svc, mockRepo, mockReservationRepo, mockCache := newService(t)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	req := dto.CreateFeedbackRequest{
		UserID:  "user-id",
		Comment: "Wonderful stay",
		Rating:  5,
	}

	t.Run("guest with a completed stay can leave feedback", func(t *testing.T) {
		mockReservationRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Create(context.Background(), req))
	})

	t.Run("guest without a completed stay is refused", func(t *testing.T) {
		mockReservationRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Create(context.Background(), req)

		assert.True(t, failure.IsCode(err, http.StatusForbidden))
	})

	t.Run("stay lookup error", func(t *testing.T) {
		mockReservationRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, errors.New("database error"))

		assert.Error(t, svc.Create(context.Background(), req))
	})
}

func TestFeedbackService_GetAll(t *testing.T) {
	svc, mockRepo, _, mockCache := newService(t)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	t.Run("defaults to best rated first", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Feedback, error) {
				assert.Equal(t, model.FieldRating, params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)

				return []model.Feedback{{ID: "fb-1", Rating: 5}, {ID: "fb-2", Rating: 4}}, nil
			})

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1})

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Len(t, res.Feedbacks, 2)
	})

	t.Run("count error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{})

		assert.Error(t, err)
	})
}
