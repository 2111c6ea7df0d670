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
	amenityMocks "casatente/internal/domains/amenity/mocks"
	"casatente/internal/domains/amenity/model"
	"casatente/internal/domains/amenity/model/dto"
	"casatente/internal/domains/amenity/service"
	"casatente/shared/cache"
	cacheMocks "casatente/shared/cache/mocks"
	"casatente/shared/failure"
)

func newService(t *testing.T) (service.Amenity, *amenityMocks.MockAmenity, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := amenityMocks.NewMockAmenity(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func TestAmenityService_Create(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	req := dto.CreateAmenityRequest{
		Name: "Fire pit",
		Type: model.TypeOutdoor,
	}

	t.Run("successful creation", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Create(context.Background(), req))
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		assert.Error(t, svc.Create(context.Background(), req))
	})
}

func TestAmenityService_GetByType(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	t.Run("lists amenities of a type", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Amenity{{ID: "am-1", Name: "Fire pit", Type: model.TypeOutdoor}}, nil)

		res, err := svc.GetByType(context.Background(), model.TypeOutdoor)

		assert.NoError(t, err)
		assert.Len(t, res.Amenities, 1)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, err := svc.GetByType(context.Background(), "underwater")

		assert.True(t, failure.IsCode(err, http.StatusBadRequest))
	})
}

func TestAmenityService_Update(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	req := dto.UpdateAmenityRequest{Name: "Sauna"}

	t.Run("successful update", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Update(context.Background(), req, model.TypeIndoor, "am-1"))
	})

	t.Run("not found under the given type", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(context.Background(), req, model.TypeIndoor, "missing")

		assert.True(t, failure.IsCode(err, http.StatusNotFound))
	})
}

func TestAmenityService_Delete(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	t.Run("successful delete", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), model.TypeOutdoor, "am-1"))
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), model.TypeOutdoor, "missing")

		assert.True(t, failure.IsCode(err, http.StatusNotFound))
	})
}
