package amenity

import (
	"net/http"

	"casatente/infras/otel"
	"casatente/internal/domains/amenity/model/dto"
	"casatente/internal/domains/amenity/service"
	"casatente/shared/constant"
	"casatente/shared/validator"
	"casatente/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Amenity
	otel    otel.Otel
}

func New(service service.Amenity, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/amenities", handler.CreateAmenity)
	router.Get("/amenities/{type}", handler.GetAmenitiesByType)
	router.Put("/amenities/{type}/{id}", handler.UpdateAmenity)
	router.Delete("/amenities/{type}/{id}", handler.DeleteAmenity)
}

// CreateAmenity handles the creation of a new amenity.
// @Summary Create a new amenity
// @Description Create a new indoor or outdoor amenity.
// @Tags Amenity
// @Accept json
// @Produce json
// @Param amenity body dto.CreateAmenityRequest true "Amenity details"
// @Success 201 {object} response.Message "Amenity created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /amenities [post]
// @Security BearerAuth
func (handler *Handler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAmenity")
	defer scope.End()

	var req dto.CreateAmenityRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create amenity")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Amenity created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Amenity created successfully")
}

// GetAmenitiesByType lists amenities of one type.
// @Summary Get amenities by type
// @Description Retrieve all indoor or outdoor amenities.
// @Tags Amenity
// @Accept json
// @Produce json
// @Param type path string true "Amenity type" Enums(indoor, outdoor)
// @Success 200 {object} response.Data[dto.GetAmenitiesResponse] "List of amenities"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /amenities/{type} [get]
func (handler *Handler) GetAmenitiesByType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAmenitiesByType")
	defer scope.End()

	amenityType := chi.URLParam(r, constant.RequestParamType)

	amenities, err := handler.service.GetByType(ctx, amenityType)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get amenities")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Amenities retrieved successfully")

	response.WithJSON(w, http.StatusOK, amenities)
}

// UpdateAmenity updates an existing amenity.
// @Summary Update an amenity
// @Description Update the details of an existing amenity.
// @Tags Amenity
// @Accept json
// @Produce json
// @Param type path string true "Amenity type" Enums(indoor, outdoor)
// @Param id path string true "Amenity ID"
// @Param amenity body dto.UpdateAmenityRequest true "Amenity details"
// @Success 200 {object} response.Message "Amenity updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /amenities/{type}/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAmenity")
	defer scope.End()

	amenityType := chi.URLParam(r, constant.RequestParamType)
	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateAmenityRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, amenityType, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update amenity")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Amenity updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Amenity updated successfully")
}

// DeleteAmenity deletes an amenity.
// @Summary Delete an amenity
// @Description Delete an amenity by type and ID.
// @Tags Amenity
// @Accept json
// @Produce json
// @Param type path string true "Amenity type" Enums(indoor, outdoor)
// @Param id path string true "Amenity ID"
// @Success 200 {object} response.Message "Amenity deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /amenities/{type}/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAmenity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAmenity")
	defer scope.End()

	amenityType := chi.URLParam(r, constant.RequestParamType)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, amenityType, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete amenity")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Amenity deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Amenity deleted successfully")
}
