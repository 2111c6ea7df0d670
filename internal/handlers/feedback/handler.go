package feedback

import (
	"net/http"

	"casatente/infras/otel"
	"casatente/internal/domains/feedback/model/dto"
	"casatente/internal/domains/feedback/service"
	"casatente/shared/constant"
	gDto "casatente/shared/dto"
	"casatente/shared/validator"
	"casatente/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Feedback
	otel    otel.Otel
}

func New(service service.Feedback, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/feedback", handler.CreateFeedback)
	router.Get("/feedback", handler.GetFeedbacks)
}

// CreateFeedback stores guest feedback.
// @Summary Submit feedback
// @Description Submit a comment and rating. Requires at least one completed stay.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param feedback body dto.CreateFeedbackRequest true "Feedback details"
// @Success 201 {object} response.Message "Feedback submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /feedback [post]
// @Security BearerAuth
func (handler *Handler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFeedback")
	defer scope.End()

	var req dto.CreateFeedbackRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create feedback")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Feedback submitted successfully")

	response.WithMessage(w, http.StatusCreated, "Feedback submitted successfully")
}

// GetFeedbacks lists guest feedback, best rated first.
// @Summary Get all feedback
// @Description Retrieve all feedback joined with guest names, ordered by rating.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetFeedbacksResponse] "List of feedback"
// @Failure 500 {object} response.Error
// @Router /feedback [get]
// @Security BearerAuth
func (handler *Handler) GetFeedbacks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeedbacks")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	feedbacks, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get feedbacks")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Feedbacks retrieved successfully")

	response.WithJSON(w, http.StatusOK, feedbacks)
}
