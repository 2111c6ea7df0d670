package reservation

import (
	"net/http"

	"casatente/infras/otel"
	"casatente/internal/domains/reservation/model"
	"casatente/internal/domains/reservation/model/dto"
	"casatente/internal/domains/reservation/service"
	"casatente/shared/constant"
	gDto "casatente/shared/dto"
	"casatente/shared/validator"
	"casatente/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/rooms/{room_id}/reserved-dates", handler.GetReservedDates)
	router.Post("/reservation", handler.CreateReservation)
	router.Post("/reservations/manual", handler.CreateManualReservation)
	router.Get("/reservations", handler.GetReservations)
	router.Put("/reservations/{id}/status", handler.UpdateReservationStatus)
	router.Delete("/reservations/manual/{id}", handler.DeleteManualReservation)
	router.Get("/api/user/{user_id}/reservations", handler.GetUserReservations)
	router.Get("/api/user/{user_id}/completed-stays", handler.GetCompletedStays)
	router.Post("/api/cancel-request", handler.RequestCancellation)
}

// GetReservedDates returns the days a room is taken.
// @Summary Get reserved dates for a room
// @Description Retrieve every day the room is blocked, with the blocking status per day.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param room_id path string true "Room ID"
// @Success 200 {object} response.Data[[]dto.ReservedDate] "Reserved dates"
// @Failure 500 {object} response.Error
// @Router /rooms/{room_id}/reserved-dates [get]
func (handler *Handler) GetReservedDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservedDates")
	defer scope.End()

	roomID := chi.URLParam(r, constant.RequestParamRoomID)

	dates, err := handler.service.ReservedDates(ctx, roomID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reserved dates")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reserved dates retrieved successfully")

	response.WithJSON(w, http.StatusOK, dates)
}

// CreateReservation handles a guest booking request.
// @Summary Create a reservation
// @Description Book a room for a date range. The reservation starts out pending.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param reservation body dto.CreateReservationRequest true "Reservation details"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Created reservation"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /reservation [post]
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	var req dto.CreateReservationRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation created successfully")

	response.WithJSON(w, http.StatusCreated, reservation)
}

// CreateManualReservation handles an operator-entered booking.
// @Summary Create a manual reservation
// @Description Record a walk-in or phone booking. The reservation starts out confirmed.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param reservation body dto.CreateManualReservationRequest true "Reservation details"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Created reservation"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /reservations/manual [post]
// @Security BearerAuth
func (handler *Handler) CreateManualReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateManualReservation")
	defer scope.End()

	var req dto.CreateManualReservationRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.CreateManual(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create manual reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Manual reservation created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, reservation)
}

// GetReservations retrieves all reservations.
// @Summary Get all reservations
// @Description Retrieve all reservations joined with guest and room names. Statuses are
// @Description reconciled against the calendar before the listing is served.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param room_id query string false "Filter by room"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 500 {object} response.Error
// @Router /reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if roomID := r.URL.Query().Get(constant.RequestParamRoomID); roomID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}

// UpdateReservationStatus confirms or cancels a reservation.
// @Summary Update reservation status
// @Description Confirm a pending reservation or cancel a pending/confirmed one.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param status body dto.UpdateReservationStatusRequest true "Target status"
// @Success 200 {object} response.Message "Reservation status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /reservations/{id}/status [put]
// @Security BearerAuth
func (handler *Handler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservationStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateReservationStatusRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation status updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Reservation status updated successfully")
}

// DeleteManualReservation hard-deletes a manual reservation.
// @Summary Delete a manual reservation
// @Description Delete an operator-entered reservation. Guest reservations cannot be deleted.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message "Manual reservation deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /reservations/manual/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteManualReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteManualReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteManual(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete manual reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Manual reservation deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Manual reservation deleted successfully")
}

// GetUserReservations retrieves one guest's reservation history.
// @Summary Get a user's reservations
// @Description Retrieve the reservation history of one guest, including cancellation flags.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "Reservation history"
// @Failure 500 {object} response.Error
// @Router /api/user/{user_id}/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetUserReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserReservations")
	defer scope.End()

	userID := chi.URLParam(r, constant.RequestParamUserID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	reservations, err := handler.service.GetUserReservations(ctx, userID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetCompletedStays reports whether a guest has a completed stay.
// @Summary Check completed stays
// @Description Report whether the guest has at least one completed reservation.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} response.Data[dto.CompletedStaysResponse] "Completed stay flag"
// @Failure 500 {object} response.Error
// @Router /api/user/{user_id}/completed-stays [get]
// @Security BearerAuth
func (handler *Handler) GetCompletedStays(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompletedStays")
	defer scope.End()

	userID := chi.URLParam(r, constant.RequestParamUserID)

	completed, err := handler.service.HasCompletedStay(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check completed stays")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, completed)
}

// RequestCancellation flags a reservation for cancellation review.
// @Summary Request reservation cancellation
// @Description Ask the hotel to cancel a reservation. Repeated requests are reported as already requested.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CancelRequestRequest true "Cancellation request"
// @Success 200 {object} response.Data[dto.CancelRequestResponse] "Cancellation request state"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/cancel-request [post]
// @Security BearerAuth
func (handler *Handler) RequestCancellation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestCancellation")
	defer scope.End()

	var req dto.CancelRequestRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RequestCancellation(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to request cancellation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cancellation requested for reservation " + res.ReservationID)

	response.WithJSON(w, http.StatusOK, res)
}
