package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"casatente/config"
	"casatente/infras/otel"
	"casatente/infras/postgres"
	"casatente/internal/domains/reservation/model"
	"casatente/internal/domains/reservation/model/dto"
	"casatente/internal/domains/reservation/repository"
	roomModel "casatente/internal/domains/room/model"
	roomRepo "casatente/internal/domains/room/repository"
	"casatente/internal/notifier"
	"casatente/shared"
	"casatente/shared/constant"
	gDto "casatente/shared/dto"
	"casatente/shared/failure"
	"casatente/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// sweepActor is recorded as the modifier on rows the lifecycle sweep touches.
const sweepActor = "lifecycle-sweep"

type Reservation interface {
	ReservedDates(ctx context.Context, roomID string) ([]dto.ReservedDate, error)
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	CreateManual(ctx context.Context, req dto.CreateManualReservationRequest) (dto.ReservationResponse, error)
	Reconcile(ctx context.Context, now time.Time) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateReservationStatusRequest) error
	DeleteManual(ctx context.Context, id string) error
	RequestCancellation(ctx context.Context, req dto.CancelRequestRequest) (dto.CancelRequestResponse, error)
	GetUserReservations(ctx context.Context, userID string, req gDto.QueryParams) (dto.GetReservationsResponse, error)
	HasCompletedStay(ctx context.Context, userID string) (dto.CompletedStaysResponse, error)
}

type serviceImpl struct {
	repo     repository.Reservation
	roomRepo roomRepo.Room
	db       *postgres.Connection
	cfg      *config.Config
	notifier notifier.Notifier
	otel     otel.Otel
}

func New(repo repository.Reservation, roomRepo roomRepo.Room, db *postgres.Connection, cfg *config.Config, notifier notifier.Notifier, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		db:       db,
		cfg:      cfg,
		notifier: notifier,
		otel:     otel,
	}
}

// ReservedDates returns the per-day availability view for one room. Unknown
// rooms simply have no reservations, so they come back fully available.
func (s *serviceImpl) ReservedDates(ctx context.Context, roomID string) (res []dto.ReservedDate, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReservedDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservations, err := s.repo.GetAll(ctx, gDto.QueryParams{}, s.blockingFilter(roomID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get blocking reservations")

		return res, fmt.Errorf("failed to get blocking reservations: %w", err)
	}

	return BlockedDates(reservations), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = req.UserID
	}

	checkIn, checkOut, room, err := s.validateStay(ctx, req.RoomID, req.CheckIn, req.CheckOut, req.Guests)
	if err != nil {
		return res, err
	}

	total := room.PricePerNight.Mul(decimal.NewFromInt(int64(nights(checkIn, checkOut))))

	reservation := req.ToModel(checkIn, checkOut, total, user)

	if err = s.insertWithConflictCheck(ctx, reservation, checkIn, checkOut); err != nil {
		return res, err
	}

	reservation.RoomName = room.Name

	res.FromModel(reservation)

	return res, nil
}

// CreateManual records an operator-entered reservation. It has no owning user,
// starts out confirmed, and may carry an operator-supplied total; otherwise the
// total is computed from the room price with a one night floor.
func (s *serviceImpl) CreateManual(ctx context.Context, req dto.CreateManualReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateManual")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, room, err := s.validateStay(ctx, req.RoomID, req.CheckIn, req.CheckOut, req.Guests)
	if err != nil {
		return res, err
	}

	var total decimal.Decimal
	if req.TotalAmount != nil && req.TotalAmount.IsPositive() {
		total = *req.TotalAmount
	} else {
		billableNights := nights(checkIn, checkOut)
		if billableNights < 1 {
			billableNights = 1
		}

		total = room.PricePerNight.Mul(decimal.NewFromInt(int64(billableNights)))
	}

	reservation := req.ToModel(checkIn, checkOut, total, user)

	if err = s.insertWithConflictCheck(ctx, reservation, checkIn, checkOut); err != nil {
		return res, err
	}

	reservation.RoomName = room.Name

	res.FromModel(reservation)

	return res, nil
}

// Reconcile advances every reservation whose dates have passed, in a fixed
// order: stale pending requests expire first, confirmed stays that have begun
// move to in_progress, and stays whose checkout day has passed complete. Each
// rule is one conditional UPDATE, so re-running it is a no-op.
func (s *serviceImpl) Reconcile(ctx context.Context, now time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reconcile")
	defer scope.End()
	defer scope.TraceIfError(err)

	today := timezone.DateOf(now)

	expirePending := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusPending,
				Table:    model.TableName,
				ArgName:  "status_filter",
			},
			gDto.Filter{
				Field:    model.FieldCheckIn,
				Operator: gDto.FilterOperatorLess,
				Value:    today,
				Table:    model.TableName,
				ArgName:  "check_in_before",
			},
		},
	}
	if err = s.repo.Update(ctx, s.sweepFields(model.StatusExpired, now), expirePending); err != nil {
		return fmt.Errorf("failed to expire stale pending reservations: %w", err)
	}

	beginStays := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusConfirmed,
				Table:    model.TableName,
				ArgName:  "status_filter",
			},
			gDto.Filter{
				Field:    model.FieldCheckIn,
				Operator: gDto.FilterOperatorLessEq,
				Value:    today,
				Table:    model.TableName,
				ArgName:  "check_in_until",
			},
			gDto.Filter{
				Field:    model.FieldCheckOut,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    today,
				Table:    model.TableName,
				ArgName:  "check_out_from",
			},
		},
	}
	if err = s.repo.Update(ctx, s.sweepFields(model.StatusInProgress, now), beginStays); err != nil {
		return fmt.Errorf("failed to begin confirmed stays: %w", err)
	}

	completeStays := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{model.StatusConfirmed, model.StatusInProgress},
				Table:    model.TableName,
				ArgName:  "status_filter",
			},
			gDto.Filter{
				Field:    model.FieldCheckOut,
				Operator: gDto.FilterOperatorLess,
				Value:    today,
				Table:    model.TableName,
				ArgName:  "check_out_before",
			},
		},
	}
	if err = s.repo.Update(ctx, s.sweepFields(model.StatusCompleted, now), completeStays); err != nil {
		return fmt.Errorf("failed to complete finished stays: %w", err)
	}

	return nil
}

// GetAll lists reservations joined with room and guest names. The listing is
// preceded by a best effort lifecycle sweep so operators see current statuses;
// a sweep failure is logged and the read proceeds with whatever is stored.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err := s.Reconcile(ctx, timezone.Now()); err != nil {
		log.Warn().Err(err).Msg("lifecycle sweep before listing failed, serving stored statuses")
	}

	total, err := s.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	return res, nil
}

// UpdateStatus applies an operator decision. Confirm is only valid from
// pending, cancel from pending or confirmed; every other combination leaves the
// row untouched and reports a conflict. Terminal statuses never change here.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateReservationStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	switch req.Status {
	case model.StatusConfirmed:
		if reservation.Status != model.StatusPending {
			return failure.Conflict(fmt.Sprintf("cannot confirm a %s reservation", reservation.Status)) // nolint:wrapcheck
		}
	case model.StatusCancelled:
		if reservation.Status != model.StatusPending && reservation.Status != model.StatusConfirmed {
			return failure.Conflict(fmt.Sprintf("cannot cancel a %s reservation", reservation.Status)) // nolint:wrapcheck
		}
	default:
		return failure.BadRequestFromString("status must be confirmed or cancelled") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update reservation status")

		return fmt.Errorf("failed to update reservation status: %w", err)
	}

	event := notifier.StatusChangedEvent{
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		RoomName:      reservation.RoomName,
		CheckIn:       timezone.Format(reservation.CheckIn, constant.DateOnlyFormat),
		CheckOut:      timezone.Format(reservation.CheckOut, constant.DateOnlyFormat),
		Guests:        reservation.Guests,
		Status:        req.Status,
	}
	if req.Status == model.StatusConfirmed {
		event.TotalAmount = &reservation.TotalAmount
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notifier.ReservationStatusChanged(c, event); err != nil {
			log.Error().Err(err).Str("reservationID", reservation.ID).Msg("status change notification failed, transition stands")
		}
	}()

	return nil
}

// DeleteManual hard-deletes an operator-entered reservation. Customer
// reservations are never deleted through this path.
func (s *serviceImpl) DeleteManual(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteManual")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty || reservation.ReservationType != model.TypeManual {
		return failure.NotFound("manual reservation not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete manual reservation")

		return fmt.Errorf("failed to delete manual reservation: %w", err)
	}

	return nil
}

// RequestCancellation flags a reservation for operator review. The flag is
// independent of the status lifecycle and sticks regardless of later sweeps.
func (s *serviceImpl) RequestCancellation(ctx context.Context, req dto.CancelRequestRequest) (res dto.CancelRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestCancellation")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(req.ReservationID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.ReservationID = reservation.ID

	if reservation.CancelRequested {
		res.AlreadyRequested = true

		return res, nil
	}

	fields := map[string]any{
		model.FieldCancelRequested: true,
		constant.FieldModifiedAt:   timezone.Now(),
		constant.FieldModifiedBy:   user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(req.ReservationID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to flag cancellation request")

		return res, fmt.Errorf("failed to flag cancellation request: %w", err)
	}

	event := notifier.CancellationRequestedEvent{
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		RoomName:      reservation.RoomName,
		CheckIn:       timezone.Format(reservation.CheckIn, constant.DateOnlyFormat),
		CheckOut:      timezone.Format(reservation.CheckOut, constant.DateOnlyFormat),
		Reason:        req.Reason,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notifier.CancellationRequested(c, event); err != nil {
			log.Error().Err(err).Str("reservationID", reservation.ID).Msg("cancellation request notification failed")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetUserReservations(ctx context.Context, userID string, req gDto.QueryParams) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUserReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	total, err := s.Count(ctx, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user reservations")

		return res, fmt.Errorf("failed to get user reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) HasCompletedStay(ctx context.Context, userID string) (res dto.CompletedStaysResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HasCompletedStay")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusCompleted,
				Table:    model.TableName,
			},
		},
	}

	completed, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check completed stays")

		return res, fmt.Errorf("failed to check completed stays: %w", err)
	}

	res.Completed = completed

	return res, nil
}

// validateStay runs the shared booking checks for both booking paths and
// resolves the target room.
func (s *serviceImpl) validateStay(ctx context.Context, roomID, checkInRaw, checkOutRaw string, guests int) (checkIn, checkOut time.Time, room roomModel.Room, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, checkInRaw)
	if err != nil {
		return checkIn, checkOut, room, failure.BadRequestFromString("check_in must be a valid YYYY-MM-DD date") // nolint:wrapcheck
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, checkOutRaw)
	if err != nil {
		return checkIn, checkOut, room, failure.BadRequestFromString("check_out must be a valid YYYY-MM-DD date") // nolint:wrapcheck
	}

	if !checkIn.Before(checkOut) {
		return checkIn, checkOut, room, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	if checkIn.Before(timezone.Today()) {
		return checkIn, checkOut, room, failure.BadRequestFromString("check_in must not be in the past") // nolint:wrapcheck
	}

	room, err = s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return checkIn, checkOut, room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return checkIn, checkOut, room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if guests > room.MaxGuests {
		return checkIn, checkOut, room, failure.BadRequestFromString(fmt.Sprintf("room accommodates at most %d guests", room.MaxGuests)) // nolint:wrapcheck
	}

	return checkIn, checkOut, room, nil
}

// insertWithConflictCheck wraps the availability check and the insert in one
// serializable transaction holding a per-room advisory lock, so two concurrent
// bookings for the same room cannot both pass the check.
func (s *serviceImpl) insertWithConflictCheck(ctx context.Context, reservation model.Reservation, checkIn, checkOut time.Time) error {
	err := s.db.WithSerializableTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.AcquireRoomLock(ctx, tx, reservation.RoomID); err != nil {
			return err
		}

		blocking, err := s.repo.GetAllTx(ctx, tx, gDto.QueryParams{}, s.blockingFilter(reservation.RoomID))
		if err != nil {
			return err
		}

		if conflict := firstConflictDate(blocking, checkIn, checkOut); conflict != constant.Empty {
			return failure.Conflict("room is already reserved on " + conflict) // nolint:wrapcheck
		}

		return s.repo.InsertTx(ctx, tx, reservation)
	})

	if err == nil {
		return nil
	}

	if failure.IsCode(err, http.StatusConflict) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		if code == constant.PqErrorCodeSerializationFailure || code == constant.PqErrorCodeExclusionViolation {
			return failure.Conflict("reservation conflicts with a concurrent booking, try again") // nolint:wrapcheck
		}
	}

	log.Error().Err(err).Msg("failed to create reservation")

	return fmt.Errorf("failed to create reservation: %w", err)
}

func (s *serviceImpl) blockingFilter(roomID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    model.BlockingStatuses,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) sweepFields(status string, now time.Time) map[string]any {
	return map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: sweepActor,
	}
}

// nights prices one night per calendar day, so a stay spanning a DST shift
// still charges every night.
func nights(checkIn, checkOut time.Time) int {
	return timezone.DaysBetween(checkIn, checkOut)
}
