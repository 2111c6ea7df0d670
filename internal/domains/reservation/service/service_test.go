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
	reservationMocks "casatente/internal/domains/reservation/mocks"
	"casatente/internal/domains/reservation/model"
	"casatente/internal/domains/reservation/model/dto"
	"casatente/internal/domains/reservation/service"
	roomMocks "casatente/internal/domains/room/mocks"
	roomModel "casatente/internal/domains/room/model"
	notifierMocks "casatente/internal/notifier/mocks"
	"casatente/shared/constant"
	gDto "casatente/shared/dto"
	"casatente/shared/failure"
	"casatente/shared/timezone"
)

func newService(t *testing.T) (service.Reservation, *reservationMocks.MockReservation, *roomMocks.MockRoom, *notifierMocks.MockNotifier) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockNotifier := notifierMocks.NewMockNotifier(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockRoomRepo, nil, cfg, mockNotifier, mockOtel)

	return svc, mockRepo, mockRoomRepo, mockNotifier
}

func futureDate(days int) string {
	return timezone.Format(timezone.Today().AddDate(0, 0, days), constant.DateOnlyFormat)
}

func TestReservationService_ReservedDates(t *testing.T) {
	svc, mockRepo, _, _ := newService(t)

	checkIn, _ := timezone.Parse(constant.DateOnlyFormat, "2026-09-10")
	checkOut, _ := timezone.Parse(constant.DateOnlyFormat, "2026-09-11")

	tests := []struct {
		name      string
		setupMock func()
		want      []dto.ReservedDate
		wantErr   bool
	}{
		{
			name: "successful expansion",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Reservation{
						{CheckIn: checkIn, CheckOut: checkOut, Status: model.StatusConfirmed},
					}, nil)
			},
			want: []dto.ReservedDate{
				{Date: "2026-09-10", Status: model.StatusConfirmed},
				{Date: "2026-09-11", Status: model.StatusConfirmed},
			},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.ReservedDates(context.Background(), "room-id")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReservationService_Reconcile(t *testing.T) {
	t.Run("applies the three rules in order", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		now, err := timezone.Parse(constant.DateOnlyFormat, "2026-09-15")
		assert.NoError(t, err)

		today := timezone.DateOf(now)

		type sweepRule struct {
			status  string
			filters map[string]gDto.Filter
		}

		applied := []sweepRule{}

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, group gDto.FilterGroup) error {
				status, _ := fields[model.FieldStatus].(string)

				byArg := map[string]gDto.Filter{}
				for _, raw := range group.Filters {
					filter, ok := raw.(gDto.Filter)
					assert.True(t, ok, "sweep rules use flat filters")
					byArg[filter.ArgName] = filter
				}

				applied = append(applied, sweepRule{status: status, filters: byArg})

				return nil
			}).
			Times(3)

		assert.NoError(t, svc.Reconcile(context.Background(), now))
		assert.Len(t, applied, 3)

		expire := applied[0]
		assert.Equal(t, model.StatusExpired, expire.status)
		assert.Equal(t, model.StatusPending, expire.filters["status_filter"].Value)
		assert.Equal(t, gDto.FilterOperatorLess, expire.filters["check_in_before"].Operator)
		assert.Equal(t, today, expire.filters["check_in_before"].Value)

		begin := applied[1]
		assert.Equal(t, model.StatusInProgress, begin.status)
		assert.Equal(t, model.StatusConfirmed, begin.filters["status_filter"].Value)
		assert.Equal(t, gDto.FilterOperatorLessEq, begin.filters["check_in_until"].Operator)
		assert.Equal(t, today, begin.filters["check_in_until"].Value)
		assert.Equal(t, gDto.FilterOperatorGreaterEq, begin.filters["check_out_from"].Operator)
		assert.Equal(t, today, begin.filters["check_out_from"].Value)

		complete := applied[2]
		assert.Equal(t, model.StatusCompleted, complete.status)
		assert.Equal(t, gDto.FilterOperatorIn, complete.filters["status_filter"].Operator)
		assert.ElementsMatch(t,
			[]string{model.StatusConfirmed, model.StatusInProgress},
			complete.filters["status_filter"].Value)
		assert.Equal(t, gDto.FilterOperatorLess, complete.filters["check_out_before"].Operator)
		assert.Equal(t, today, complete.filters["check_out_before"].Value)
	})

	t.Run("stops on the first failing rule", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err := svc.Reconcile(context.Background(), timezone.Now())

		assert.Error(t, err)
	})

	t.Run("rerunning with no matching rows is a no-op", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(6)

		assert.NoError(t, svc.Reconcile(context.Background(), timezone.Now()))
		assert.NoError(t, svc.Reconcile(context.Background(), timezone.Now()))
	})
}

func TestReservationService_Create_Validation(t *testing.T) {
	svc, _, mockRoomRepo, _ := newService(t)

	room := roomModel.Room{ID: "room-id", Name: "Tent A", MaxGuests: 2}

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "malformed check_in",
			req: dto.CreateReservationRequest{
				RoomID:   "room-id",
				CheckIn:  "not-a-date",
				CheckOut: futureDate(3),
				Guests:   1,
			},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "check_out not after check_in",
			req: dto.CreateReservationRequest{
				RoomID:   "room-id",
				CheckIn:  futureDate(3),
				CheckOut: futureDate(3),
				Guests:   1,
			},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "check_in in the past",
			req: dto.CreateReservationRequest{
				RoomID:   "room-id",
				CheckIn:  futureDate(-3),
				CheckOut: futureDate(3),
				Guests:   1,
			},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room not found",
			req: dto.CreateReservationRequest{
				RoomID:   "missing-room",
				CheckIn:  futureDate(3),
				CheckOut: futureDate(5),
				Guests:   1,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "too many guests",
			req: dto.CreateReservationRequest{
				RoomID:   "room-id",
				CheckIn:  futureDate(3),
				CheckOut: futureDate(5),
				Guests:   3,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Create(context.Background(), tt.req)

			assert.Error(t, err)
			assert.True(t, failure.IsCode(err, tt.wantCode))
		})
	}
}

func TestReservationService_Get(t *testing.T) {
	svc, mockRepo, _, _ := newService(t)

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{ID: "res-id", Status: model.StatusPending}, nil)

		res, err := svc.Get(context.Background(), "res-id")

		assert.NoError(t, err)
		assert.Equal(t, "res-id", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.True(t, failure.IsCode(err, http.StatusNotFound))
	})
}

func TestReservationService_UpdateStatus(t *testing.T) {
	svc, mockRepo, _, mockNotifier := newService(t)

	mockNotifier.EXPECT().
		ReservationStatusChanged(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name       string
		current    string
		next       string
		wantUpdate bool
		wantCode   int
	}{
		{name: "confirm pending", current: model.StatusPending, next: model.StatusConfirmed, wantUpdate: true},
		{name: "cancel pending", current: model.StatusPending, next: model.StatusCancelled, wantUpdate: true},
		{name: "cancel confirmed", current: model.StatusConfirmed, next: model.StatusCancelled, wantUpdate: true},
		{name: "confirm confirmed", current: model.StatusConfirmed, next: model.StatusConfirmed, wantCode: http.StatusConflict},
		{name: "confirm expired", current: model.StatusExpired, next: model.StatusConfirmed, wantCode: http.StatusConflict},
		{name: "cancel completed", current: model.StatusCompleted, next: model.StatusCancelled, wantCode: http.StatusConflict},
		{name: "cancel in progress", current: model.StatusInProgress, next: model.StatusCancelled, wantCode: http.StatusConflict},
		{name: "unknown target status", current: model.StatusPending, next: "archived", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(model.Reservation{ID: "res-id", Status: tt.current}, nil)

			if tt.wantUpdate {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			}

			err := svc.UpdateStatus(context.Background(), "res-id", dto.UpdateReservationStatusRequest{Status: tt.next})

			if tt.wantUpdate {
				assert.NoError(t, err)

				return
			}

			assert.True(t, failure.IsCode(err, tt.wantCode))
		})
	}

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{}, nil)

		err := svc.UpdateStatus(context.Background(), "missing", dto.UpdateReservationStatusRequest{Status: model.StatusConfirmed})

		assert.True(t, failure.IsCode(err, http.StatusNotFound))
	})
}

func TestReservationService_DeleteManual(t *testing.T) {
	svc, mockRepo, _, _ := newService(t)

	t.Run("deletes a manual reservation", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{ID: "res-id", ReservationType: model.TypeManual}, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.DeleteManual(context.Background(), "res-id"))
	})

	t.Run("refuses customer reservations", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{ID: "res-id", ReservationType: model.TypeCustomer}, nil)

		err := svc.DeleteManual(context.Background(), "res-id")

		assert.True(t, failure.IsCode(err, http.StatusNotFound))
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{}, nil)

		err := svc.DeleteManual(context.Background(), "missing")

		assert.True(t, failure.IsCode(err, http.StatusNotFound))
	})
}

func TestReservationService_RequestCancellation(t *testing.T) {
	svc, mockRepo, _, mockNotifier := newService(t)

	mockNotifier.EXPECT().
		CancellationRequested(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	t.Run("flags a fresh request", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{ID: "res-id", Status: model.StatusConfirmed}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.RequestCancellation(context.Background(), dto.CancelRequestRequest{ReservationID: "res-id"})

		assert.NoError(t, err)
		assert.Equal(t, "res-id", res.ReservationID)
		assert.False(t, res.AlreadyRequested)
	})

	t.Run("repeat request is idempotent", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{ID: "res-id", CancelRequested: true}, nil)

		res, err := svc.RequestCancellation(context.Background(), dto.CancelRequestRequest{ReservationID: "res-id"})

		assert.NoError(t, err)
		assert.True(t, res.AlreadyRequested)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{}, nil)

		_, err := svc.RequestCancellation(context.Background(), dto.CancelRequestRequest{ReservationID: "missing"})

		assert.True(t, failure.IsCode(err, http.StatusNotFound))
	})
}

func TestReservationService_GetUserReservations(t *testing.T) {
	svc, mockRepo, _, _ := newService(t)

	t.Run("lists with pagination metadata", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Reservation{{ID: "res-id"}}, nil)

		res, err := svc.GetUserReservations(context.Background(), "user-id", gDto.QueryParams{Limit: 10, Page: 1})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Reservations, 1)
	})

	t.Run("count error", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.GetUserReservations(context.Background(), "user-id", gDto.QueryParams{})

		assert.Error(t, err)
	})
}

func TestReservationService_HasCompletedStay(t *testing.T) {
	svc, mockRepo, _, _ := newService(t)

	tests := []struct {
		name      string
		setupMock func()
		want      bool
		wantErr   bool
	}{
		{
			name: "has a completed stay",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			want: true,
		},
		{
			name: "no completed stay",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			want: false,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.HasCompletedStay(context.Background(), "user-id")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, res.Completed)
		})
	}
}
