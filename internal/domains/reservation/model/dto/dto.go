package dto

import (
	"time"

	"casatente/internal/domains/reservation/model"
	"casatente/shared"
	"casatente/shared/constant"
	gModel "casatente/shared/model"
	"casatente/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReservedDate is one calendar day a room is taken, with the status that blocks it.
type ReservedDate struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type CreateReservationRequest struct {
	RoomID   string `json:"room_id"  validate:"required,uuid4"`
	UserID   string `json:"user_id"  validate:"required,uuid4"`
	CheckIn  string `json:"check_in"  validate:"required,dateymd"`
	CheckOut string `json:"check_out" validate:"required,dateymd"`
	Guests   int    `json:"guests"   validate:"required,min=1"`
	Requests string `json:"requests" validate:"omitempty,max=2000"`
}

func (c *CreateReservationRequest) ToModel(checkIn, checkOut time.Time, total decimal.Decimal, user string) model.Reservation {
	userID := c.UserID

	return model.Reservation{
		ID:              uuid.NewString(),
		RoomID:          c.RoomID,
		UserID:          &userID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          c.Guests,
		Requests:        c.Requests,
		TotalAmount:     total,
		Status:          model.StatusPending,
		ReservationType: model.TypeCustomer,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CreateManualReservationRequest struct {
	RoomID      string           `json:"room_id"   validate:"required,uuid4"`
	CheckIn     string           `json:"check_in"  validate:"required,dateymd"`
	CheckOut    string           `json:"check_out" validate:"required,dateymd"`
	Guests      int              `json:"guests"    validate:"required,min=1"`
	Requests    string           `json:"requests"  validate:"omitempty,max=2000"`
	TotalAmount *decimal.Decimal `json:"total_amount" validate:"omitempty"`
}

func (c *CreateManualReservationRequest) ToModel(checkIn, checkOut time.Time, total decimal.Decimal, user string) model.Reservation {
	return model.Reservation{
		ID:              uuid.NewString(),
		RoomID:          c.RoomID,
		UserID:          nil,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          c.Guests,
		Requests:        c.Requests,
		TotalAmount:     total,
		Status:          model.StatusConfirmed,
		ReservationType: model.TypeManual,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled"`
}

type CancelRequestRequest struct {
	ReservationID string `json:"reservation_id" validate:"required,uuid4"`
	Reason        string `json:"reason"         validate:"omitempty,max=2000"`
}

type CancelRequestResponse struct {
	ReservationID    string `json:"reservation_id"`
	AlreadyRequested bool   `json:"already_requested"`
}

type ReservationResponse struct {
	ID              string          `json:"id"`
	RoomID          string          `json:"room_id"`
	UserID          *string         `json:"user_id"`
	UserName        *string         `json:"user_name"`
	RoomName        string          `json:"room_name"`
	CheckIn         string          `json:"check_in"`
	CheckOut        string          `json:"check_out"`
	Guests          int             `json:"guests"`
	Requests        string          `json:"requests"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          string          `json:"status"`
	ReservationType string          `json:"reservation_type"`
	CancelRequested bool            `json:"cancel_requested"`
	CreatedAt       time.Time       `json:"created_at"`
	ModifiedAt      time.Time       `json:"modified_at"`
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.UserID = model.UserID
	r.UserName = model.UserName
	r.RoomName = model.RoomName
	r.CheckIn = timezone.Format(model.CheckIn, constant.DateOnlyFormat)
	r.CheckOut = timezone.Format(model.CheckOut, constant.DateOnlyFormat)
	r.Guests = model.Guests
	r.Requests = model.Requests
	r.TotalAmount = model.TotalAmount
	r.Status = model.Status
	r.ReservationType = model.ReservationType
	r.CancelRequested = model.CancelRequested
	r.CreatedAt = model.CreatedAt
	r.ModifiedAt = model.ModifiedAt
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

type CompletedStaysResponse struct {
	Completed bool `json:"completed"`
}
