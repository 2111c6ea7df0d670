package model

import (
	"time"

	"casatente/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID              = "id"
	FieldRoomID          = "room_id"
	FieldUserID          = "user_id"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldGuests          = "guests"
	FieldRequests        = "requests"
	FieldTotalAmount     = "total_amount"
	FieldStatus          = "status"
	FieldType            = "reservation_type"
	FieldCancelRequested = "cancel_requested"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusExpired    = "expired"
)

const (
	TypeCustomer = "customer"
	TypeManual   = "manual"
)

// BlockingStatuses are the statuses that make a reservation occupy its dates.
var BlockingStatuses = []string{StatusPending, StatusConfirmed, StatusInProgress}

type Reservation struct {
	ID              string          `db:"id"`
	RoomID          string          `db:"room_id"`
	UserID          *string         `db:"user_id"`
	CheckIn         time.Time       `db:"check_in"`
	CheckOut        time.Time       `db:"check_out"`
	Guests          int             `db:"guests"`
	Requests        string          `db:"requests"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	Status          string          `db:"status"`
	ReservationType string          `db:"reservation_type"`
	CancelRequested bool            `db:"cancel_requested"`
	UserName        *string         `db:"user_name" table:"users" column:"fullname"`
	RoomName        string          `db:"room_name" table:"rooms" column:"name"`
	model.Metadata
}

func (r Reservation) GetJoinQuery() string {
	return "LEFT JOIN users ON users.id = reservations.user_id " +
		"LEFT JOIN rooms ON rooms.id = reservations.room_id"
}

// IsTerminal reports whether the reservation reached a final status.
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusCancelled || r.Status == StatusExpired
}

// IsBlocking reports whether the reservation occupies its dates.
func (r *Reservation) IsBlocking() bool {
	for _, status := range BlockingStatuses {
		if r.Status == status {
			return true
		}
	}

	return false
}
