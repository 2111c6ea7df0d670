package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"
	"fmt"

	"casatente/config"
	"casatente/infras/kafka"
	"casatente/infras/otel"
	"casatente/shared/constant"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// StatusChangedEvent is published to the guest notifications topic whenever an
// operator confirms or cancels a reservation.
type StatusChangedEvent struct {
	ReservationID string           `json:"reservation_id"`
	UserID        *string          `json:"user_id"`
	RoomName      string           `json:"room_name"`
	CheckIn       string           `json:"check_in"`
	CheckOut      string           `json:"check_out"`
	Guests        int              `json:"guests"`
	Status        string           `json:"status"`
	TotalAmount   *decimal.Decimal `json:"total_amount,omitempty"`
}

// CancellationRequestedEvent is published to the operator alerts topic when a
// guest asks to cancel a reservation.
type CancellationRequestedEvent struct {
	ReservationID string  `json:"reservation_id"`
	UserID        *string `json:"user_id"`
	RoomName      string  `json:"room_name"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Reason        string  `json:"reason,omitempty"`
}

type Notifier interface {
	ReservationStatusChanged(ctx context.Context, event StatusChangedEvent) error
	CancellationRequested(ctx context.Context, event CancellationRequestedEvent) error
}

type notifierImpl struct {
	cfg    *config.Config
	client kafka.Client
	otel   otel.Otel
}

func New(cfg *config.Config, client kafka.Client, otel otel.Otel) Notifier {
	return &notifierImpl{
		cfg:    cfg,
		client: client,
		otel:   otel,
	}
}

func (n *notifierImpl) ReservationStatusChanged(ctx context.Context, event StatusChangedEvent) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".ReservationStatusChanged")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = n.client.SendMessages(ctx, n.cfg.Kafka.Topics.GuestNotifications, kafka.Message{
		Key:   event.ReservationID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("reservationID", event.ReservationID).Msg("failed to publish status change event")

		return fmt.Errorf("failed to publish status change event: %w", err)
	}

	return nil
}

func (n *notifierImpl) CancellationRequested(ctx context.Context, event CancellationRequestedEvent) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".CancellationRequested")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = n.client.SendMessages(ctx, n.cfg.Kafka.Topics.OperatorAlerts, kafka.Message{
		Key:   event.ReservationID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("reservationID", event.ReservationID).Msg("failed to publish cancellation request event")

		return fmt.Errorf("failed to publish cancellation request event: %w", err)
	}

	return nil
}
