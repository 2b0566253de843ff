package housekeeping

import (
	"context"

	"lodge/config"
	"lodge/infras/kafka"
	reservationModel "lodge/internal/domains/reservation/model"
	reservationService "lodge/internal/domains/reservation/service"
	roomModel "lodge/internal/domains/room/model"
	roomDto "lodge/internal/domains/room/model/dto"
	roomService "lodge/internal/domains/room/service"
	"lodge/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// actor recorded on rows the listener touches.
const actor = "housekeeping"

// Listener consumes reservation status events and flips a room back to
// cleaning once its guest checks out.
type Listener struct {
	broker kafka.Client
	rooms  roomService.Room
	cfg    *config.Config
}

func New(broker kafka.Client, rooms roomService.Room, cfg *config.Config) Listener {
	return Listener{
		broker: broker,
		rooms:  rooms,
		cfg:    cfg,
	}
}

// Run blocks until the context is cancelled.
func (l Listener) Run(ctx context.Context) {
	topic := l.cfg.Kafka.Topics.ReservationStatus

	l.broker.Consume(ctx, constant.Empty, topic, func(msg kafkaGo.Message) {
		l.handle(ctx, msg)
	})
}

func (l Listener) handle(ctx context.Context, msg kafkaGo.Message) {
	decoded, err := kafka.DecodeKafkaMessage[reservationService.StatusChangedEvent](msg)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode reservation status event")

		return
	}

	event, ok := decoded.Value.(reservationService.StatusChangedEvent)
	if !ok {
		return
	}

	if event.NewStatus != reservationModel.StatusCheckedOut || event.RoomNo == constant.Empty {
		return
	}

	ctx = context.WithValue(ctx, constant.ContextKeyUserID, actor)

	req := roomDto.UpdateRoomStatusRequest{Status: roomModel.StatusCleaning}
	if err := l.rooms.UpdateStatus(ctx, event.RoomNo, req); err != nil {
		log.Error().Err(err).Str("room_no", event.RoomNo).Msg("failed to mark room for cleaning")
	}
}
