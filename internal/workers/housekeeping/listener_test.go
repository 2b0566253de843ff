package housekeeping_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	kafkaGo "github.com/segmentio/kafka-go"

	"lodge/config"
	kafkaMocks "lodge/infras/kafka/mocks"
	"lodge/infras/otel/mocks"
	reservationModel "lodge/internal/domains/reservation/model"
	reservationService "lodge/internal/domains/reservation/service"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	roomService "lodge/internal/domains/room/service"
	"lodge/internal/workers/housekeeping"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
)

func newTestListener(t *testing.T) (housekeeping.Listener, *kafkaMocks.MockClient, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.ReservationStatus = "reservation-status"

	rooms := roomService.New(mockRepo, cfg, mockCache, mocks.NewOtel())
	listener := housekeeping.New(mockKafka, rooms, cfg)

	return listener, mockKafka, mockRepo, mockCache
}

func statusMessage(t *testing.T, event reservationService.StatusChangedEvent) kafkaGo.Message {
	t.Helper()

	value, err := json.Marshal(event)
	assert.NoError(t, err)

	return kafkaGo.Message{Key: []byte("AB12CD:202406"), Value: value}
}

func TestListener_CheckoutMarksRoomForCleaning(t *testing.T) {
	listener, mockKafka, mockRepo, mockCache := newTestListener(t)

	msg := statusMessage(t, reservationService.StatusChangedEvent{
		Code:      "AB12CD",
		SeqNo:     202406,
		RoomNo:    "101",
		NewStatus: reservationModel.StatusCheckedOut,
	})

	mockKafka.EXPECT().
		Consume(gomock.Any(), gomock.Any(), "reservation-status", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, handler func(kafkaGo.Message)) {
			handler(msg)
		})

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, roomModel.StatusCleaning, fields[roomModel.FieldStatus])
			assert.Equal(t, "housekeeping", fields[constant.FieldModifiedBy])

			return nil
		})

	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	listener.Run(context.Background())
}

func TestListener_IgnoresNonCheckoutEvents(t *testing.T) {
	listener, mockKafka, _, _ := newTestListener(t)

	msg := statusMessage(t, reservationService.StatusChangedEvent{
		Code:      "AB12CD",
		SeqNo:     202406,
		RoomNo:    "101",
		NewStatus: reservationModel.StatusInHouse,
	})

	mockKafka.EXPECT().
		Consume(gomock.Any(), gomock.Any(), "reservation-status", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, handler func(kafkaGo.Message)) {
			handler(msg)
		})

	listener.Run(context.Background())
}

func TestListener_IgnoresMalformedPayloads(t *testing.T) {
	listener, mockKafka, _, _ := newTestListener(t)

	msg := kafkaGo.Message{Key: []byte("bad"), Value: []byte("{not json")}

	mockKafka.EXPECT().
		Consume(gomock.Any(), gomock.Any(), "reservation-status", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, handler func(kafkaGo.Message)) {
			handler(msg)
		})

	listener.Run(context.Background())
}
