package service

import (
	"context"
	"encoding/json"

	"buildchem-be/internal/dto"
	"buildchem-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// SelectionDelivery pushes a payload to every open tab of a visitor.
// Implemented by websocket.Hub.
type SelectionDelivery interface {
	Send(ctx context.Context, visitorId string, payload []byte)
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	delivery  SelectionDelivery
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	delivery SelectionDelivery,
	log logger.ILogger,
) IConsumerService {
	if topicName == "" {
		topicName = SelectionChangedTopic
	}
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		delivery:  delivery,
		logger:    log,
	}
}

// Consume subscribes and processes messages in the background until ctx ends.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// Badge updates are disposable: everything is acked, nothing is retried.
	defer msg.Ack()

	var payload dto.SelectionChangedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Warn("SelectionStream", "Dropping malformed message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}
	if payload.VisitorId == "" {
		return
	}

	frame, err := json.Marshal(map[string]interface{}{
		"type": "selection_changed",
		"data": payload,
	})
	if err != nil {
		return
	}
	cs.delivery.Send(ctx, payload.VisitorId, frame)
}
