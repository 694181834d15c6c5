package service

import (
	"context"
	"encoding/json"

	"buildchem-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const SelectionChangedTopic = "SELECTION_CHANGED"

type IPublisherService interface {
	PublishSelectionChanged(ctx context.Context, msg dto.SelectionChangedMessage) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	if topicName == "" {
		topicName = SelectionChangedTopic
	}
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (ps *publisherService) PublishSelectionChanged(ctx context.Context, payload dto.SelectionChangedMessage) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), body)
	msg.SetContext(ctx)
	return ps.pubSub.Publish(ps.topicName, msg)
}
