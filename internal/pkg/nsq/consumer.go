package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/movesure/dispatch/internal/pkg/logger"
	"github.com/nsqio/go-nsq"
)

// MessageHandler is a function that processes NSQ messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
}

// NewConsumer creates a new NSQ consumer for a topic/channel
func NewConsumer(topic, channel string, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()

	consumer, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}

	consumer.AddHandler(nsq.HandlerFunc(func(message *nsq.Message) error {
		message.Touch()

		if err := handler(message.Body); err != nil {
			logger.Error("Error processing message",
				logger.String("topic", topic),
				logger.Err(err))
			return err
		}

		message.Finish()
		return nil
	}))

	return &Consumer{consumer: consumer}, nil
}

// ConnectToNSQD connects the consumer directly to an nsqd instance
func (c *Consumer) ConnectToNSQD(address string) error {
	if err := c.consumer.ConnectToNSQD(address); err != nil {
		return fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}
	return nil
}

// ConnectToLookupd connects the consumer to an NSQ lookupd instance
func (c *Consumer) ConnectToLookupd(address string) error {
	if err := c.consumer.ConnectToNSQLookupd(address); err != nil {
		return fmt.Errorf("failed to connect to NSQ lookupd at %s: %w", address, err)
	}
	return nil
}

// UnmarshalMessage deserializes a JSON message into the provided struct
func UnmarshalMessage(messageBody []byte, v interface{}) error {
	if err := json.Unmarshal(messageBody, v); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Stop gracefully stops the consumer
func (c *Consumer) Stop() {
	c.consumer.Stop()
}
