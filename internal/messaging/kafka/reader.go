package kafka

import (
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

// NewGroupReader joins a consumer group on the analytics topic, starting from
// the earliest retained offset on first run. Offsets are committed
// periodically rather than per message, so a crash can replay an event but
// never skip one.
func NewGroupReader(brokers []string, topic, groupID string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		StartOffset:    kafkago.FirstOffset,
		CommitInterval: time.Second,
	})
}
