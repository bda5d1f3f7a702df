package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

// Topics names the two channels the service talks on.
type Topics struct {
	Product      string
	Notification string
}

func (t Topics) All() []string {
	return []string{t.Product, t.Notification}
}

// NewClient builds one client that both produces to and consumes from topics.
func NewClient(brokers []string, group string, topics Topics) (*kgo.Client, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ConsumerGroup(group),
		kgo.ConsumeTopics(topics.All()...),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return client, nil
}

// EnsureTopics creates any missing topic with a single partition and the
// broker's default replication.
func EnsureTopics(ctx context.Context, client *kgo.Client, topics Topics) error {
	adm := kadm.NewClient(client)

	resps, err := adm.CreateTopics(ctx, 1, -1, nil, topics.All()...)
	if err != nil {
		return fmt.Errorf("create topics: %w", err)
	}

	for topic, resp := range resps {
		if resp.Err != nil && !errors.Is(resp.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", topic, resp.Err)
		}
	}
	return nil
}
