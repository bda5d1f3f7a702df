package messaging

import (
	"context"

	"fleetdesk/cmd/internal/metrics"

	"github.com/labstack/gommon/log"
	"github.com/twmb/franz-go/pkg/kgo"
)

type RecordProducer interface {
	Produce(ctx context.Context, r *kgo.Record, promise func(*kgo.Record, error))
}

// Producer sends opaque string payloads without waiting for delivery.
// Failures are logged and counted, never returned.
type Producer struct {
	client  RecordProducer
	topics  Topics
	metrics *metrics.Metrics
}

func NewProducer(client RecordProducer, topics Topics, m *metrics.Metrics) *Producer {
	return &Producer{client: client, topics: topics, metrics: m}
}

func (p *Producer) SendProductMessage(ctx context.Context, payload string) {
	p.SendToQueue(ctx, p.topics.Product, payload)
}

func (p *Producer) SendNotification(ctx context.Context, payload string) {
	p.SendToQueue(ctx, p.topics.Notification, payload)
}

func (p *Producer) SendToQueue(ctx context.Context, topic, payload string) {
	record := &kgo.Record{
		Topic: topic,
		Value: []byte(payload),
	}

	// The request that triggered the send may finish long before delivery
	p.client.Produce(context.WithoutCancel(ctx), record, func(r *kgo.Record, err error) {
		p.metrics.IncrementMessages(r.Topic, err == nil)
		if err != nil {
			log.Errorf("failed to produce message to %s: %v", r.Topic, err)
			return
		}
		log.Debugf("produced message to %s at offset %d", r.Topic, r.Offset)
	})
}

// NopPublisher drops every message. It stands in when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) SendProductMessage(_ context.Context, payload string) {
	log.Debugf("messaging disabled, dropping product message: %s", payload)
}

func (NopPublisher) SendNotification(_ context.Context, payload string) {
	log.Debugf("messaging disabled, dropping notification: %s", payload)
}
