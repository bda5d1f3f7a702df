package messaging

import (
	"context"

	"github.com/labstack/gommon/log"
	"github.com/twmb/franz-go/pkg/kgo"
)

type RecordFetcher interface {
	PollFetches(ctx context.Context) kgo.Fetches
}

type Handler func(ctx context.Context, r *kgo.Record)

// Listener consumes both topics and logs what it receives.
type Listener struct {
	client RecordFetcher
	topics Topics
	handle Handler
}

func NewListener(client RecordFetcher, topics Topics) *Listener {
	l := &Listener{client: client, topics: topics}
	l.handle = l.logRecord
	return l
}

func (l *Listener) Start(ctx context.Context) {
	log.Info("Message listener started")

	for {
		fetches := l.client.PollFetches(ctx)
		if ctx.Err() != nil || fetches.IsClientClosed() {
			log.Info("Stopping message listener...")
			return
		}

		fetches.EachError(func(topic string, partition int32, err error) {
			log.Errorf("Listener: fetch from %s[%d] failed: %v", topic, partition, err)
		})

		fetches.EachRecord(func(r *kgo.Record) {
			l.handle(ctx, r)
		})
	}
}

func (l *Listener) logRecord(_ context.Context, r *kgo.Record) {
	switch r.Topic {
	case l.topics.Product:
		log.Infof("Received product message: %s", r.Value)
	case l.topics.Notification:
		log.Infof("Received notification: %s", r.Value)
	default:
		log.Warnf("Received message on unexpected topic %s", r.Topic)
	}
}
