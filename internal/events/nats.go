package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"mentorly/internal/middleware"
	"mentorly/internal/observability"

	"github.com/nats-io/nats.go"
)

// conn is the subset of *nats.Conn the publisher needs.
type conn interface {
	Publish(subject string, data []byte) error
	Close()
}

// NATSPublisher publishes JSON encoded events to NATS subjects.
type NATSPublisher struct {
	conn conn
}

// NewNATSPublisher connects to url with reconnect handling.
func NewNATSPublisher(url string) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.Name("mentorly"),
		nats.MaxReconnects(10),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				middleware.Logger.Warn("NATS disconnected", slog.String("error", err.Error()))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			middleware.Logger.Info("NATS reconnected", slog.String("url", nc.ConnectedUrl()))
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}
	return &NATSPublisher{conn: nc}, nil
}

// NewPublisher returns a NATS publisher for url, or a NoopPublisher when url is empty.
func NewPublisher(url string) (Publisher, error) {
	if url == "" {
		return NoopPublisher{}, nil
	}
	return NewNATSPublisher(url)
}

func (p *NATSPublisher) PublishPostLiked(ctx context.Context, event PostLikedEvent) error {
	return p.publish(ctx, SubjectPostLiked, event)
}

func (p *NATSPublisher) PublishCommentAdded(ctx context.Context, event CommentAddedEvent) error {
	return p.publish(ctx, SubjectCommentAdded, event)
}

func (p *NATSPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

func (p *NATSPublisher) publish(ctx context.Context, subject string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		observability.EventsPublished.WithLabelValues(subject, "error").Inc()
		return fmt.Errorf("marshal %s: %w", subject, err)
	}

	if err := p.conn.Publish(subject, data); err != nil {
		observability.EventsPublished.WithLabelValues(subject, "error").Inc()
		return fmt.Errorf("publish %s: %w", subject, err)
	}

	observability.EventsPublished.WithLabelValues(subject, "ok").Inc()
	middleware.Logger.DebugContext(ctx, "Published event", slog.String("subject", subject))
	return nil
}
