// Package natsbus publishes domain events on core NATS subjects.
package natsbus

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// Connect dials NATS and keeps reconnecting for the life of the process.
func Connect(url, name string, log zerolog.Logger) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name(name),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			log.Error().Err(err).Msg("nats error")
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("nats disconnected")
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info().Str("url", c.ConnectedUrl()).Msg("nats reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return nc, nil
}

type msgPublisher interface {
	PublishMsg(m *nats.Msg) error
}

type Publisher struct {
	conn   msgPublisher
	prefix string
}

// New publishes on "<prefix>.<subject>"; an empty prefix leaves subjects as is.
func New(nc *nats.Conn, prefix string) *Publisher {
	return &Publisher{conn: nc, prefix: strings.Trim(prefix, ".")}
}

func (p *Publisher) Publish(ctx context.Context, subject string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", subject, err)
	}

	msg := nats.NewMsg(p.subject(subject))
	msg.Header.Set("Content-Type", "application/json")
	msg.Data = data

	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("publish %s: %w", msg.Subject, err)
	}
	return nil
}

func (p *Publisher) subject(s string) string {
	if p.prefix == "" {
		return s
	}
	return p.prefix + "." + s
}
