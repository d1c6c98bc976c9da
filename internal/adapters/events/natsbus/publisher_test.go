package natsbus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"

	"critter-collector/internal/ports/events"
)

type recordingConn struct {
	msgs []*nats.Msg
	err  error
}

func (c *recordingConn) PublishMsg(m *nats.Msg) error {
	if c.err != nil {
		return c.err
	}
	c.msgs = append(c.msgs, m)
	return nil
}

func TestPublish_PrefixedSubjectAndJSON(t *testing.T) {
	conn := &recordingConn{}
	p := &Publisher{conn: conn, prefix: "critters"}

	ev := events.PlayerCaught{
		UserName:       "ash",
		CommonName:     "Pikachu",
		ScientificName: "Electrus murinus",
		Count:          2,
		CaughtAt:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if err := p.Publish(context.Background(), events.SubjectPlayerCaught, ev); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(conn.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(conn.msgs))
	}
	m := conn.msgs[0]
	if m.Subject != "critters.player.caught" {
		t.Fatalf("unexpected subject %q", m.Subject)
	}
	if m.Header.Get("Content-Type") != "application/json" {
		t.Fatalf("missing content type header")
	}

	var got events.PlayerCaught
	if err := json.Unmarshal(m.Data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != ev {
		t.Fatalf("got %+v, want %+v", got, ev)
	}
}

func TestPublish_Errors(t *testing.T) {
	conn := &recordingConn{err: nats.ErrConnectionClosed}
	p := &Publisher{conn: conn}

	err := p.Publish(context.Background(), events.SubjectSpawnCreated, events.SpawnCreated{})
	if !errors.Is(err, nats.ErrConnectionClosed) {
		t.Fatalf("expected ErrConnectionClosed, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Publish(ctx, events.SubjectSpawnCreated, events.SpawnCreated{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSubject_NoPrefix(t *testing.T) {
	p := New(nil, "")
	if s := p.subject(events.SubjectSpawnCreated); s != "spawn.created" {
		t.Fatalf("unexpected subject %q", s)
	}
	if s := New(nil, "critters.").subject("x"); s != "critters.x" {
		t.Fatalf("trailing dot not trimmed: %q", s)
	}
}
