package breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
)

func TestBreaker_OpensAfterFailureRatio(t *testing.T) {
	cb := New[int]("test-open", Options{MinRequests: 3, FailureRatio: 0.5, Timeout: time.Hour}, zerolog.Nop())

	boom := errors.New("boom")
	for i := 0; i < 3; i++ {
		_, err := cb.Execute(func() (int, error) { return 0, boom })
		if !errors.Is(err, boom) {
			t.Fatalf("call %d: expected upstream error, got %v", i, err)
		}
	}

	if cb.State() != gobreaker.StateOpen {
		t.Fatalf("expected open breaker, got %s", cb.State())
	}

	_, err := cb.Execute(func() (int, error) { return 1, nil })
	if !Rejected(err) {
		t.Fatalf("expected rejection while open, got %v", err)
	}
	if Rejected(boom) {
		t.Fatalf("plain errors are not rejections")
	}
}

func TestBreaker_StaysClosedBelowMinRequests(t *testing.T) {
	cb := New[int]("test-closed", Options{MinRequests: 5}, zerolog.Nop())

	for i := 0; i < 4; i++ {
		_, _ = cb.Execute(func() (int, error) { return 0, errors.New("x") })
	}
	if cb.State() != gobreaker.StateClosed {
		t.Fatalf("expected closed breaker, got %s", cb.State())
	}
}
