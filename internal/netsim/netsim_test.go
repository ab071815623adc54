package netsim

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/Jaze-bot/finquest-budget-manager/internal/log"
)

func testSim(rolls ...float64) *Simulator {
	s := New(time.Hour, log.New(log.Config{Level: slog.LevelError}))
	i := 0
	s.roll = func() float64 {
		v := rolls[i%len(rolls)]
		i++
		return v
	}
	return s
}

func TestCheckThreshold(t *testing.T) {
	cases := []struct {
		name string
		roll float64
		want bool
	}{
		{"well above", 0.9, true},
		{"just above", 0.31, true},
		{"at threshold", 0.3, false},
		{"below", 0.1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := testSim(tc.roll)
			if got := s.Check(); got != tc.want {
				t.Fatalf("Check() = %v, want %v", got, tc.want)
			}
			if s.Online() != tc.want {
				t.Fatalf("Online() = %v, want %v", s.Online(), tc.want)
			}
		})
	}
}

func TestNotifiesOnlyOnFlip(t *testing.T) {
	s := testSim(0.9, 0.9, 0.1, 0.1, 0.9)

	var got []bool
	s.AddListener("status-bar", func(st Status) { got = append(got, st.Online) })

	for i := 0; i < 5; i++ {
		s.Check()
	}

	// Starts online, so the steady 0.9 rolls are silent; only the two
	// flips fire.
	want := []bool{false, true}
	if len(got) != len(want) {
		t.Fatalf("notifications = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("notification %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRemoveListenerStopsNotifications(t *testing.T) {
	s := testSim(0.1, 0.9)

	calls := 0
	s.AddListener("status-bar", func(Status) { calls++ })
	s.Check() // flip to offline
	s.RemoveListener("status-bar")
	s.Check() // flip back, no listener

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s := New(time.Millisecond, log.New(log.Config{Level: slog.LevelError}))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
