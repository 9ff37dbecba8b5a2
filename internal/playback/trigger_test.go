package playback

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/yildizm/sortflow/internal/algorithm"
	"github.com/yildizm/sortflow/internal/config"
	"github.com/yildizm/sortflow/internal/process"
)

func TestPathFor(t *testing.T) {
	trigger := NewTrigger(config.DefaultConfig().Playback, nil)

	expected := map[algorithm.Algorithm]string{
		algorithm.Bubble:    "animations/media/videos/bubble/1080p60/BubbleSort.mp4",
		algorithm.Selection: "animations/media/videos/selection/1080p60/SelectionSort.mp4",
		algorithm.Insertion: "animations/media/videos/insertion/1080p60/InsertionSort.mp4",
	}
	for a, path := range expected {
		if got := trigger.PathFor(a); got != path {
			t.Errorf("PathFor(%s) = %s, want %s", a, got, path)
		}
	}
}

func TestCommandFor(t *testing.T) {
	cfg := config.DefaultConfig().Playback
	cfg.PlayerArgs = []string{"--fs", "--loop=no"}
	trigger := NewTrigger(cfg, nil)

	got := trigger.CommandFor(algorithm.Bubble)
	want := process.Command{
		Name: "mpv",
		Args: []string{"--fs", "--loop=no", "animations/media/videos/bubble/1080p60/BubbleSort.mp4"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CommandFor mismatch (-want +got):\n%s", diff)
	}
}

func fakePlayer(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-player")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil { // #nosec G306 - test executable
		t.Fatalf("Failed to write fake player: %v", err)
	}
	return path
}

func TestPlay(t *testing.T) {
	defer goleak.VerifyNone(t)

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"player succeeds", `echo "playing $1"`, false},
		{"player fails", `echo "cannot open $1" 1>&2; exit 2`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig().Playback
			cfg.Player = fakePlayer(t, tt.body)
			err := NewTrigger(cfg, nil).Play(context.Background(), algorithm.Insertion)
			if tt.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestPlayMissingPlayer(t *testing.T) {
	cfg := config.DefaultConfig().Playback
	cfg.Player = filepath.Join(t.TempDir(), "no-such-player")

	err := NewTrigger(cfg, nil).Play(context.Background(), algorithm.Bubble)
	if err == nil {
		t.Fatal("expected an error for a missing player")
	}
	if errors.Is(err, ErrCancelled) {
		t.Errorf("start failure should not be reported as cancellation: %v", err)
	}
}

func TestPlayCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := config.DefaultConfig().Playback
	cfg.Player = fakePlayer(t, "exec sleep 30")

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	start := time.Now()
	err := NewTrigger(cfg, nil).Play(ctx, algorithm.Selection)
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if time.Since(start) > 10*time.Second {
		t.Error("cancellation took too long")
	}
}
