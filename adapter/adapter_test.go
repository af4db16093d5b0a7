package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/gopatterns/patterns/event"
)

// TestInterfaceContracts verifies all players satisfy their interfaces.
func TestInterfaceContracts(t *testing.T) {
	var _ Player = MP3Player{}
	var _ Player = &MediaAdapter{}
	var _ Player = NewAudioPlayer(nil)
	var _ AdvancedPlayer = VLCPlayer{}
	var _ AdvancedPlayer = MP4Player{}
}

func TestMP3Player(t *testing.T) {
	ctx := context.Background()
	p := MP3Player{}

	if err := p.Play(ctx, "mp3", "track.mp3"); err != nil {
		t.Errorf("Play(mp3) error = %v, want nil", err)
	}

	err := p.Play(ctx, "vlc", "movie.vlc")
	if !errors.Is(err, ErrInvalidMedia) {
		t.Errorf("Play(vlc) error = %v, want ErrInvalidMedia", err)
	}
}

func TestNewMediaAdapter(t *testing.T) {
	tests := []struct {
		mediaType string
		wantErr   bool
	}{
		{"vlc", false},
		{"mp4", false},
		{"VLC", false}, // case-insensitive
		{"mp3", true},  // native format, no legacy player
		{"avi", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.mediaType, func(t *testing.T) {
			a, err := NewMediaAdapter(tt.mediaType)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMedia) {
					t.Errorf("error = %v, want ErrInvalidMedia", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if a == nil {
				t.Fatal("adapter is nil")
			}
		})
	}
}

func TestMediaAdapter_Play(t *testing.T) {
	ctx := context.Background()

	t.Run("vlc adapter plays vlc", func(t *testing.T) {
		a, _ := NewMediaAdapter("vlc")
		if err := a.Play(ctx, "vlc", "movie.vlc"); err != nil {
			t.Errorf("Play error = %v, want nil", err)
		}
	})

	t.Run("mp4 adapter plays mp4", func(t *testing.T) {
		a, _ := NewMediaAdapter("mp4")
		if err := a.Play(ctx, "mp4", "clip.mp4"); err != nil {
			t.Errorf("Play error = %v, want nil", err)
		}
	})

	t.Run("mismatched format fails", func(t *testing.T) {
		// A vlc adapter asked for mp4 hits the legacy empty-string path.
		a, _ := NewMediaAdapter("vlc")
		err := a.Play(ctx, "mp4", "clip.mp4")
		if !errors.Is(err, ErrInvalidMedia) {
			t.Errorf("error = %v, want ErrInvalidMedia", err)
		}
	})
}

func TestAudioPlayer_Play(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		mediaType string
		file      string
		wantErr   bool
	}{
		{"native mp3", "mp3", "song.mp3", false},
		{"legacy vlc via adapter", "vlc", "movie.vlc", false},
		{"legacy mp4 via adapter", "mp4", "clip.mp4", false},
		{"unsupported avi", "avi", "video.avi", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := event.NewBufferedSink()
			p := NewAudioPlayer(sink)

			err := p.Play(ctx, tt.mediaType, tt.file)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMedia) {
					t.Fatalf("error = %v, want ErrInvalidMedia", err)
				}
				failures := sink.HistoryWithFilter("mediaplayer", event.HistoryFilter{Msg: "playback failed"})
				if len(failures) != 1 {
					t.Errorf("failure events = %d, want 1", len(failures))
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			history := sink.History("mediaplayer")
			if len(history) != 1 {
				t.Fatalf("events = %d, want 1", len(history))
			}
			if history[0].Meta["file"] != tt.file {
				t.Errorf("event file = %v, want %q", history[0].Meta["file"], tt.file)
			}
		})
	}
}

func TestAudioPlayer_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewAudioPlayer(nil)
	if err := p.Play(ctx, "mp3", "song.mp3"); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestAudioPlayer_StepsIncrement(t *testing.T) {
	ctx := context.Background()
	sink := event.NewBufferedSink()
	p := NewAudioPlayer(sink)

	_ = p.Play(ctx, "mp3", "a.mp3")
	_ = p.Play(ctx, "vlc", "b.vlc")
	_ = p.Play(ctx, "mp4", "c.mp4")

	history := sink.History("mediaplayer")
	if len(history) != 3 {
		t.Fatalf("events = %d, want 3", len(history))
	}
	for i, e := range history {
		if e.Step != i+1 {
			t.Errorf("event %d step = %d, want %d", i, e.Step, i+1)
		}
	}
}
