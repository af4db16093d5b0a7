package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/gopatterns/patterns/event"
)

// MediaAdapter implements Player by delegating to a legacy AdvancedPlayer.
//
// The adapter owns all translation between the two worlds:
//   - Selects the right legacy implementation for the requested format
//   - Maps the modern (ctx, mediaType, file) call onto the legacy
//     one-method-per-format API
//   - Converts the legacy "empty string means unsupported" convention
//     into a proper error
//
// Example usage:
//
//	a, err := adapter.NewMediaAdapter("vlc")
//	if err != nil {
//	    return err
//	}
//	err = a.Play(ctx, "vlc", "movie.vlc")
type MediaAdapter struct {
	advanced AdvancedPlayer
}

// NewMediaAdapter creates an adapter for the given media type.
//
// Supported types are "vlc" and "mp4" (case-insensitive). Anything else
// returns ErrInvalidMedia, because no legacy implementation exists for it.
func NewMediaAdapter(mediaType string) (*MediaAdapter, error) {
	switch strings.ToLower(mediaType) {
	case "vlc":
		return &MediaAdapter{advanced: VLCPlayer{}}, nil
	case "mp4":
		return &MediaAdapter{advanced: MP4Player{}}, nil
	default:
		return nil, fmt.Errorf("no legacy player for %q: %w", mediaType, ErrInvalidMedia)
	}
}

// Play implements Player by routing to the wrapped legacy player.
func (a *MediaAdapter) Play(ctx context.Context, mediaType, file string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var desc string
	switch strings.ToLower(mediaType) {
	case "vlc":
		desc = a.advanced.PlayVLC(file)
	case "mp4":
		desc = a.advanced.PlayMP4(file)
	}

	// The legacy API signals "not my format" with an empty description.
	if desc == "" {
		return fmt.Errorf("adapter cannot play %q: %w", mediaType, ErrInvalidMedia)
	}
	return nil
}

// AudioPlayer is the application-facing player.
//
// It plays mp3 natively and transparently reaches for a MediaAdapter when
// asked for a legacy format. Callers only ever see the Player interface;
// the adapter is an implementation detail.
//
// Each playback attempt is reported through the configured event sink.
type AudioPlayer struct {
	native MP3Player
	sink   event.Sink
	step   int
}

// NewAudioPlayer creates an AudioPlayer reporting to the given sink.
// A nil sink disables reporting.
func NewAudioPlayer(sink event.Sink) *AudioPlayer {
	if sink == nil {
		sink = event.NewNullSink()
	}
	return &AudioPlayer{sink: sink}
}

// Play plays a file, choosing native playback or the legacy adapter based
// on the media type.
//
// Returns:
//   - nil on successful playback
//   - ErrInvalidMedia (wrapped) for formats nobody supports
//   - ctx.Err() when the context is already done
func (p *AudioPlayer) Play(ctx context.Context, mediaType, file string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	p.step++
	mt := strings.ToLower(mediaType)

	var err error
	switch mt {
	case "mp3":
		err = p.native.Play(ctx, mt, file)
	case "vlc", "mp4":
		var a *MediaAdapter
		a, err = NewMediaAdapter(mt)
		if err == nil {
			err = a.Play(ctx, mt, file)
		}
	default:
		err = fmt.Errorf("audio player cannot play %q: %w", mediaType, ErrInvalidMedia)
	}

	if err != nil {
		p.sink.Emit(event.Event{
			Demo: "mediaplayer",
			Step: p.step,
			Op:   "play",
			Msg:  "playback failed",
			Meta: map[string]interface{}{
				"media_type": mt,
				"file":       file,
				"error":      err.Error(),
			},
		})
		return err
	}

	p.sink.Emit(event.Event{
		Demo: "mediaplayer",
		Step: p.step,
		Op:   "play",
		Msg:  "playing " + mt + " file " + file,
		Meta: map[string]interface{}{
			"media_type": mt,
			"file":       file,
		},
	})
	return nil
}
