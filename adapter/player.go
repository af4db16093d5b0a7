// Package adapter demonstrates the Adapter pattern with a media player.
//
// The player the rest of the code wants to talk to exposes a single Play
// method. A legacy library exists that already knows how to decode vlc and
// mp4 files, but its interface looks nothing like Play. MediaAdapter wraps
// the legacy library so it satisfies the modern interface, and AudioPlayer
// routes between native playback and the adapter without its callers ever
// knowing the legacy code exists.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMedia is returned when a player is asked to play a media type
// it does not support.
var ErrInvalidMedia = errors.New("invalid media type")

// Player is the interface the application codes against.
//
// Implementations should respect context cancellation and report
// unsupported formats with ErrInvalidMedia.
type Player interface {
	// Play plays the given file as the given media type.
	//
	// Parameters:
	//   - ctx: context for cancellation
	//   - mediaType: format tag such as "mp3", "vlc", "mp4"
	//   - file: file name to play
	//
	// Returns ErrInvalidMedia (possibly wrapped) when the format is not
	// supported by this player.
	Play(ctx context.Context, mediaType, file string) error
}

// MP3Player is the built-in player. It speaks the modern Player interface
// natively but only understands mp3.
type MP3Player struct{}

// Play plays an mp3 file. Any other media type is rejected.
func (MP3Player) Play(ctx context.Context, mediaType, file string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if !strings.EqualFold(mediaType, "mp3") {
		return fmt.Errorf("mp3 player cannot play %q: %w", mediaType, ErrInvalidMedia)
	}
	return nil
}
