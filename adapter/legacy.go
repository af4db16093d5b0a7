package adapter

// AdvancedPlayer is the legacy library's interface. It predates the modern
// Player contract: no context, no errors, one method per format, and it
// reports what it did by returning a description string (empty when the
// implementation does not handle that format).
//
// This interface is the "adaptee". Application code never imports it
// directly; MediaAdapter is the only caller.
type AdvancedPlayer interface {
	PlayVLC(file string) string
	PlayMP4(file string) string
}

// VLCPlayer is a legacy implementation that only understands vlc files.
type VLCPlayer struct{}

// PlayVLC plays a vlc file and describes the playback.
func (VLCPlayer) PlayVLC(file string) string {
	return "playing vlc file " + file
}

// PlayMP4 is not supported by VLCPlayer.
func (VLCPlayer) PlayMP4(file string) string {
	return ""
}

// MP4Player is a legacy implementation that only understands mp4 files.
type MP4Player struct{}

// PlayVLC is not supported by MP4Player.
func (MP4Player) PlayVLC(file string) string {
	return ""
}

// PlayMP4 plays an mp4 file and describes the playback.
func (MP4Player) PlayMP4(file string) string {
	return "playing mp4 file " + file
}
