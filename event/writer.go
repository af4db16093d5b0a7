package event

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriterSink implements Sink by writing structured output to a writer.
//
// Supports two output modes:
//   - Text mode (default): human-readable key=value pairs
//   - JSON mode: machine-readable JSON, one event per line
//
// Example text output:
//
//	[play] demo=mediaplayer step=1 op=play
//
// Example JSON output:
//
//	{"demo":"mediaplayer","step":1,"op":"play","msg":"playing mp3 track.mp3","meta":null}
//
// Usage:
//
//	// Text output to stdout
//	sink := event.NewWriterSink(os.Stdout, false)
//
//	// JSON output to file
//	f, _ := os.Create("events.jsonl")
//	defer f.Close()
//	sink := event.NewWriterSink(f, true)
type WriterSink struct {
	writer   io.Writer
	jsonMode bool
}

// NewWriterSink creates a WriterSink.
//
// Parameters:
//   - writer: where to write output (e.g., os.Stdout, a file). nil defaults
//     to os.Stdout.
//   - jsonMode: if true, emit JSON lines; if false, emit text
func NewWriterSink(writer io.Writer, jsonMode bool) *WriterSink {
	if writer == nil {
		writer = os.Stdout
	}
	return &WriterSink{
		writer:   writer,
		jsonMode: jsonMode,
	}
}

// Emit writes an event to the configured writer.
func (w *WriterSink) Emit(event Event) {
	if w.jsonMode {
		w.emitJSON(event)
	} else {
		w.emitText(event)
	}
}

func (w *WriterSink) emitJSON(event Event) {
	data, err := json.Marshal(struct {
		Demo string                 `json:"demo"`
		Step int                    `json:"step"`
		Op   string                 `json:"op"`
		Msg  string                 `json:"msg"`
		Meta map[string]interface{} `json:"meta"`
	}{
		Demo: event.Demo,
		Step: event.Step,
		Op:   event.Op,
		Msg:  event.Msg,
		Meta: event.Meta,
	})
	if err != nil {
		// Fallback to error message if marshal fails
		fmt.Fprintf(w.writer, "{\"error\":\"failed to marshal event: %v\"}\n", err)
		return
	}

	// JSONL format: one object per line
	fmt.Fprintf(w.writer, "%s\n", data)
}

func (w *WriterSink) emitText(event Event) {
	// Format: [msg] demo=xxx step=N op=yyy [meta=...]
	fmt.Fprintf(w.writer, "[%s] demo=%s step=%d op=%s",
		event.Msg, event.Demo, event.Step, event.Op)

	if len(event.Meta) > 0 {
		metaJSON, err := json.Marshal(event.Meta)
		if err == nil {
			fmt.Fprintf(w.writer, " meta=%s", metaJSON)
		} else {
			fmt.Fprintf(w.writer, " meta=%v", event.Meta)
		}
	}

	fmt.Fprint(w.writer, "\n")
}
