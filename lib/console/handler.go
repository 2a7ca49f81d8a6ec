package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/TwiN/go-color"
)

// slog.Handler that renders records as colored console lines, so library
// logging reads like the rest of the CLI output.
//
// Debug records are only printed when verbose output is enabled.
type Handler struct {
	mu     *sync.Mutex
	out    io.Writer
	attrs  []slog.Attr
	groups []string
}

// Create a handler writing to w. A nil w writes to Out.
func NewHandler(w io.Writer) *Handler {
	return &Handler{mu: &sync.Mutex{}, out: w}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	if level < slog.LevelInfo {
		return IsVerbose()
	}
	return true
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)

	// Attrs from WithAttrs already carry their group prefix
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	prefix := h.prefix()
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, prefix, a)
		return true
	})

	line := color.Ize(levelColor(r.Level), b.String()) + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer(), line)
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefix := h.prefix()
	h2 := *h
	h2.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}
		h2.attrs = append(h2.attrs, a)
	}
	return &h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.groups = append(append([]string{}, h.groups...), name)
	return &h2
}

func (h *Handler) prefix() string {
	return strings.Join(h.groups, ".")
}

func (h *Handler) writer() io.Writer {
	if h.out != nil {
		return h.out
	}
	return Out
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value.Resolve().Any())
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return color.Red
	case level >= slog.LevelWarn:
		return color.Yellow
	case level >= slog.LevelInfo:
		return color.Cyan
	default:
		return color.Gray
	}
}
