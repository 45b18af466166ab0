package logs

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Ring is a slog.Handler that keeps the last N formatted records in memory.
// It is safe for concurrent use; loaders log from their own goroutines.
type Ring struct {
	buf   *ringBuffer
	attrs []slog.Attr
	group string
}

type ringBuffer struct {
	mu    sync.Mutex
	lines []string
	next  int
	full  bool
}

// NewRing keeps up to size lines. size below 1 is treated as 1.
func NewRing(size int) *Ring {
	if size < 1 {
		size = 1
	}
	return &Ring{buf: &ringBuffer{lines: make([]string, size)}}
}

func (r *Ring) Enabled(_ context.Context, l slog.Level) bool {
	return l >= level.Level()
}

func (r *Ring) Handle(_ context.Context, rec slog.Record) error {
	var b strings.Builder
	b.WriteString(rec.Level.String())
	b.WriteByte(' ')
	b.WriteString(rec.Message)
	for _, a := range r.attrs {
		writeAttr(&b, r.group, a)
	}
	rec.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, r.group, a)
		return true
	})
	r.buf.push(b.String())
	return nil
}

func (r *Ring) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := *r
	out.attrs = append(append([]slog.Attr{}, r.attrs...), attrs...)
	return &out
}

func (r *Ring) WithGroup(name string) slog.Handler {
	if name == "" {
		return r
	}
	out := *r
	if out.group != "" {
		out.group += "." + name
	} else {
		out.group = name
	}
	return &out
}

// Lines returns the kept records, oldest first.
func (r *Ring) Lines() []string {
	return r.buf.snapshot()
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	b.WriteByte(' ')
	if group != "" {
		b.WriteString(group)
		b.WriteByte('.')
	}
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.Resolve().String())
}

func (rb *ringBuffer) push(line string) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.lines[rb.next] = line
	rb.next = (rb.next + 1) % len(rb.lines)
	if rb.next == 0 {
		rb.full = true
	}
}

func (rb *ringBuffer) snapshot() []string {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	if !rb.full {
		return append([]string(nil), rb.lines[:rb.next]...)
	}
	out := make([]string, 0, len(rb.lines))
	out = append(out, rb.lines[rb.next:]...)
	return append(out, rb.lines[:rb.next]...)
}
