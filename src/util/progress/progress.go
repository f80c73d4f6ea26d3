package progress

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Writer wraps an io.Writer and periodically reports how many bytes have
// passed through it. The dump pipeline uses it to surface progress the
// same way the sqlite page-copy callback once did.
type Writer struct {
	w           io.Writer
	out         io.Writer
	label       string
	written     int64
	mu          sync.Mutex
	lastPrinted time.Time
}

// NewWriter creates a progress Writer reporting to out. A nil out disables
// reporting entirely.
func NewWriter(w io.Writer, label string, out io.Writer) *Writer {
	return &Writer{w: w, out: out, label: label}
}

func (p *Writer) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	if n > 0 {
		p.mu.Lock()
		p.written += int64(n)
		now := time.Now()
		if now.Sub(p.lastPrinted) >= 200*time.Millisecond {
			p.print()
			p.lastPrinted = now
		}
		p.mu.Unlock()
	}
	return n, err
}

// Finish emits a final report and terminates the progress line.
func (p *Writer) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.out == nil {
		return
	}
	p.print()
	fmt.Fprint(p.out, "\n")
}

// Written returns the byte count so far.
func (p *Writer) Written() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.written
}

func (p *Writer) print() {
	if p.out == nil {
		return
	}
	fmt.Fprintf(p.out, "\r[%s] %d bytes", p.label, p.written)
}
