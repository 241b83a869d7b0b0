package storage

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/templatehub/internal/metrics"
)

const defaultSaveTimeout = 10 * time.Second

// Writer is the single goroutine allowed to call Engine.Save. Notify marks the
// state dirty; bursts of notifications collapse into one write of the latest
// snapshot. Save failures are logged and counted, never returned to the
// mutation that triggered them.
type Writer struct {
	engine  Engine
	source  func() *Snapshot
	logger  *slog.Logger
	timeout time.Duration

	dirty chan struct{}
	stop  chan struct{}
	done  chan struct{}

	mu      sync.Mutex
	holds   int
	pending bool
	closed  bool
}

func NewWriter(engine Engine, source func() *Snapshot, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}

	w := &Writer{
		engine:  engine,
		source:  source,
		logger:  logger,
		timeout: defaultSaveTimeout,
		dirty:   make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	go w.run()

	return w
}

// Notify schedules a write. It never blocks.
func (w *Writer) Notify() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	if w.holds > 0 {
		w.pending = true
		return
	}

	w.signal()
}

// Hold defers writes until the matching Release. Used while seeding so the
// bootstrap produces a single write.
func (w *Writer) Hold() {
	w.mu.Lock()
	w.holds++
	w.mu.Unlock()
}

func (w *Writer) Release() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.holds == 0 {
		return
	}
	w.holds--

	if w.holds == 0 && w.pending && !w.closed {
		w.pending = false
		w.signal()
	}
}

// must hold w.mu
func (w *Writer) signal() {
	select {
	case w.dirty <- struct{}{}:
	default:
	}
}

// Close stops the writer after flushing any pending write, including writes
// still deferred by Hold.
func (w *Writer) Close(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.pending {
		w.pending = false
		w.signal()
	}
	w.mu.Unlock()

	close(w.stop)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Writer) run() {
	defer close(w.done)

	for {
		select {
		case <-w.dirty:
			w.write()
		case <-w.stop:
			select {
			case <-w.dirty:
				w.write()
			default:
			}
			return
		}
	}
}

func (w *Writer) write() {
	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	snap := w.source()
	if err := w.engine.Save(ctx, snap); err != nil {
		metrics.RecordSnapshotWrite(metrics.ResultError, time.Since(start))
		w.logger.Error("Failed to persist snapshot", slog.Any("error", err))
		return
	}

	metrics.RecordSnapshotWrite(metrics.ResultSuccess, time.Since(start))
	w.logger.Debug("Snapshot persisted",
		slog.Int("templates", len(snap.Templates)),
		slog.Int("orders", len(snap.Orders)),
		slog.Duration("duration", time.Since(start)),
	)
}
