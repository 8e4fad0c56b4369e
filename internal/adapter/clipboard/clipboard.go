package clipboard

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var ErrUnsupported = errors.New("clipboard access not implemented for this OS yet")

const DefaultInterval = 350 * time.Millisecond

// Watcher streams clipboard text each time it changes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan string, error)
}

// ReadFunc returns the current clipboard text.
type ReadFunc func(ctx context.Context) (string, error)

// PollingWatcher reads the clipboard on a fixed interval and emits text that
// differs from the previous read. Whatever is on the clipboard when watching
// starts is treated as already seen.
type PollingWatcher struct {
	interval time.Duration
	read     ReadFunc
}

func NewPollingWatcher(interval time.Duration, read ReadFunc) *PollingWatcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &PollingWatcher{interval: interval, read: read}
}

// Watch polls until ctx is done, then closes the channel. Read errors are
// skipped; a slow consumer misses intermediate clips, never the latest one.
func (w *PollingWatcher) Watch(ctx context.Context) (<-chan string, error) {
	if w.read == nil {
		return nil, ErrUnsupported
	}

	last, _ := w.read(ctx)
	ch := make(chan string)

	go func() {
		defer close(ch)

		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}

			txt, err := w.read(ctx)
			if err != nil || txt == "" || txt == last {
				continue
			}
			last = txt

			select {
			case ch <- txt:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}
