//go:build !darwin

package clipboard

import "time"

func NewSystemWatcher(_ time.Duration) (Watcher, error) {
	return nil, ErrUnsupported
}
