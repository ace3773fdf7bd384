//go:build !((darwin && cgo) || windows)

package certstore

import "context"

// NativeLister is a no-op where no native store backend is available.
type NativeLister struct{}

func (NativeLister) List(ctx context.Context) ([]string, error) {
	return nil, nil
}
