//go:build !unix && !windows

package nativelog

import "os"

func withProcessLogLock(_ *os.File, fn func() error) error {
	return fn()
}
