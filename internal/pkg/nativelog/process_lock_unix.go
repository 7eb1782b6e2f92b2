//go:build unix

package nativelog

import (
	"os"

	"golang.org/x/sys/unix"
)

func withProcessLogLock(f *os.File, fn func() error) error {
	fd := int(f.Fd())
	if err := unix.Flock(fd, unix.LOCK_EX); err != nil {
		return err
	}
	defer func() {
		_ = unix.Flock(fd, unix.LOCK_UN)
	}()
	return fn()
}
