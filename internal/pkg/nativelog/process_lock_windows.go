//go:build windows

package nativelog

import (
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sys/windows"
)

// One named mutex per log file; processes logging to the same app.log
// resolve the same name.
var logMutexes sync.Map // lock name -> windows.Handle

func withProcessLogLock(f *os.File, fn func() error) error {
	h, err := logMutex(lockName(f.Name()))
	if err != nil {
		return err
	}

	state, err := windows.WaitForSingleObject(h, windows.INFINITE)
	if err != nil {
		return fmt.Errorf("wait log mutex: %w", err)
	}
	if state != windows.WAIT_OBJECT_0 && state != windows.WAIT_ABANDONED {
		return fmt.Errorf("wait log mutex: unexpected state %d", state)
	}
	defer windows.ReleaseMutex(h)

	return fn()
}

func lockName(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	sum := fnv.New64a()
	_, _ = sum.Write([]byte(strings.ToLower(path)))
	return fmt.Sprintf(`Local\insightguide-log-%016x`, sum.Sum64())
}

func logMutex(name string) (windows.Handle, error) {
	if h, ok := logMutexes.Load(name); ok {
		return h.(windows.Handle), nil
	}

	ptr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, err
	}
	h, err := windows.CreateMutex(nil, false, ptr)
	if err != nil && !errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
		return 0, fmt.Errorf("create log mutex: %w", err)
	}
	if h == 0 {
		return 0, errors.New("invalid log mutex handle")
	}

	if prev, loaded := logMutexes.LoadOrStore(name, h); loaded {
		_ = windows.CloseHandle(h)
		return prev.(windows.Handle), nil
	}
	return h, nil
}
