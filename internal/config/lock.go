package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	lockFileName     = ".cmdtreerc.lock"
	lockTimeout      = 5 * time.Second
	staleLockTimeout = 30 * time.Second
	lockPollInterval = 50 * time.Millisecond
)

// ErrLockTimeout is returned when the lock cannot be acquired within the
// timeout period.
var ErrLockTimeout = errors.New("config: lock timeout")

// WithLock executes fn while holding a file lock on the config, so two
// processes editing it at once cannot interleave their writes.
func WithLock(fn func() error) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	lockPath := filepath.Join(home, lockFileName)

	release, err := acquire(lockPath)
	if err != nil {
		return err
	}
	defer release()

	return fn()
}

// acquire takes the lock file, polling until lockTimeout, and returns
// the release func. A lock older than staleLockTimeout is treated as
// abandoned by a crashed process and broken.
func acquire(lockPath string) (func(), error) {
	deadline := time.Now().Add(lockTimeout)

	for {
		if f, err := tryLock(lockPath); err == nil {
			return func() {
				_ = f.Close()
				_ = os.Remove(lockPath)
			}, nil
		}

		breakStaleLock(lockPath)

		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}
		time.Sleep(lockPollInterval)
	}
}

// tryLock creates the lock file exclusively, recording our PID for
// anyone inspecting a stuck lock.
func tryLock(lockPath string) (*os.File, error) {
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(f, "%d", os.Getpid())
	return f, nil
}

func breakStaleLock(lockPath string) {
	info, err := os.Stat(lockPath)
	if err != nil || time.Since(info.ModTime()) <= staleLockTimeout {
		return
	}
	_ = os.Remove(lockPath)
}
