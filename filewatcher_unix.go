// Completion: 100% - Platform-specific module complete
//go:build linux
// +build linux

package main

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// FileWatcher drives watch mode: it reports source file modifications so
// the CLI can recompile. Linux uses inotify.
type FileWatcher struct {
	fd       int
	watchMap map[int]string
	mu       sync.Mutex
	lastFire map[string]time.Time
	onChange func(string)
}

func NewFileWatcher(onChange func(string)) (*FileWatcher, error) {
	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("inotify_init failed: %v", err)
	}
	return &FileWatcher{
		fd:       fd,
		watchMap: make(map[int]string),
		lastFire: make(map[string]time.Time),
		onChange: onChange,
	}, nil
}

func (fw *FileWatcher) AddFile(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	wd, err := unix.InotifyAddWatch(fw.fd, absPath, unix.IN_MODIFY|unix.IN_CLOSE_WRITE)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %v", absPath, err)
	}

	fw.mu.Lock()
	fw.watchMap[wd] = absPath
	fw.mu.Unlock()
	return nil
}

func (fw *FileWatcher) Watch() {
	buf := make([]byte, unix.SizeofInotifyEvent*10)

	for {
		n, err := unix.Read(fw.fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
				time.Sleep(100 * time.Millisecond)
				continue
			}
			continue
		}

		offset := 0
		for offset < n {
			event := (*unix.InotifyEvent)(unsafe.Pointer(&buf[offset]))
			offset += unix.SizeofInotifyEvent + int(event.Len)

			if event.Mask&(unix.IN_MODIFY|unix.IN_CLOSE_WRITE) != 0 {
				fw.mu.Lock()
				path := fw.watchMap[int(event.Wd)]
				fw.mu.Unlock()

				if path != "" {
					fw.fire(path)
				}
			}
		}
	}
}

// fire invokes onChange, coalescing the event bursts editors produce on save
func (fw *FileWatcher) fire(path string) {
	fw.mu.Lock()
	last := fw.lastFire[path]
	now := time.Now()
	if now.Sub(last) < 500*time.Millisecond {
		fw.mu.Unlock()
		return
	}
	fw.lastFire[path] = now
	fw.mu.Unlock()

	fw.onChange(path)
}

func (fw *FileWatcher) Close() error {
	return unix.Close(fw.fd)
}
