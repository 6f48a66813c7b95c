// Completion: 100% - Platform-specific module complete
//go:build windows
// +build windows

package main

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileWatcher drives watch mode: it reports source file modifications so
// the CLI can recompile. Windows polls modification times.
type FileWatcher struct {
	watchMap map[string]time.Time
	mu       sync.Mutex
	onChange func(string)
	stopChan chan struct{}
}

func NewFileWatcher(onChange func(string)) (*FileWatcher, error) {
	return &FileWatcher{
		watchMap: make(map[string]time.Time),
		onChange: onChange,
		stopChan: make(chan struct{}),
	}, nil
}

func (fw *FileWatcher) AddFile(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fw.mu.Lock()
	fw.watchMap[absPath] = time.Time{}
	fw.mu.Unlock()
	return nil
}

func (fw *FileWatcher) Watch() {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			fw.checkFiles()
		case <-fw.stopChan:
			return
		}
	}
}

func (fw *FileWatcher) checkFiles() {
	fw.mu.Lock()
	paths := make([]string, 0, len(fw.watchMap))
	for path := range fw.watchMap {
		paths = append(paths, path)
	}
	fw.mu.Unlock()

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		fw.mu.Lock()
		last := fw.watchMap[path]
		changed := !last.IsZero() && info.ModTime().After(last)
		fw.watchMap[path] = info.ModTime()
		fw.mu.Unlock()

		if changed {
			fw.onChange(path)
		}
	}
}

func (fw *FileWatcher) Close() error {
	close(fw.stopChan)
	return nil
}
