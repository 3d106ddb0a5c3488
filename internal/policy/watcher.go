package policy

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch следит за файлом правил и перечитывает его после серии изменений
// Блокирует до отмены ctx. Для статического источника просто ждет ctx.
func (s *Source) Watch(ctx context.Context) error {
	if s.path == "" {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("policy: failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Следим за каталогом: редакторы заменяют файл через rename
	target := filepath.Clean(s.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("policy: failed to watch %s: %w", filepath.Dir(target), err)
	}
	s.logger.Info("Policy: watching %s (debounce=%s)", target, s.debounce)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Policy: watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("policy: watcher events channel closed")
			}
			if filepath.Clean(event.Name) != target || event.Op == fsnotify.Chmod {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(s.debounce, s.reloadLogged)

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("policy: watcher errors channel closed")
			}
			s.logger.Error("Policy: watcher error: %v", err)
		}
	}
}

func (s *Source) reloadLogged() {
	if err := s.Reload(); err != nil {
		s.logger.Warn("Policy: reload failed, keeping previous policy: %v", err)
	}
}
