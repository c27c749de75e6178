package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nextcore/glint/cmd/glint/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Re-run gen when project inputs change",
		Long: `Watch a project directory and re-run gen whenever go.mod,
glint.yaml, or the entry file change. Generated files are ignored so a
regeneration doesn't retrigger itself. Stop with Ctrl-C.`,
		Usage: "glint watch [directory]",
		Run:   runWatch,
	})
}

// watchDebounce batches rapid editor events into one regeneration.
const watchDebounce = 200 * time.Millisecond

func runWatch(args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	dir = filepath.Clean(dir)

	if _, err := config.Resolve(dir); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	if err := regenerate(dir); err != nil {
		fmt.Fprintf(os.Stderr, "gen failed: %v\n", err)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	fmt.Printf("watching %s (Ctrl-C to stop)\n", dir)

	var pending *time.Timer
	regen := make(chan struct{}, 1)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isWatchInput(dir, event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(watchDebounce, func() {
				select {
				case regen <- struct{}{}:
				default:
				}
			})
		case <-regen:
			if err := regenerate(dir); err != nil {
				fmt.Fprintf(os.Stderr, "gen failed: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		case <-interrupt:
			return nil
		}
	}
}

func regenerate(dir string) error {
	resolved, err := config.Resolve(dir)
	if err != nil {
		return err
	}
	return Generate(dir, resolved)
}

// isWatchInput reports whether a changed path is one of the generator's
// inputs. Generated outputs are excluded so regeneration doesn't loop.
func isWatchInput(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	if strings.HasPrefix(rel, "context") || strings.HasPrefix(rel, "components") {
		return false
	}
	switch filepath.Base(rel) {
	case "go.mod", "glint.yaml", "app.go":
		return true
	}
	return false
}
