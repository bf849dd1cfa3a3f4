package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/you-not-fish/typegraph/internal/manifest"
)

// debounce is how long a burst of file events is coalesced before
// re-running. Editors often write a file in several steps.
const debounce = 100 * time.Millisecond

// runWatch runs the query, then re-runs it whenever one of its input
// files changes, until ctx is done. It returns the last exit code.
func runWatch(ctx context.Context, args []string) int {
	files, err := watchedFiles(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "error: -watch needs -m or input files")
		return 1
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer w.Close()

	// Watch directories rather than files so that editors replacing a
	// file by rename are still seen.
	dirs := make(map[string]bool)
	for f := range files {
		dir := filepath.Dir(f)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			fmt.Fprintf(os.Stderr, "error: watch %s: %v\n", dir, err)
			return 1
		}
		dirs[dir] = true
	}

	code := runQuery(ctx, args)
	timer := time.NewTimer(debounce)
	timer.Stop()
	var changed string
	for {
		select {
		case <-ctx.Done():
			return code
		case ev, ok := <-w.Events:
			if !ok {
				return code
			}
			if !relevant(ev, files) {
				continue
			}
			changed = ev.Name
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return code
			}
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		case <-timer.C:
			fmt.Printf("--- %s changed ---\n", changed)
			code = runQuery(ctx, args)
		}
	}
}

// relevant reports whether ev modifies one of the watched files.
func relevant(ev fsnotify.Event, files map[string]bool) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return files[abs]
}

// watchedFiles returns the absolute paths of the manifest and every
// declaration file the query reads.
func watchedFiles(args []string) (map[string]bool, error) {
	paths := args
	if *manifestPath != "" {
		p, err := manifest.Load(*manifestPath)
		if err != nil {
			return nil, err
		}
		paths = append([]string{*manifestPath}, p.Files()...)
	}
	files := make(map[string]bool, len(paths))
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		files[abs] = true
	}
	return files, nil
}
