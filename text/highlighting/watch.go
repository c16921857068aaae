// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watcher watches a syntax file and reopens it whenever it changes.
// The reloaded syntax is delivered on the Changes channel; it is up to
// the receiver to build a new [Highlighter] and apply it to its
// documents from its own goroutine.
type Watcher struct {

	// Changes receives each successfully reloaded syntax.
	Changes chan *Syntax

	// Errors receives errors from reloading or watching.
	Errors chan error

	filename string
	watcher  *fsnotify.Watcher
	done     chan struct{}
}

// WatchSyntax starts watching the given syntax file. The directory of
// the file is watched, so that editors that save by renaming a new file
// over the old one are handled. Call [Watcher.Close] when done.
func WatchSyntax(filename string) (*Watcher, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	fn, err = filepath.Abs(fn)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(fn)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		Changes:  make(chan *Syntax, 1),
		Errors:   make(chan error, 1),
		filename: fn,
		watcher:  fw,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filename {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			sy, err := OpenSyntax(w.filename)
			if err != nil {
				w.sendError(err)
				continue
			}
			slog.Debug("syntax file reloaded", "file", w.filename)
			select {
			case <-w.Changes: // drop a stale reload nobody has read yet
			default:
			}
			w.Changes <- sy
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.Errors <- err:
	default:
		slog.Warn("syntax watcher error dropped", "file", w.filename, "err", err)
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
