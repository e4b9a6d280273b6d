package importer

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/peterbaudains/vizue/editor/containers"
	"github.com/peterbaudains/vizue/editor/core"
)

const pendingQueueSize = 256

// Watcher keeps an Importer running against a live directory: whenever a
// mesh file is created or written under the source directory, the import
// scan is re-run. The scan's existence check keeps re-imports idempotent.
type Watcher struct {
	importer *Importer
	fsnotify *fsnotify.Watcher
	pending  *containers.RingQueue[string]
	// settle is how long to wait after the last event before rescanning,
	// so half-written files are not picked up mid-copy.
	settle time.Duration
}

func NewWatcher(importer *Importer) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		importer: importer,
		fsnotify: fsWatch,
		pending:  containers.NewRingQueue[string](pendingQueueSize),
		settle:   500 * time.Millisecond,
	}, nil
}

// Watch runs the initial import, then blocks re-running it on filesystem
// events until the context is cancelled.
func (w *Watcher) Watch(ctx context.Context) error {
	if err := w.fsnotify.Add(w.importer.config.SourceDir); err != nil {
		return err
	}
	defer w.fsnotify.Close()

	if err := w.importer.Run(); err != nil {
		return err
	}

	var settle *time.Timer
	var settleCh <-chan time.Time

	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return nil
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 || !IsMeshFile(e.Name) {
				continue
			}
			if err := w.pending.Enqueue(e.Name); err != nil {
				core.LogWarn("pending import queue full, dropping event for %s", e.Name)
			}
			if settle == nil {
				settle = time.NewTimer(w.settle)
			} else {
				settle.Reset(w.settle)
			}
			settleCh = settle.C

		case <-settleCh:
			for !w.pending.IsEmpty() {
				name, _ := w.pending.Dequeue()
				core.LogDebug("mesh file changed: %s", name)
			}
			if err := w.importer.Run(); err != nil {
				return err
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return nil
			}
			core.LogError(err.Error())

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
