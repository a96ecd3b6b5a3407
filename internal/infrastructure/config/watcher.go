package config

import (
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceWindow = 100 * time.Millisecond

// Watcher reports tuning files that changed on disk.
// Events carries the changed path; the consumer drains it on its own
// goroutine and reloads between ticks.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches the given directories for tuning file changes
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher; Events and Errors are closed once run exits
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	var (
		pending = newDebouncer(debounceWindow)
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	arm := func() {
		next, ok := pending.next()
		if !ok {
			fire = nil
			return
		}
		if timer == nil {
			timer = time.NewTimer(time.Until(next))
		} else {
			timer.Reset(time.Until(next))
		}
		fire = timer.C
	}

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !IsTuningFile(event.Name) {
				continue
			}
			pending.touch(filepath.Clean(event.Name), time.Now())
			arm()
		case now := <-fire:
			for _, name := range pending.due(now) {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			arm()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// debouncer coalesces bursts of events per name and releases a name once
// it has been quiet for the whole window, so the last write of a burst wins.
type debouncer struct {
	window   time.Duration
	deadline map[string]time.Time
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{window: window, deadline: make(map[string]time.Time)}
}

// touch records an event and pushes the name's release back
func (d *debouncer) touch(name string, now time.Time) {
	d.deadline[name] = now.Add(d.window)
}

// next returns the earliest pending release
func (d *debouncer) next() (time.Time, bool) {
	var earliest time.Time
	for _, t := range d.deadline {
		if earliest.IsZero() || t.Before(earliest) {
			earliest = t
		}
	}
	return earliest, !earliest.IsZero()
}

// due removes and returns, sorted, every name quiet since its window opened
func (d *debouncer) due(now time.Time) []string {
	var names []string
	for name, t := range d.deadline {
		if !now.Before(t) {
			names = append(names, name)
			delete(d.deadline, name)
		}
	}
	sort.Strings(names)
	return names
}
