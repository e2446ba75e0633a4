// This file is part of twitchnotifier.
//
// twitchnotifier is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// twitchnotifier is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with twitchnotifier.  If not, see <https://www.gnu.org/licenses/>.

// Package track remembers which channels are online and tells the user when
// that changes.
package track

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/bobbytrapz/twitchnotifier/logsink"
	"github.com/bobbytrapz/twitchnotifier/message"
	"github.com/bobbytrapz/twitchnotifier/notify"
	"github.com/bobbytrapz/twitchnotifier/stream"
)

// replaced in tests
var now = time.Now

// Transition of one channel between online and offline
type Transition struct {
	Name   stream.Name `json:"name"`
	Online bool        `json:"online"`
	At     time.Time   `json:"at"`
	Title  string      `json:"title"`
	Body   string      `json:"body"`
	Icon   string      `json:"icon,omitempty"`
}

// Observer is told about every transition after it was handled
type Observer func(Transition)

// Tracker keeps the last confirmed status of every channel
type Tracker struct {
	// diffing keeps one Diff at a time so state changes stay in order
	diffing sync.Mutex

	mu    sync.Mutex
	state map[stream.Name]bool
	since map[stream.Name]time.Time
	last  stream.Snapshot

	msgs        message.Set
	showPicture bool

	notifier  notify.Notifier
	sink      logsink.Sink
	observers []Observer
	stderr    io.Writer
}

// New tracker
// notifier and sink may be nil
func New(notifier notify.Notifier, sink logsink.Sink) *Tracker {
	return &Tracker{
		state:    make(map[stream.Name]bool),
		since:    make(map[stream.Name]time.Time),
		msgs:     message.Defaults(),
		notifier: notifier,
		sink:     sink,
		stderr:   os.Stderr,
	}
}

// SetMessages used for new transitions
func (t *Tracker) SetMessages(msgs message.Set, showPicture bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.msgs = msgs
	t.showPicture = showPicture
}

// Observe transitions
func (t *Tracker) Observe(fn Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.observers = append(t.observers, fn)
}

// State gives a copy of the last confirmed status of each channel
func (t *Tracker) State() map[stream.Name]bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	cp := make(map[stream.Name]bool, len(t.state))
	for k, v := range t.state {
		cp[k] = v
	}

	return cp
}

// Diff snap against what we knew and notify for every change
// unknown channels are skipped and keep their old state
// the first time we see a channel we only remember it
// mu is never held while notifying so Display does not wait on slow notifiers
func (t *Tracker) Diff(ctx context.Context, snap stream.Snapshot) []Transition {
	t.diffing.Lock()
	defer t.diffing.Unlock()

	t.mu.Lock()
	msgs, showPicture := t.msgs, t.showPicture
	t.mu.Unlock()

	var changed []Transition
	for _, name := range snap.Sorted() {
		if err := ctx.Err(); err != nil {
			log.Println("track.Diff:", err)
			break
		}

		status := snap[name]
		online, ok := status.Confirmed()
		if !ok {
			log.Println("track.Diff:", name, "is unknown")
			continue
		}

		t.mu.Lock()
		was, seen := t.state[name]
		if !seen {
			t.state[name] = online
			if online {
				t.since[name] = now()
			}
		}
		t.mu.Unlock()

		if !seen || was == online {
			continue
		}

		// once started a transition is finished even if we are shutting down
		tr := t.notify(context.WithoutCancel(ctx), msgs, showPicture, name, online, status.Metadata())

		t.mu.Lock()
		t.state[name] = online
		if online {
			t.since[name] = tr.At
		} else {
			delete(t.since, name)
		}
		t.mu.Unlock()

		changed = append(changed, tr)
	}

	t.mu.Lock()
	t.last = make(stream.Snapshot, len(snap))
	for k, v := range snap {
		t.last[k] = v
	}
	observers := append([]Observer(nil), t.observers...)
	t.mu.Unlock()

	for _, tr := range changed {
		for _, fn := range observers {
			fn(tr)
		}
	}

	return changed
}

func (t *Tracker) notify(ctx context.Context, msgs message.Set, showPicture bool, name stream.Name, online bool, meta *stream.Metadata) Transition {
	tr := Transition{
		Name:   name,
		Online: online,
		At:     now(),
		Title:  message.Render(meta, name, msgs.Title.Pick(online)),
		Body:   message.Render(meta, name, msgs.Content.Pick(online)),
	}
	log.Println("track.notify:", name, "online:", online)

	if t.sink != nil {
		line := message.Render(meta, name, msgs.Log.Pick(online))
		if err := t.sink.Write(ctx, logsink.Entry{At: tr.At, Name: name, Online: online, Line: line}); err != nil {
			fmt.Fprintln(t.stderr, "Couldn't write to log:", err)
		}
	}

	if showPicture {
		tr.Icon = meta.Icon()
	}

	if t.notifier != nil {
		if err := t.notifier.Display(ctx, tr.Title, tr.Body, tr.Icon); err != nil {
			fmt.Fprintf(t.stderr, "Couldn't display notification: %s\nTitle: %s\nMessage: %s\n", err, tr.Title, tr.Body)
		}
	}

	return tr
}
