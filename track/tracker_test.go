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

package track

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bobbytrapz/twitchnotifier/logsink"
	"github.com/bobbytrapz/twitchnotifier/message"
	"github.com/bobbytrapz/twitchnotifier/stream"
)

type shown struct {
	title, body, icon string
}

type fakeNotifier struct {
	sync.Mutex
	shown []shown
	fail  map[string]bool
}

func (f *fakeNotifier) Display(ctx context.Context, title, body, iconURL string) error {
	f.Lock()
	defer f.Unlock()

	f.shown = append(f.shown, shown{title, body, iconURL})
	if f.fail[title] {
		return errors.New("no display")
	}
	return nil
}

func (f *fakeNotifier) count() int {
	f.Lock()
	defer f.Unlock()
	return len(f.shown)
}

type fakeSink struct {
	lines []logsink.Entry
}

func (f *fakeSink) Write(ctx context.Context, e logsink.Entry) error {
	f.lines = append(f.lines, e)
	return nil
}

func (f *fakeSink) Close() error { return nil }

func newTestTracker() (*Tracker, *fakeNotifier, *strings.Builder) {
	n := &fakeNotifier{}
	tr := New(n, nil)
	var stderr strings.Builder
	tr.stderr = &stderr
	return tr, n, &stderr
}

func snap(name stream.Name, s stream.Status) stream.Snapshot {
	return stream.Snapshot{name: s}
}

func TestFirstSightingDoesNotNotify(t *testing.T) {
	tr, n, _ := newTestTracker()

	tr.Diff(context.Background(), snap("abc", stream.Offline()))

	if n.count() != 0 {
		t.Error("want no notification got", n.count())
	}
	if on, ok := tr.State()["abc"]; !ok || on {
		t.Error("want abc offline in state")
	}
}

func TestOfflineToOnline(t *testing.T) {
	tr, n, _ := newTestTracker()
	ctx := context.Background()

	tr.Diff(ctx, snap("abc", stream.Offline()))
	changed := tr.Diff(ctx, snap("abc", stream.Online(nil)))

	if n.count() != 1 || len(changed) != 1 || !changed[0].Online {
		t.Fatal("want one online notification got", n.shown)
	}
	if n.shown[0].title != "abc" || n.shown[0].body != "is online" {
		t.Error("got", n.shown[0])
	}
	if !tr.State()["abc"] {
		t.Error("want abc online in state")
	}
}

func TestUnknownDoesNotFlap(t *testing.T) {
	tr, n, _ := newTestTracker()
	ctx := context.Background()

	tr.Diff(ctx, snap("abc", stream.Online(nil)))
	tr.Diff(ctx, snap("abc", stream.Unknown()))
	tr.Diff(ctx, snap("abc", stream.Online(nil)))

	if n.count() != 0 {
		t.Error("want no notification got", n.shown)
	}
	if !tr.State()["abc"] {
		t.Error("unknown must not change state")
	}
}

func TestUnknownThenOffline(t *testing.T) {
	tr, n, _ := newTestTracker()
	ctx := context.Background()

	tr.Diff(ctx, snap("abc", stream.Online(nil)))
	tr.Diff(ctx, snap("abc", stream.Unknown()))
	tr.Diff(ctx, snap("abc", stream.Offline()))

	if n.count() != 1 {
		t.Fatal("want one notification got", n.shown)
	}
	if n.shown[0].body != "is offline" {
		t.Error("want offline notification got", n.shown[0])
	}
}

func TestOfflineStaysOffline(t *testing.T) {
	tr, n, _ := newTestTracker()
	ctx := context.Background()

	tr.Diff(ctx, snap("abc", stream.Offline()))
	tr.Diff(ctx, snap("abc", stream.Offline()))

	if n.count() != 0 {
		t.Error("want no notification got", n.shown)
	}
}

func TestUnknownFirstIsNotRemembered(t *testing.T) {
	tr, n, _ := newTestTracker()
	ctx := context.Background()

	tr.Diff(ctx, snap("abc", stream.Unknown()))
	if _, ok := tr.State()["abc"]; ok {
		t.Error("unknown must never be stored")
	}

	// so this is still a first sighting
	tr.Diff(ctx, snap("abc", stream.Online(nil)))
	if n.count() != 0 {
		t.Error("want no notification got", n.shown)
	}
}

func TestDiffIsIdempotent(t *testing.T) {
	tr, n, _ := newTestTracker()
	ctx := context.Background()

	tr.Diff(ctx, stream.Snapshot{"a": stream.Offline(), "b": stream.Online(nil)})
	next := stream.Snapshot{"a": stream.Online(nil), "b": stream.Offline()}
	tr.Diff(ctx, next)
	if n.count() != 2 {
		t.Fatal("want", 2, "got", n.count())
	}

	if changed := tr.Diff(ctx, next); len(changed) != 0 {
		t.Error("want nothing got", changed)
	}
	if n.count() != 2 {
		t.Error("want", 2, "got", n.count())
	}
}

func TestNotifierFailureKeepsGoing(t *testing.T) {
	tr, n, stderr := newTestTracker()
	n.fail = map[string]bool{"a": true}
	ctx := context.Background()

	tr.Diff(ctx, stream.Snapshot{"a": stream.Offline(), "b": stream.Offline()})
	changed := tr.Diff(ctx, stream.Snapshot{"a": stream.Online(nil), "b": stream.Online(nil)})

	if len(changed) != 2 || n.count() != 2 {
		t.Error("want both channels handled got", changed)
	}
	if !tr.State()["a"] {
		t.Error("a failed notification still changes state")
	}
	if !strings.Contains(stderr.String(), "Title: a") {
		t.Error("failure was not printed", stderr.String())
	}
}

func TestNotifyRendersMetadata(t *testing.T) {
	tr, n, _ := newTestTracker()
	sink := &fakeSink{}
	tr.sink = sink

	msgs := message.Defaults()
	msgs.Content = message.Pair{On: "is playing $3", Off: "stopped $3"}
	msgs.Log = message.Pair{On: "$1 up $3", Off: "$1 down $3"}
	tr.SetMessages(msgs, true)

	game := "chess"
	logo := "https://example.com/abc.png"
	meta := &stream.Metadata{Game: &game, Logo: &logo}

	ctx := context.Background()
	tr.Diff(ctx, snap("abc", stream.Offline()))
	tr.Diff(ctx, snap("abc", stream.Online(meta)))
	tr.Diff(ctx, snap("abc", stream.Offline()))

	if n.count() != 2 {
		t.Fatal("want", 2, "got", n.count())
	}
	if n.shown[0].body != "is playing chess" || n.shown[0].icon != logo {
		t.Error("got", n.shown[0])
	}
	// no metadata when offline so $3 stays
	if n.shown[1].body != "stopped $3" || n.shown[1].icon != "" {
		t.Error("got", n.shown[1])
	}

	if len(sink.lines) != 2 {
		t.Fatal("want", 2, "log lines got", len(sink.lines))
	}
	if sink.lines[0].Line != "abc up chess" || sink.lines[1].Line != "abc down $3" {
		t.Error("got", sink.lines)
	}
}

func TestObservers(t *testing.T) {
	tr, _, _ := newTestTracker()
	var got []Transition
	tr.Observe(func(x Transition) {
		got = append(got, x)
	})

	ctx := context.Background()
	tr.Diff(ctx, snap("abc", stream.Offline()))
	tr.Diff(ctx, snap("abc", stream.Online(nil)))

	if len(got) != 1 || got[0].Name != "abc" || !got[0].Online {
		t.Error("got", got)
	}
}

func TestDiffStopsWhenCanceled(t *testing.T) {
	tr, n, _ := newTestTracker()
	ctx, cancel := context.WithCancel(context.Background())

	tr.Diff(ctx, snap("abc", stream.Offline()))
	cancel()
	tr.Diff(ctx, snap("abc", stream.Online(nil)))

	if n.count() != 0 {
		t.Error("want nothing after cancel got", n.shown)
	}
	if tr.State()["abc"] {
		t.Error("state must not change after cancel")
	}
}

func TestDisplay(t *testing.T) {
	tr, _, _ := newTestTracker()
	defer func() { now = time.Now }()
	now = func() time.Time { return time.Now().Add(-time.Hour) }

	game := "chess"
	viewers := int64(7)
	tr.Diff(context.Background(), stream.Snapshot{
		"on":  stream.Online(&stream.Metadata{Game: &game, Viewers: &viewers}),
		"off": stream.Offline(),
		"eh":  stream.Unknown(),
	})

	d := tr.Display()
	if len(d.Live) != 1 || len(d.Offline) != 1 || len(d.Unknown) != 1 {
		t.Fatal("got", d)
	}
	if d.Live[0].Status != "Now (1h0m)" || d.Live[0].Game != "chess (7)" {
		t.Error("got", d.Live[0])
	}

	var out strings.Builder
	if err := d.Output(&out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "chess (7)") || !strings.Contains(out.String(), "Offline") {
		t.Error("got", out.String())
	}
}

func TestPrint(t *testing.T) {
	var out strings.Builder
	tmpl := message.Pair{On: "+$1", Off: "-$1"}
	err := Print(&out, stream.Snapshot{
		"b": stream.Offline(),
		"a": stream.Offline(),
		"c": stream.Online(nil),
		"d": stream.Unknown(),
	}, tmpl)
	if err != nil {
		t.Fatal(err)
	}

	want := "+c\n-a\n-b\n"
	if out.String() != want {
		t.Error("want", want, "got", out.String())
	}
}

type blockingNotifier struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingNotifier) Display(ctx context.Context, title, body, iconURL string) error {
	b.entered <- struct{}{}
	<-b.release
	return nil
}

func TestDisplayWhileNotifying(t *testing.T) {
	n := &blockingNotifier{entered: make(chan struct{}), release: make(chan struct{})}
	tr := New(n, nil)
	tr.Diff(context.Background(), snap("a", stream.Offline()))

	done := make(chan []Transition)
	go func() {
		done <- tr.Diff(context.Background(), snap("a", stream.Online(nil)))
	}()
	<-n.entered

	shown := make(chan DisplayTable, 1)
	go func() {
		shown <- tr.Display()
	}()

	select {
	case d := <-shown:
		// still offline until the notification is done
		if len(d.Offline) != 1 {
			t.Error("want", 1, "offline got", d)
		}
	case <-time.After(time.Second):
		t.Error("Display waited on the notifier")
	}

	close(n.release)
	if got := <-done; len(got) != 1 {
		t.Error("want", 1, "transitions got", len(got))
	}
	if !tr.State()["a"] {
		t.Error("a should be online")
	}
}
