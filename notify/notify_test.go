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

package notify

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	c := Console{W: &buf}
	if err := c.Display(context.Background(), "Stream online", "foo is online", ""); err != nil {
		t.Fatal(err)
	}

	want := "Stream online foo is online\n"
	if buf.String() != want {
		t.Error("want", want, "got", buf.String())
	}
}

func TestMultiKeepsGoing(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	m := Multi{
		Func(func(ctx context.Context, title, body, iconURL string) error {
			calls++
			return boom
		}),
		Func(func(ctx context.Context, title, body, iconURL string) error {
			calls++
			return nil
		}),
	}

	err := m.Display(context.Background(), "t", "b", "")
	if !errors.Is(err, boom) {
		t.Error("want", boom, "got", err)
	}
	if calls != 2 {
		t.Error("want", 2, "calls got", calls)
	}

	if err := (Multi{}).Display(context.Background(), "t", "b", ""); err != nil {
		t.Error("want nil got", err)
	}
}

func TestFetchIconCaches(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte("png"))
	}))
	defer srv.Close()

	d := NewDesktop(filepath.Join(t.TempDir(), "icons"))
	url := srv.URL + "/logo.png"

	p, err := d.fetchIcon(context.Background(), url)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(p)
	if err != nil || string(b) != "png" {
		t.Error("bad icon", string(b), err)
	}

	again, err := d.fetchIcon(context.Background(), url)
	if err != nil || again != p {
		t.Error("want", p, "got", again, err)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Error("want", 1, "download got", n)
	}
}

func TestFetchIconBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	d := NewDesktop(t.TempDir())
	if _, err := d.fetchIcon(context.Background(), srv.URL); err == nil {
		t.Error("want error")
	}
}

func TestDesktopWithoutPicture(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("no true command")
	}
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	d := NewDesktop(t.TempDir())
	d.Command = "true"
	if err := d.Display(context.Background(), "t", "b", srv.URL); err != nil {
		t.Error("a missing picture should not fail", err)
	}
}

func TestDesktopMissingCommand(t *testing.T) {
	d := NewDesktop(t.TempDir())
	d.Command = "twitchnotifier-no-such-command"
	if err := d.Display(context.Background(), "t", "b", ""); err == nil {
		t.Error("want error")
	}
}

type fakeSayer struct {
	channel, text string
}

func (f *fakeSayer) Say(channel, text string) {
	f.channel = channel
	f.text = text
}

func TestChat(t *testing.T) {
	c := NewChat("bot", "oauth:x", "#SomeChannel ")
	f := &fakeSayer{}
	c.say = f

	if err := c.Display(context.Background(), "t", "b", ""); !errors.Is(err, errNotConnected) {
		t.Error("want", errNotConnected, "got", err)
	}

	c.connected.Store(true)
	if err := c.Display(context.Background(), "Stream online", "foo is online", ""); err != nil {
		t.Fatal(err)
	}
	if f.channel != "somechannel" {
		t.Error("want somechannel got", f.channel)
	}
	if f.text != "Stream online foo is online" {
		t.Error("got", f.text)
	}
}
