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

package options

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "twitchnotifier.toml")
	if err := os.WriteFile(p, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "nope.toml")); err != nil {
		t.Fatal(err)
	}

	msgs := Messages()
	if msgs.User.On != "$1 is $2" || msgs.Log.Off != "(${%d %H:%M:%S}) $1 is $2" {
		t.Error("bad defaults", msgs)
	}
	if msgs.Content.On != "is $2" || msgs.Title.Off != "$1" {
		t.Error("bad defaults", msgs)
	}
	if ShowPicture() {
		t.Error("show_picture should default to false")
	}
	if CheckEvery() != time.Minute {
		t.Error("want", time.Minute, "got", CheckEvery())
	}
	if Get("notify.with") != "desktop" {
		t.Error("want desktop got", Get("notify.with"))
	}
}

func TestLoadFile(t *testing.T) {
	p := writeConfig(t, `
[messages]
user_message = "$1 is live playing $3"
user_message_off = "$1 went away"
show_picture = true

[twitch]
user = "xangold"
check_every = "30s"
`)
	if err := Load(p); err != nil {
		t.Fatal(err)
	}

	msgs := Messages()
	if msgs.User.On != "$1 is live playing $3" || msgs.User.Off != "$1 went away" {
		t.Error("got", msgs.User)
	}
	// untouched keys keep defaults
	if msgs.List.On != "$1" {
		t.Error("want $1 got", msgs.List.On)
	}
	if !ShowPicture() {
		t.Error("show_picture should be on")
	}
	if Get("twitch.user") != "xangold" {
		t.Error("want xangold got", Get("twitch.user"))
	}
	if CheckEvery() != 30*time.Second {
		t.Error("want 30s got", CheckEvery())
	}
}

func TestEnvironmentWins(t *testing.T) {
	p := writeConfig(t, `
[messages]
notification_content_off = "from file"

[twitch]
user = "fromfile"
`)
	t.Setenv("notification_content_off", "from env")
	t.Setenv("show_picture", "true")
	t.Setenv("TWITCHNOTIFIER_TWITCH_USER", "fromenv")

	if err := Load(p); err != nil {
		t.Fatal(err)
	}

	if got := Messages().Content.Off; got != "from env" {
		t.Error("want from env got", got)
	}
	if !ShowPicture() {
		t.Error("show_picture should come from the environment")
	}
	if got := Get("twitch.user"); got != "fromenv" {
		t.Error("want fromenv got", got)
	}
}

func TestInvalidPollRateIsClamped(t *testing.T) {
	p := writeConfig(t, `
[twitch]
check_every = "1s"
`)
	if err := Load(p); err != nil {
		t.Fatal(err)
	}

	if ok, err := AreValid(); ok || err != errInvalidPollRate {
		t.Error("want", errInvalidPollRate, "got", err)
	}
	if CheckEvery() != time.Minute {
		t.Error("want 1m got", CheckEvery())
	}
}

func TestLoadBrokenFile(t *testing.T) {
	p := writeConfig(t, "[messages\nuser_message = ")
	if err := Load(p); err == nil {
		t.Error("want error")
	}
}

func TestWrite(t *testing.T) {
	t.Setenv("user_message", "should not be written")
	p := filepath.Join(t.TempDir(), "sub", "twitchnotifier.toml")
	if err := Write(p); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "should not be written") {
		t.Error("environment leaked into the file")
	}
	if !strings.Contains(string(b), "[messages]") {
		t.Error("no messages section", string(b))
	}

	os.Unsetenv("user_message")
	if err := Load(p); err != nil {
		t.Fatal(err)
	}
	if Messages().User.On != "$1 is $2" {
		t.Error("want default got", Messages().User.On)
	}
}
