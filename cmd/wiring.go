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

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bobbytrapz/twitchnotifier/backoff"
	"github.com/bobbytrapz/twitchnotifier/homedir"
	"github.com/bobbytrapz/twitchnotifier/logsink"
	"github.com/bobbytrapz/twitchnotifier/notify"
	"github.com/bobbytrapz/twitchnotifier/options"
	"github.com/bobbytrapz/twitchnotifier/retry"
	"github.com/bobbytrapz/twitchnotifier/stream"
	"github.com/bobbytrapz/twitchnotifier/twitch"
)

// attempts to find our own user before giving up
const resolveAttempts = 8

var userFlag string

func newClient() (*twitch.Client, error) {
	return twitch.New(options.Get("twitch.base_url"), options.Get("twitch.client_id"))
}

func configuredUser() (stream.Name, error) {
	user := userFlag
	if user == "" {
		user = options.Get("twitch.user")
	}

	name := stream.Normalize(user)
	if name == "" {
		return "", errors.New("no user: use --user or set user in the [twitch] section")
	}

	return name, nil
}

// resolveUser finds the id of the configured user and keeps it in the client
// transient failures are retried with backoff
func resolveUser(ctx context.Context, c *twitch.Client) error {
	name, err := configuredUser()
	if err != nil {
		return err
	}

	var id string
	err = retry.Do(ctx, &backoff.DefaultPolicy, resolveAttempts, func() (err error) {
		id, err = c.ResolveUserID(ctx, name)
		return
	})
	if errors.Is(err, twitch.ErrInvalidNickname) {
		return fmt.Errorf("%s is not a twitch user", name)
	}
	if err != nil {
		return fmt.Errorf("could not find %s: %s", name, err)
	}

	c.UserID = id
	return nil
}

// newNotifier from [notify] and [chat]
// gives nil if the user wants no notifications
func newNotifier(ctx context.Context) (notify.Notifier, error) {
	var lst notify.Multi

	switch with := strings.ToLower(options.Get("notify.with")); with {
	case "desktop", "":
		cache, err := homedir.CacheDir()
		if err != nil {
			return nil, err
		}
		lst = append(lst, notify.NewDesktop(filepath.Join(cache, "icons")))
	case "console":
		lst = append(lst, notify.Console{W: os.Stdout})
	case "none":
	default:
		return nil, fmt.Errorf("unknown notifier in [notify] with: %q", with)
	}

	username := options.Get("chat.username")
	channel := options.Get("chat.channel")
	if username != "" && channel != "" {
		chat := notify.NewChat(username, options.Get("chat.oauth"), channel)
		go func() {
			if err := chat.Run(ctx); err != nil && ctx.Err() == nil {
				fmt.Fprintln(os.Stderr, "chat:", err)
			}
		}()
		lst = append(lst, chat)
	}

	if len(lst) == 0 {
		return nil, nil
	}

	return lst, nil
}

// newSink from [log]
// gives nil if no log is configured
func newSink(ctx context.Context, file string) (logsink.Sink, error) {
	var lst logsink.Multi

	if file == "" {
		file = options.Get("log.file")
	}
	if file != "" {
		p, err := homedir.Expand(file)
		if err != nil {
			return nil, err
		}
		f, err := logsink.OpenFile(p)
		if err != nil {
			return nil, err
		}
		lst = append(lst, f)
	}

	if dsn := options.Get("log.postgres"); dsn != "" {
		pg, err := logsink.OpenPostgres(ctx, dsn)
		if err != nil {
			lst.Close()
			return nil, err
		}
		lst = append(lst, pg)
	}

	if len(lst) == 0 {
		return nil, nil
	}

	return lst, nil
}
