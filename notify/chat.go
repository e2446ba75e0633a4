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
	"context"
	"errors"
	"log"
	"strings"
	"sync/atomic"

	twitchirc "github.com/gempir/go-twitch-irc/v4"
)

var errNotConnected = errors.New("notify.Chat: not connected")

// sayer is the part of the irc client we use
type sayer interface {
	Say(channel, text string)
}

// Chat announces notifications in a twitch chat channel
type Chat struct {
	channel   string
	client    *twitchirc.Client
	say       sayer
	connected atomic.Bool
}

// NewChat logs in as username and speaks in channel
func NewChat(username, oauth, channel string) *Chat {
	client := twitchirc.NewClient(username, oauth)
	c := &Chat{
		channel: strings.ToLower(strings.TrimPrefix(strings.TrimSpace(channel), "#")),
		client:  client,
		say:     client,
	}

	client.OnConnect(func() {
		log.Println("notify.Chat: connected, joining", c.channel)
		client.Join(c.channel)
		c.connected.Store(true)
	})

	client.OnReconnectMessage(func(msg twitchirc.ReconnectMessage) {
		log.Println("notify.Chat: server asked to reconnect")
		c.connected.Store(false)
	})

	return c
}

// Run connects and blocks until ctx is done or the connection fails
// go-twitch-irc reconnects on its own
func (c *Chat) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- c.client.Connect()
	}()

	select {
	case <-ctx.Done():
		c.connected.Store(false)
		c.client.Disconnect()
		<-errCh
		return ctx.Err()
	case err := <-errCh:
		c.connected.Store(false)
		return err
	}
}

// Display says title and body in the channel
func (c *Chat) Display(ctx context.Context, title, body, iconURL string) error {
	if !c.connected.Load() {
		return errNotConnected
	}

	text := strings.TrimSpace(title + " " + body)
	c.say.Say(c.channel, text)

	return nil
}
