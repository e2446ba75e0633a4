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

package ipc

import (
	"fmt"
	"net/rpc"
)

// Client talks to a running twitchnotifier
type Client struct {
	remote *rpc.Client
}

// Dial the ipc server at addr
func Dial(addr string) (*Client, error) {
	remote, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("ipc.Dial: is twitchnotifier running? %s", err)
	}

	return &Client{remote: remote}, nil
}

// Status of every channel
// selected is remembered by the server, "?" gives back the last one
func (c *Client) Status(selected string) (res Dashboard, err error) {
	err = c.remote.Call("Command.Status", &Dashboard{Selected: selected}, &res)
	return
}

// CheckNow asks the server to poll right away
func (c *Client) CheckNow(selected string) (res Dashboard, err error) {
	err = c.remote.Call("Command.CheckNow", &Dashboard{Selected: selected}, &res)
	return
}

// Close the connection
func (c *Client) Close() error {
	return c.remote.Close()
}
