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

package twitch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/bobbytrapz/twitchnotifier/message"
	"github.com/bobbytrapz/twitchnotifier/stream"
)

// most chunk requests we make at the same time
const maxInFlight = 4

// Check is the result of CheckIfOnline for one channel
type Check struct {
	Online  bool
	Message string
}

// Status of every channel UserID follows
// a chunk that fails only makes its own channels unknown
func (c *Client) Status(ctx context.Context) (stream.Snapshot, error) {
	if c.UserID == "" {
		return nil, errors.New("twitch.Status: no user id")
	}

	followed, err := c.FollowedChannels(ctx, c.UserID)
	if err != nil {
		return nil, fmt.Errorf("twitch.Status: %w", err)
	}

	// paging can shift under us and hand back the same channel twice
	followed = unique(followed)
	chunked := chunks(followed, c.limit())
	live := make([]map[stream.Name]*stream.Metadata, len(chunked))
	errs := make([]error, len(chunked))

	var waitChunk sync.WaitGroup
	sem := make(chan struct{}, maxInFlight)
	for ndx, chunk := range chunked {
		waitChunk.Add(1)
		go func(ndx int, chunk []stream.Name) {
			defer waitChunk.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			live[ndx], errs[ndx] = c.liveChunk(ctx, chunk)
		}(ndx, chunk)
	}
	waitChunk.Wait()

	// merge in chunk order
	snap := make(stream.Snapshot, len(followed))
	for ndx, chunk := range chunked {
		if errs[ndx] != nil {
			log.Println("twitch.Status: chunk", ndx, "is unknown:", errs[ndx])
		}
		for _, name := range chunk {
			switch meta, ok := live[ndx][name]; {
			case errs[ndx] != nil:
				snap[name] = stream.Unknown()
			case ok:
				snap[name] = stream.Online(meta)
			default:
				snap[name] = stream.Offline()
			}
		}
	}

	return snap, nil
}

// CheckIfOnline looks up names without touching any tracked state
// channels in a chunk that failed are left out of the result
func (c *Client) CheckIfOnline(ctx context.Context, names []stream.Name, tmpl message.Pair) (map[stream.Name]Check, error) {
	ret := make(map[stream.Name]Check, len(names))
	if len(names) == 0 {
		log.Println("twitch.CheckIfOnline: no channels")
		return ret, nil
	}

	for _, chunk := range chunks(unique(names), c.limit()) {
		live, err := c.liveChunk(ctx, chunk)
		if errors.Is(err, ErrInvalidNickname) {
			return nil, fmt.Errorf("twitch.CheckIfOnline: %w", err)
		}
		if err != nil {
			log.Println("twitch.CheckIfOnline:", err)
			continue
		}

		for _, name := range chunk {
			if meta, ok := live[name]; ok {
				ret[name] = Check{Online: true, Message: message.Render(meta, name, tmpl.On)}
			} else {
				ret[name] = Check{Online: false, Message: message.Render(nil, name, tmpl.Off)}
			}
		}
	}

	return ret, nil
}

// liveChunk finds which names in chunk are live
func (c *Client) liveChunk(ctx context.Context, chunk []stream.Name) (map[stream.Name]*stream.Metadata, error) {
	ids, err := c.resolveChunk(ctx, chunk)
	if err != nil {
		return nil, fmt.Errorf("twitch.liveChunk: %w", err)
	}

	q := url.Values{
		"channel": {strings.Join(ids, ",")},
		"limit":   {strconv.Itoa(Limit)},
		"offset":  {"0"},
	}

	var data streamsResponse
	if err := c.get(ctx, "/streams", q, &data); err != nil {
		return nil, fmt.Errorf("twitch.liveChunk: %w", err)
	}

	if data.Streams == nil {
		return nil, errors.New("twitch.liveChunk: no streams in response")
	}

	inChunk := make(map[stream.Name]bool, len(chunk))
	for _, n := range chunk {
		inChunk[n] = true
	}

	live := make(map[stream.Name]*stream.Metadata, len(data.Streams))
	for _, s := range data.Streams {
		name := stream.Normalize(s.Channel.Name)
		if !inChunk[name] {
			continue
		}
		live[name] = s.metadata()
	}

	return live, nil
}
