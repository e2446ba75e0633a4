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

	"github.com/bobbytrapz/twitchnotifier/stream"
)

// FollowedChannels by userID in the order the api gives them
// we read pages until one is empty and never trust _total
func (c *Client) FollowedChannels(ctx context.Context, userID string) ([]stream.Name, error) {
	var names []stream.Name
	limit := c.limit()

	for offset := 0; ; offset += limit {
		page, err := c.followsPage(ctx, userID, offset, limit)
		if err != nil {
			return nil, fmt.Errorf("twitch.FollowedChannels: %w", err)
		}

		if len(page) == 0 {
			log.Println("twitch.FollowedChannels:", userID, "follows", len(names), "channels")
			return names, nil
		}

		names = append(names, page...)
	}
}

func (c *Client) followsPage(ctx context.Context, userID string, offset, limit int) ([]stream.Name, error) {
	q := url.Values{
		"offset": {strconv.Itoa(offset)},
		"limit":  {strconv.Itoa(limit)},
		// works around https://github.com/twitchdev/issues/issues/237
		"sortby": {"last_broadcast"},
	}

	var data followsResponse
	cmd := "/users/" + url.PathEscape(userID) + "/follows/channels"
	if err := c.get(ctx, cmd, q, &data); err != nil {
		if errors.Is(err, errNotFound) || errors.Is(err, errBadRequest) {
			return nil, fmt.Errorf("%s: %w", userID, ErrInvalidUser)
		}
		return nil, err
	}

	if data.Follows == nil {
		return nil, fmt.Errorf("no follows in response at offset %d", offset)
	}

	page := make([]stream.Name, 0, len(data.Follows))
	for _, f := range data.Follows {
		page = append(page, stream.Normalize(f.Channel.Name))
	}

	return page, nil
}
