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
	"net/url"

	"github.com/bobbytrapz/twitchnotifier/stream"
)

// ResolveUserIDs of names in the same order
func (c *Client) ResolveUserIDs(ctx context.Context, names []stream.Name) ([]string, error) {
	ids := make([]string, 0, len(names))
	for _, chunk := range chunks(names, c.limit()) {
		got, err := c.resolveChunk(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("twitch.ResolveUserIDs: %w", err)
		}
		ids = append(ids, got...)
	}

	return ids, nil
}

// ResolveUserID of a single name
func (c *Client) ResolveUserID(ctx context.Context, name stream.Name) (string, error) {
	ids, err := c.ResolveUserIDs(ctx, []stream.Name{name})
	if err != nil {
		return "", err
	}

	return ids[0], nil
}

// the api does not tell us which names it dropped so we compare the total
func (c *Client) resolveChunk(ctx context.Context, names []stream.Name) ([]string, error) {
	var data usersResponse
	q := url.Values{"login": {join(names)}}
	if err := c.get(ctx, "/users", q, &data); err != nil {
		if errors.Is(err, errNotFound) || errors.Is(err, errBadRequest) {
			return nil, fmt.Errorf("%v: %w", names, ErrInvalidNickname)
		}
		return nil, err
	}

	if data.Total == nil || *data.Total != len(names) {
		return nil, fmt.Errorf("%v: %w", names, ErrInvalidNickname)
	}

	lookup := make(map[stream.Name]string, len(data.Users))
	for _, u := range data.Users {
		lookup[stream.Normalize(u.Name)] = u.ID
	}

	ids := make([]string, len(names))
	for ndx, n := range names {
		id, ok := lookup[n]
		if !ok || id == "" {
			return nil, fmt.Errorf("%s: %w", n, ErrInvalidNickname)
		}
		ids[ndx] = id
	}

	return ids, nil
}
