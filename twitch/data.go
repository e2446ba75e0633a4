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
	"github.com/bobbytrapz/twitchnotifier/stream"
)

// every kraken error looks like this
type errorResponse struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type usersResponse struct {
	Total *int   `json:"_total"`
	Users []user `json:"users"`
}

type user struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type followsResponse struct {
	Total   int      `json:"_total"`
	Follows []follow `json:"follows"`
}

type follow struct {
	Channel channel `json:"channel"`
}

type channel struct {
	Name      string  `json:"name"`
	Status    *string `json:"status"`
	Language  *string `json:"language"`
	Followers *int64  `json:"followers"`
	Views     *int64  `json:"views"`
	Logo      *string `json:"logo"`
}

type streamsResponse struct {
	Total   int          `json:"_total"`
	Streams []liveStream `json:"streams"`
}

type liveStream struct {
	Game       *string  `json:"game"`
	Viewers    *int64   `json:"viewers"`
	AverageFPS *float64 `json:"average_fps"`
	Channel    channel  `json:"channel"`
}

func (s liveStream) metadata() *stream.Metadata {
	return &stream.Metadata{
		Game:       s.Game,
		Viewers:    s.Viewers,
		Status:     s.Channel.Status,
		Language:   s.Channel.Language,
		AverageFPS: s.AverageFPS,
		Followers:  s.Channel.Followers,
		Views:      s.Channel.Views,
		Logo:       s.Channel.Logo,
	}
}
