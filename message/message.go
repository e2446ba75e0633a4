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

// Package message renders user messages from templates.
//
// Tokens:
//
//	$1      channel name
//	$2      online or offline
//	$3      game
//	$4      viewers
//	$5      status
//	$6      language
//	$7      average fps
//	$8      followers
//	$9      views
//	${fmt}  current local time formatted with strftime
//
// When there is no stream metadata (the channel is offline) $3 to $9 are
// left in the output as they are.
package message

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/bobbytrapz/twitchnotifier/stream"
	"github.com/lestrrat-go/strftime"
)

// replaced in tests
var now = time.Now

// Pair of templates for the online and offline case
type Pair struct {
	On  string
	Off string
}

// Pick the template for a status
func (p Pair) Pick(online bool) string {
	if online {
		return p.On
	}

	return p.Off
}

// Render tmpl for channel name
// meta is nil when the channel is offline
func Render(meta *stream.Metadata, name stream.Name, tmpl string) string {
	var b strings.Builder
	b.Grow(len(tmpl))

	for ndx := 0; ndx < len(tmpl); ndx++ {
		c := tmpl[ndx]
		if c != '$' || ndx+1 == len(tmpl) {
			b.WriteByte(c)
			continue
		}

		next := tmpl[ndx+1]
		switch {
		case next == '1':
			b.WriteString(string(name))
			ndx++
		case next == '2':
			if meta != nil {
				b.WriteString("online")
			} else {
				b.WriteString("offline")
			}
			ndx++
		case next == '{':
			end := strings.IndexByte(tmpl[ndx+2:], '}')
			if end == -1 {
				b.WriteByte(c)
				continue
			}
			b.WriteString(formatTime(tmpl[ndx+2 : ndx+2+end]))
			ndx += 2 + end
		case next >= '3' && next <= '9':
			if meta == nil {
				b.WriteByte(c)
				continue
			}
			b.WriteString(field(meta, next))
			ndx++
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

func formatTime(pattern string) string {
	s, err := strftime.Format(pattern, now())
	if err != nil {
		log.Println("message.formatTime:", err)
		return pattern
	}

	return s
}

func field(m *stream.Metadata, token byte) string {
	switch token {
	case '3':
		return str(m.Game)
	case '4':
		return integer(m.Viewers)
	case '5':
		return str(m.Status)
	case '6':
		return str(m.Language)
	case '7':
		if m.AverageFPS == nil {
			return ""
		}
		return strconv.FormatFloat(*m.AverageFPS, 'f', -1, 64)
	case '8':
		return integer(m.Followers)
	case '9':
		return integer(m.Views)
	}

	return ""
}

func str(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func integer(n *int64) string {
	if n == nil {
		return ""
	}

	return strconv.FormatInt(*n, 10)
}
