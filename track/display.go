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

package track

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/bobbytrapz/twitchnotifier/message"
	"github.com/bobbytrapz/twitchnotifier/stream"
)

// DisplayRow of data
type DisplayRow struct {
	Status string
	Name   string
	Game   string
}

// DisplayTable tracking data
type DisplayTable struct {
	Live    []DisplayRow
	Offline []DisplayRow
	Unknown []DisplayRow
}

func displayRow(i Info) DisplayRow {
	row := DisplayRow{
		Status: "?",
		Name:   string(i.Name),
	}

	switch {
	case i.IsLive():
		d := time.Since(i.Since).Truncate(5 * time.Minute)
		if !i.Since.IsZero() && d > time.Second {
			s := strings.TrimSuffix(d.String(), "0s")
			row.Status = fmt.Sprintf("Now (%s)", s)
		} else {
			row.Status = "Now"
		}

		meta := i.Status.Metadata()
		if meta != nil && meta.Game != nil {
			row.Game = *meta.Game
		}
		if meta != nil && meta.Viewers != nil {
			row.Game = strings.TrimSpace(row.Game + " (" + strconv.FormatInt(*meta.Viewers, 10) + ")")
		}
	case i.IsOffline():
		row.Status = "Offline"
	}

	return row
}

// MakeTable from sorted infos
func MakeTable(lst []Info) (d DisplayTable) {
	for _, i := range lst {
		row := displayRow(i)
		switch {
		case i.IsLive():
			d.Live = append(d.Live, row)
		case i.IsOffline():
			d.Offline = append(d.Offline, row)
		default:
			d.Unknown = append(d.Unknown, row)
		}
	}

	return
}

// Display everyone we know about sorted by urgency for the dashboard
func (t *Tracker) Display() DisplayTable {
	t.mu.Lock()
	defer t.mu.Unlock()

	return MakeTable(Infos(t.last, t.since))
}

// Output for ui
func (d DisplayTable) Output(dst io.Writer) error {
	tw := tabwriter.NewWriter(dst, 0, 0, 4, ' ', 0)

	for _, row := range d.Live {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Status, row.Name, row.Game)
	}
	if len(d.Live) > 0 {
		fmt.Fprintln(tw, "\t\t\t")
	}

	for _, row := range d.Offline {
		fmt.Fprintf(tw, "%s\t%s\t\n", row.Status, row.Name)
	}
	if len(d.Offline) > 0 && len(d.Unknown) > 0 {
		fmt.Fprintln(tw, "\t\t\t")
	}

	for _, row := range d.Unknown {
		fmt.Fprintf(tw, "%s\t%s\t\n", row.Status, row.Name)
	}

	return tw.Flush()
}

// Print one line per channel in snap rendered with tmpl, live channels first
// channels we could not check are left out
func Print(dst io.Writer, snap stream.Snapshot, tmpl message.Pair) error {
	for _, i := range Infos(snap, nil) {
		online, ok := i.Status.Confirmed()
		if !ok {
			log.Println("track.Print:", i.Name, "is unknown")
			continue
		}

		line := message.Render(i.Status.Metadata(), i.Name, tmpl.Pick(online))
		if _, err := fmt.Fprintln(dst, line); err != nil {
			return err
		}
	}

	return nil
}
