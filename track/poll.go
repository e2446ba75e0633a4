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
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/bobbytrapz/twitchnotifier/stream"
)

// Source gives the status of every followed channel
type Source interface {
	Status(ctx context.Context) (stream.Snapshot, error)
}

var check = make(chan struct{}, 1)

// CheckNow makes Poll check right now
func CheckNow() {
	select {
	case check <- struct{}{}:
	default:
		// a check is already waiting
	}
}

// Poll src until ctx is done
// the first check happens right away and every gives the wait between checks
// checks never overlap
func Poll(ctx context.Context, src Source, t *Tracker, every func() time.Duration) error {
	attempt := func() {
		snap, err := src.Status(ctx)
		if err != nil {
			// the next tick is our retry
			log.Println("track.Poll: skipping this check:", err)
			fmt.Fprintln(os.Stderr, "could not check channels:", err)
			return
		}
		t.Diff(ctx, snap)
	}

	// make first attempt right away
	log.Println("track.Poll: first attempt...")
	attempt()

	pollRate := every()
	log.Println("track.Poll:", pollRate)
	tick := time.NewTicker(pollRate)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Println("track.Poll:", ctx.Err())
			return ctx.Err()
		case <-tick.C:
		case <-check:
			log.Println("track.Poll: check now")
		}

		if ctx.Err() != nil {
			continue
		}
		attempt()

		// check if poll rate was adjusted
		if p := every(); p != pollRate {
			pollRate = p
			tick.Reset(pollRate)
			log.Println("track.Poll: new poll rate", pollRate)
		}
	}
}
