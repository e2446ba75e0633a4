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

// Package backoff spaces out retries of transient failures.
package backoff

import (
	"context"
	"math/rand"
	"time"
)

// Policy lists the delay in ms before each attempt
// the last step repeats forever
type Policy struct {
	Steps []int
}

// DefaultPolicy waits up to about a minute between attempts
var DefaultPolicy = Policy{
	[]int{0, 500, 1000, 3000, 5000, 10000, 20000, 40000, 60000},
}

// Duration gives how long we should wait on the given attempt
func (p *Policy) Duration(n int) time.Duration {
	if len(p.Steps) == 0 {
		return 0
	}
	if n >= len(p.Steps) {
		n = len(p.Steps) - 1
	}
	duration := p.Steps[n]
	if duration > 0 {
		// random int from uniform distribution around the step
		duration = duration/2 + rand.Intn(duration)
	}
	return time.Duration(duration) * time.Millisecond
}

// Wait for attempt n or until ctx is done
func (p *Policy) Wait(ctx context.Context, n int) error {
	t := time.NewTimer(p.Duration(n))
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
