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

package retry

import (
	"context"
	"log"

	"github.com/bobbytrapz/twitchnotifier/backoff"
)

// Do calls attempt until it succeeds or fails with an error we cannot retry
// max <= 0 tries forever
func Do(ctx context.Context, policy *backoff.Policy, max int, attempt func() error) error {
	err := attempt()
	for n := 1; ; n++ {
		if _, ok := Check(err); !ok {
			return err
		}
		if max > 0 && n >= max {
			log.Println("retry.Do: giving up after", n, "attempts")
			return err
		}

		log.Println("retry.Do: attempt", n, "failed:", err)
		if werr := policy.Wait(ctx, n); werr != nil {
			return werr
		}

		err = attempt()
	}
}
