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
	"errors"
	"testing"

	"github.com/bobbytrapz/twitchnotifier/backoff"
)

var quick = &backoff.Policy{Steps: []int{0}}

func TestDoUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), quick, 0, func() error {
		calls++
		if calls < 3 {
			return Error{Message: "flaky"}
		}
		return nil
	})
	if err != nil {
		t.Error(err)
	}
	if calls != 3 {
		t.Error("want", 3, "got", calls)
	}
}

func TestDoStopsOnPermanentError(t *testing.T) {
	bad := errors.New("bad nickname")
	calls := 0
	err := Do(context.Background(), quick, 0, func() error {
		calls++
		return bad
	})
	if err != bad || calls != 1 {
		t.Error("want", bad, "once got", err, calls)
	}
}

func TestDoGivesUp(t *testing.T) {
	calls := 0
	err := Do(context.Background(), quick, 4, func() error {
		calls++
		return Error{Message: "down"}
	})
	if _, ok := Check(err); !ok {
		t.Error("want the last transient error got", err)
	}
	if calls != 4 {
		t.Error("want", 4, "got", calls)
	}
}

func TestDoCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	slow := &backoff.Policy{Steps: []int{60000}}
	err := Do(ctx, slow, 0, func() error {
		return Error{Message: "down"}
	})
	if !errors.Is(err, context.Canceled) {
		t.Error("want", context.Canceled, "got", err)
	}
}
