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
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestCheck(t *testing.T) {
	calls := 0
	var err error = Error{
		Message: "twitch.request",
		Err:     io.ErrUnexpectedEOF,
		Attempt: func() error {
			calls++
			return nil
		},
	}

	// wrapping keeps it retryable
	err = fmt.Errorf("twitch.Status: %w", err)

	r, ok := Check(err)
	if !ok {
		t.Fatal("want retryable")
	}
	if err := r.Retry(); err != nil {
		t.Error("want", nil, "got", err)
	}
	if calls != 1 {
		t.Error("want", 1, "got", calls)
	}

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("cause was lost")
	}

	if _, ok := Check(errors.New("plain")); ok {
		t.Error("plain errors are not retryable")
	}
}
