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

// Package retry marks errors that are worth trying again.
package retry

import (
	"errors"
)

// Retryable can be attempted again
type Retryable interface {
	Retry() error
}

// Check if err or anything it wraps can be retried
func Check(err error) (Retryable, bool) {
	var r Retryable
	if errors.As(err, &r) {
		return r, true
	}

	return nil, false
}

// Error is a transient failure
// Attempt repeats the operation that failed
type Error struct {
	Message string
	Err     error
	Attempt func() error
}

func (e Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e Error) Unwrap() error {
	return e.Err
}

// Retry the failed operation
func (e Error) Retry() error {
	if e.Attempt == nil {
		return e
	}

	return e.Attempt()
}
