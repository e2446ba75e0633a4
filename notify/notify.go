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

// Package notify shows the user that a channel went online or offline.
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Notifier displays one notification
// iconURL may be empty
type Notifier interface {
	Display(ctx context.Context, title, body, iconURL string) error
}

// Func lets a plain function be a Notifier
type Func func(ctx context.Context, title, body, iconURL string) error

// Display calls f
func (f Func) Display(ctx context.Context, title, body, iconURL string) error {
	return f(ctx, title, body, iconURL)
}

// Multi displays with every notifier even if some fail
type Multi []Notifier

// Display with every notifier
func (m Multi) Display(ctx context.Context, title, body, iconURL string) error {
	var errs []error
	for _, n := range m {
		if err := n.Display(ctx, title, body, iconURL); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Console writes notifications to w
type Console struct {
	W io.Writer
}

// Display on the console
func (c Console) Display(ctx context.Context, title, body, iconURL string) error {
	_, err := fmt.Fprintln(c.W, title, body)
	return err
}
