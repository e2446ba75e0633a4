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

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/bobbytrapz/twitchnotifier/options"
	"github.com/bobbytrapz/twitchnotifier/stream"
	"github.com/bobbytrapz/twitchnotifier/twitch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check NAME...",
	Short: "Check if channels are online right now",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		client, err := newClient()
		if err != nil {
			return err
		}

		names := stream.Names(args)
		got, err := client.CheckIfOnline(ctx, names, options.Messages().User)
		if errors.Is(err, twitch.ErrInvalidNickname) {
			return fmt.Errorf("at least one of %v is not a twitch user", args)
		}
		if err != nil {
			return err
		}

		seen := make(map[stream.Name]bool, len(names))
		for _, name := range names {
			if seen[name] {
				continue
			}
			seen[name] = true

			chk, ok := got[name]
			if !ok {
				fmt.Println(name, "could not be checked")
				continue
			}
			fmt.Println(chk.Message)
		}

		return nil
	},
}
