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
	"os"
	"os/signal"

	"github.com/bobbytrapz/twitchnotifier/options"
	"github.com/bobbytrapz/twitchnotifier/track"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every channel the user follows, online first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		client, err := newClient()
		if err != nil {
			return err
		}

		if err := resolveUser(ctx, client); err != nil {
			return err
		}

		snap, err := client.Status(ctx)
		if err != nil {
			return err
		}

		return track.Print(os.Stdout, snap, options.Messages().List)
	},
}
