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
	"errors"

	"github.com/bobbytrapz/twitchnotifier/dashboard"
	"github.com/bobbytrapz/twitchnotifier/options"
	"github.com/spf13/cobra"
)

var shouldColorLogo = false

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().BoolVar(&shouldColorLogo, "color", false, "Use the colorful logo")
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show what a running twitchnotifier sees",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := options.Get("twitch.listen_on")
		if addr == "" {
			return errors.New("set listen_on in the [twitch] section so the dashboard can connect")
		}

		return dashboard.Run(addr, shouldColorLogo)
	},
}
