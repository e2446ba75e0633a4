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
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bobbytrapz/twitchnotifier/options"
	"github.com/spf13/cobra"
)

var configPath string
var shouldBeVerbose = false

var rootCmd = &cobra.Command{
	Use:   "twitchnotifier",
	Short: "twitchnotifier: know when the channels you follow go live",
	Long: `twitchnotifier: know when the channels you follow go live
twitchnotifier checks the channels a twitch user follows and shows a
notification whenever one of them goes online or offline.

Messages are configured in the [messages] section of twitchnotifier.toml.
Use 'twitchnotifier options' to edit it.

This program comes with ABSOLUTELY NO WARRANTY;
This is free software, and you are welcome to redistribute it under certain conditions.
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
		if shouldBeVerbose {
			log.SetOutput(os.Stderr)
		} else {
			log.SetOutput(io.Discard)
		}

		if err := options.Load(configPath); err != nil {
			return err
		}

		return nil
	},
	RunE: runDaemon,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default is twitchnotifier.toml in the config directory)")
	rootCmd.PersistentFlags().BoolVarP(&shouldBeVerbose, "verbose", "v", false, "Trace what twitchnotifier is doing")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "Twitch user whose follows we check")
}

// Execute root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
