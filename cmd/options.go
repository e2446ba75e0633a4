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
	"os"
	"os/exec"
	"runtime"
	"syscall"

	"github.com/bobbytrapz/twitchnotifier/options"
	"github.com/spf13/cobra"
)

var optionsEditor string

func init() {
	rootCmd.AddCommand(optionsCmd)
	optionsCmd.Flags().StringVarP(&optionsEditor, "editor", "e", os.Getenv("EDITOR"), "Command to use for editing.")
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Allows you to edit the twitchnotifier config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		fn := configPath
		if fn == "" {
			p, err := options.DefaultPath()
			if err != nil {
				return err
			}
			fn = p
		}

		// start from the defaults so every key is easy to find
		if _, err := os.Stat(fn); os.IsNotExist(err) {
			if err := options.Write(fn); err != nil {
				return err
			}
			fmt.Println("[ok] wrote new config file", fn)
		}

		switch runtime.GOOS {
		case "windows":
			return exec.Command("cmd.exe", "/C", "start", "/b", "Notepad", fn).Start()
		case "darwin":
			app, err := exec.LookPath("open")
			if err != nil {
				return fmt.Errorf("could not find open: %s", err)
			}
			return syscall.Exec(app, []string{app, "-e", fn}, os.Environ())
		default:
			if optionsEditor == "" {
				optionsEditor = "vi"
			}
			app, err := exec.LookPath(optionsEditor)
			if err != nil {
				return fmt.Errorf("could not find %s: %s", optionsEditor, err)
			}
			return syscall.Exec(app, []string{app, fn}, os.Environ())
		}
	},
}
