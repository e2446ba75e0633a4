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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func readPid(path string) (int, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return 0, errors.New("twitchnotifier is not running. (pid file not found)")
	}
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(strings.TrimSpace(string(data)))
}

func readPidAndKill() error {
	p, err := pidPath()
	if err != nil {
		return err
	}

	pid, err := readPid(p)
	if err != nil {
		return err
	}
	defer os.Remove(p)

	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}

	fmt.Printf("twitchnotifier (%d)\n", pid)

	// let it close the log and the chat connection
	if err := proc.Signal(os.Interrupt); err != nil {
		return proc.Kill()
	}

	return nil
}

func init() {
	rootCmd.AddCommand(stopCmd)
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the background twitchnotifier process",
	Long:  `Reads the pid of the background twitchnotifier from the pid file in the config directory and stops the process`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return readPidAndKill()
	},
}
