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
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/bobbytrapz/twitchnotifier/homedir"
	"github.com/bobbytrapz/twitchnotifier/ipc"
	"github.com/bobbytrapz/twitchnotifier/options"
	"github.com/bobbytrapz/twitchnotifier/track"
	"github.com/spf13/cobra"
)

const (
	pidFileName = ".twitchnotifier-pid"
	minInterval = 10 * time.Second
)

const backgroundEnvKey = "twitchnotifier_is_now_running_in_the_background"

var shouldRunOnce = false
var shouldDetach = false
var intervalFlag time.Duration
var logFileFlag string

func init() {
	rootCmd.Flags().BoolVar(&shouldRunOnce, "once", false, "Check once, print every channel and exit")
	rootCmd.Flags().BoolVarP(&shouldDetach, "detach", "d", false, "Run twitchnotifier in the background")
	rootCmd.Flags().DurationVarP(&intervalFlag, "interval", "i", 0, "Time between checks (overrides check_every)")
	rootCmd.Flags().StringVar(&logFileFlag, "log-file", "", "Append every change to this file (overrides [log] file)")
}

func pidPath() (string, error) {
	dir, err := homedir.ConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, pidFileName), nil
}

func isRunningInBackground() bool {
	p, err := pidPath()
	if err != nil {
		return false
	}

	_, err = os.Stat(p)
	return err == nil
}

func runSelfInBackground() (*exec.Cmd, error) {
	// get the path of our executable
	exePath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	// build a command with a modified environment
	cmd := exec.Command(exePath, os.Args[1:]...)
	cmd.Env = append(os.Environ(), backgroundEnvKey+"=1")
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("We could not start in the background: %s", err)
	}

	// write a pid file
	p, err := pidPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(p, []byte(strconv.Itoa(cmd.Process.Pid)), 0644); err != nil {
		return nil, err
	}

	return cmd, nil
}

// pollRate prefers --interval over the config file
func pollRate() time.Duration {
	if intervalFlag > 0 {
		return intervalFlag
	}

	return options.CheckEvery()
}

func runDaemon(cmd *cobra.Command, args []string) error {
	if intervalFlag != 0 && intervalFlag < minInterval {
		return fmt.Errorf("--interval must be at least %s", minInterval)
	}

	if shouldDetach && !shouldRunOnce && os.Getenv(backgroundEnvKey) == "" {
		if isRunningInBackground() {
			return fmt.Errorf("twitchnotifier is already running. Try 'twitchnotifier stop' first")
		}

		c, err := runSelfInBackground()
		if err != nil {
			return err
		}
		fmt.Printf("twitchnotifier (%d)\n", c.Process.Pid)

		return nil
	}

	// handle interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := newClient()
	if err != nil {
		return err
	}

	if err := resolveUser(ctx, client); err != nil {
		return err
	}

	msgs := options.Messages()
	if shouldRunOnce {
		snap, err := client.Status(ctx)
		if err != nil {
			return err
		}

		return track.Print(os.Stdout, snap, msgs.User)
	}

	notifier, err := newNotifier(ctx)
	if err != nil {
		return err
	}

	sink, err := newSink(ctx, logFileFlag)
	if err != nil {
		return err
	}
	if sink != nil {
		defer sink.Close()
	}

	tracker := track.New(notifier, sink)
	tracker.SetMessages(msgs, options.ShowPicture())

	if addr := options.Get("twitch.listen_on"); addr != "" {
		s, err := ipc.New(tracker)
		if err != nil {
			return err
		}
		if err := s.Start(ctx, addr); err != nil {
			return err
		}
	}

	// new templates apply to the next change, a new check_every to the next tick
	options.Watch(func() {
		tracker.SetMessages(options.Messages(), options.ShowPicture())
	})

	fmt.Println("twitchnotifier is checking every", pollRate())
	err = track.Poll(ctx, client, tracker, pollRate)
	log.Println("cmd.runDaemon: finished:", err)

	if os.Getenv(backgroundEnvKey) != "" {
		if p, err := pidPath(); err == nil {
			os.Remove(p)
		}
	}

	return nil
}
