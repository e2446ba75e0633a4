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

// Package options loads twitchnotifier.toml with viper.
package options

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bobbytrapz/twitchnotifier/homedir"
	"github.com/bobbytrapz/twitchnotifier/message"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var m sync.RWMutex

const (
	// Filename for config file
	Filename = "twitchnotifier"
	// Format for config file
	Format          = "toml"
	envPrefix       = "twitchnotifier"
	defaultPollRate = "1m"
	minPollRate     = 10 * time.Second
	clampedPollRate = 1 * time.Minute
	defaultNotifier = "desktop"
	messagesSection = "messages"

	defaultSelectFGColor = "black"
	defaultSelectBGColor = "white"
)

// template keys as they appear in [messages] and in the environment
var messageKeys = []string{
	"user_message", "user_message_off",
	"notification_title", "notification_title_off",
	"notification_content", "notification_content_off",
	"list_entry", "list_entry_off",
	"log_fmt", "log_fmt_off",
	"show_picture",
}

var v = newViper()

var errInvalidPollRate = fmt.Errorf("error: time must be at least %s", minPollRate)

// defaults for every key
func defaults() map[string]interface{} {
	def := message.Defaults()
	pairs := map[string]message.Pair{
		"user_message":         def.User,
		"notification_title":   def.Title,
		"notification_content": def.Content,
		"list_entry":           def.List,
		"log_fmt":              def.Log,
	}

	d := map[string]interface{}{
		"messages.show_picture": false,
		"twitch.user":           "",
		"twitch.client_id":      "",
		"twitch.base_url":       "",
		"twitch.check_every":    defaultPollRate,
		"twitch.listen_on":      "",
		"log.file":              "",
		"log.postgres":          "",
		"chat.username":         "",
		"chat.oauth":            "",
		"chat.channel":          "",
		"notify.with":           defaultNotifier,

		"dashboard.select_fg_color": defaultSelectFGColor,
		"dashboard.select_bg_color": defaultSelectBGColor,
	}
	for k, p := range pairs {
		d[messagesSection+"."+k] = p.On
		d[messagesSection+"."+k+"_off"] = p.Off
	}

	return d
}

func newViper() *viper.Viper {
	nv := viper.New()
	for k, val := range defaults() {
		nv.SetDefault(k, val)
	}

	// templates keep their plain names in the environment
	for _, k := range messageKeys {
		nv.BindEnv(messagesSection+"."+k, k)
	}
	// everything else is TWITCHNOTIFIER_SECTION_KEY
	nv.SetEnvPrefix(envPrefix)
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()

	nv.SetConfigType(Format)

	return nv
}

// DefaultPath of the config file
func DefaultPath() (string, error) {
	dir, err := homedir.ConfigDir()
	if err != nil {
		return "", fmt.Errorf("options.DefaultPath: %s", err)
	}

	return filepath.Join(dir, Filename+"."+Format), nil
}

// Load the config file at path
// a missing file is fine and leaves us with defaults and the environment
func Load(path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	nv := newViper()
	nv.SetConfigFile(path)

	if err := nv.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
			return fmt.Errorf("options.Load: %s", err)
		}
		log.Println("options.Load: no config file at", path)
	} else if !nv.InConfig(messagesSection) {
		fmt.Fprintf(os.Stderr, "warning: %s has no [%s] section, using default messages\n", path, messagesSection)
	}

	m.Lock()
	v = nv
	clamp()
	m.Unlock()

	log.Println("options.Load:", path)

	return nil
}

// Watch the config file and call fn after it changes
func Watch(fn func()) {
	m.RLock()
	path := v.ConfigFileUsed()
	m.RUnlock()

	if _, err := os.Stat(path); err != nil {
		log.Println("options.Watch: not watching:", err)
		return
	}

	m.Lock()
	defer m.Unlock()

	v.OnConfigChange(func(e fsnotify.Event) {
		m.Lock()
		clamp()
		m.Unlock()

		fmt.Println("config file changed:", e.Name)
		if fn != nil {
			fn()
		}
	})
	v.WatchConfig()
}

// Write a config file with default values to path
func Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("options.Write: %s", err)
	}

	// a bare viper keeps the environment out of the file
	nv := viper.New()
	for k, val := range defaults() {
		nv.Set(k, val)
	}

	if err := nv.WriteConfigAs(path); err != nil {
		return fmt.Errorf("options.Write: %s", err)
	}
	log.Println("options.Write:", path)

	return nil
}

// checkEvery is check_every after validation
var checkEvery = clampedPollRate

// clamp fixes invalid values
// must hold m
func clamp() {
	checkEvery = v.GetDuration("twitch.check_every")
	if ok, err := areValid(); !ok {
		if err == errInvalidPollRate {
			fmt.Fprintf(os.Stderr, "%s; using %s\n", err, clampedPollRate)
			checkEvery = clampedPollRate
		}
	}
}

// must hold m
func areValid() (ok bool, err error) {
	if v.GetDuration("twitch.check_every") < minPollRate {
		err = errInvalidPollRate
		return
	}

	return true, nil
}

// AreValid is true if the options are valid
func AreValid() (ok bool, err error) {
	m.RLock()
	defer m.RUnlock()

	return areValid()
}

// Get an option
func Get(k string) string {
	m.RLock()
	defer m.RUnlock()

	return v.GetString(k)
}

// GetDuration an option
func GetDuration(k string) time.Duration {
	m.RLock()
	defer m.RUnlock()

	return v.GetDuration(k)
}

// CheckEvery is how long we wait between polls
func CheckEvery() time.Duration {
	m.RLock()
	defer m.RUnlock()

	return checkEvery
}

// ShowPicture is true if notifications should carry the channel logo
func ShowPicture() bool {
	m.RLock()
	defer m.RUnlock()

	return v.GetBool("messages.show_picture")
}

// Messages gives every template
func Messages() message.Set {
	m.RLock()
	defer m.RUnlock()

	pair := func(k string) message.Pair {
		return message.Pair{
			On:  v.GetString(messagesSection + "." + k),
			Off: v.GetString(messagesSection + "." + k + "_off"),
		}
	}

	return message.Set{
		User:    pair("user_message"),
		Title:   pair("notification_title"),
		Content: pair("notification_content"),
		List:    pair("list_entry"),
		Log:     pair("log_fmt"),
	}
}
