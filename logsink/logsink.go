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

// Package logsink records every online/offline transition.
package logsink

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bobbytrapz/twitchnotifier/stream"
)

// Entry is one transition
// Line is already rendered with the log format
type Entry struct {
	At     time.Time
	Name   stream.Name
	Online bool
	Line   string
}

// Sink stores entries
type Sink interface {
	Write(ctx context.Context, e Entry) error
	Close() error
}

// File appends lines to a log file
type File struct {
	mu sync.Mutex
	f  *os.File
	w  *bufio.Writer
}

// OpenFile for appending
func OpenFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("logsink.OpenFile: %s", err)
	}

	return &File{f: f, w: bufio.NewWriter(f)}, nil
}

// Write one line and flush so nothing is lost if we are killed
func (s *File) Write(ctx context.Context, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.w.WriteString(e.Line + "\n"); err != nil {
		return fmt.Errorf("logsink.File: %s", err)
	}

	return s.w.Flush()
}

// Close the file
func (s *File) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return errors.Join(s.w.Flush(), s.f.Close())
}

// Multi writes to every sink
type Multi []Sink

// Write to every sink even if some fail
func (m Multi) Write(ctx context.Context, e Entry) error {
	var errs []error
	for _, s := range m {
		if err := s.Write(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Close every sink
func (m Multi) Close() error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Close())
	}

	return errors.Join(errs...)
}
