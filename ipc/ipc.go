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

// Package ipc lets the dashboard talk to a running twitchnotifier.
package ipc

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/rpc"
	"time"

	"github.com/bobbytrapz/twitchnotifier/track"
)

// EventsPath serves the websocket transition feed
const EventsPath = "/events"

// Server for rpc commands and events
type Server struct {
	rpc    *rpc.Server
	events *hub
	mux    *http.ServeMux
}

// New server reporting on tracker
func New(tracker *track.Tracker) (*Server, error) {
	s := &Server{
		rpc:    rpc.NewServer(),
		events: newHub(),
		mux:    http.NewServeMux(),
	}

	if err := s.rpc.RegisterName("Command", &Command{tracker: tracker}); err != nil {
		return nil, fmt.Errorf("ipc.New: %s", err)
	}
	tracker.Observe(s.events.broadcast)

	s.mux.Handle(rpc.DefaultRPCPath, s.rpc)
	s.mux.HandleFunc(EventsPath, s.events.serve)

	return s, nil
}

// Handler for every ipc endpoint
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start listening on addr until ctx is done
func (s *Server) Start(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("ipc.Start: is twitchnotifier already running? %s", err)
	}

	server := &http.Server{
		Handler: s.mux,
	}

	// clean shutdown
	go func() {
		<-ctx.Done()
		log.Println("ipc: finishing...")
		s.events.close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
		log.Println("ipc: done")
	}()

	go func() {
		log.Println("ipc.Start: ok", ln.Addr())
		if err := server.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Println("ipc.Start:", err)
		}
	}()

	return nil
}
