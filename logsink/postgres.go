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

package logsink

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const writeTimeout = 5 * time.Second

const createTable = `
create table if not exists transitions (
  id bigserial primary key,
  channel text not null,
  online boolean not null,
  line text not null,
  at timestamptz not null
);`

const insertTransition = `
insert into transitions (channel, online, line, at)
values ($1, $2, $3, $4);`

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Postgres keeps transitions in a table
type Postgres struct {
	db    execer
	close func()
}

// OpenPostgres connects with a pgx connection string and makes sure the table exists
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("logsink.OpenPostgres: %s", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("logsink.OpenPostgres: %s", err)
	}

	s, err := newPostgres(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	s.close = pool.Close

	return s, nil
}

func newPostgres(ctx context.Context, db execer) (*Postgres, error) {
	if _, err := db.Exec(ctx, createTable); err != nil {
		return nil, fmt.Errorf("logsink.OpenPostgres: %s", err)
	}
	log.Println("logsink.Postgres: ready")

	return &Postgres{db: db}, nil
}

// Write one transition
func (s *Postgres) Write(ctx context.Context, e Entry) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if _, err := s.db.Exec(ctx, insertTransition, string(e.Name), e.Online, e.Line, e.At.UTC()); err != nil {
		return fmt.Errorf("logsink.Postgres: %s", err)
	}

	return nil
}

// Close the pool
func (s *Postgres) Close() error {
	if s.close != nil {
		s.close()
	}
	return nil
}
