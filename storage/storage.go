// Copyright (c) The PuzzleEngine Authors.  All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package storage archives evolution runs.  Redis caches the live
// per-generation fitness series of a run in flight; Postgres keeps
// the finished runs, their parameters, and their best puzzles.
package storage

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
)

// Connect brings up the cache and the database, applying any
// pending schema migrations first.  It returns the identifiers of
// the two connections for logging.
func Connect() (cacheID, databaseID string, err error) {
	if err = EnsureSchema(); err != nil {
		err = fmt.Errorf("couldn't prepare database schema: %v", err)
		return
	}

	rdInit()
	rdMutex.Lock()
	defer rdMutex.Unlock()
	cacheID, err = rdConnect()
	if err != nil {
		return
	}

	pgInit()
	databaseID, err = pgConnect()
	if err != nil {
		return
	}
	return
}

// Close shuts both connections down.
func Close() {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	pgClose()
	rdClose()
}

/*

cache using Redis

*/

// Redis connection data
var (
	rdc     redis.Conn // open connection, if any
	rdURL   string     // URL for the open connection
	rdMutex sync.Mutex // prevent concurrent connection use
)

// rdInit - look up Redis info from the environment
func rdInit() {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		rdURL = "redis://localhost:6379/"
	} else {
		rdURL = url
	}
}

// rdConnect: connect to the given Redis URL.  Returns the
// connection id, if successful, an error otherwise.
func rdConnect() (string, error) {
	conn, err := redis.DialURL(rdURL)
	if err != nil {
		return "", fmt.Errorf("couldn't connect to cache at %q: %v", rdURL, err)
	}
	rdc = conn
	return rdURL, nil
}

// rdClose: close the open Redis connection.
func rdClose() {
	if rdc != nil {
		rdc.Close()
		rdc = nil
	}
}

// rdExecute runs the body with the Redis mutex and connection.
// Because Redis connections can go away without warning, the
// connection is pinged first and re-dialed if the ping fails.
func rdExecute(body func(conn redis.Conn) error) error {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	if rdc == nil {
		return fmt.Errorf("cache is not connected")
	}
	if _, err := rdc.Do("PING"); err != nil {
		rdClose()
		if _, err := rdConnect(); err != nil {
			return fmt.Errorf("failed to reconnect to cache at %q", rdURL)
		}
	}
	return body(rdc)
}

/*

persistence using Postgres

*/

// Postgres connection data
var (
	pgConn *pgx.Conn // open database, if any
	pgURL  string    // URL for the open connection
)

// pgInit - look up Postgres info from the environment
func pgInit() {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		pgURL = "postgres://localhost/pze?sslmode=disable"
	} else {
		pgURL = url
	}
}

// pgConnect: open the Postgres database.  Returns the connection
// id, if successful, an error otherwise.
func pgConnect() (string, error) {
	conn, err := pgx.Connect(context.Background(), pgURL)
	if err != nil {
		return "", fmt.Errorf("couldn't connect to db at %q: %v", pgURL, err)
	}
	pgConn = conn
	return pgURL, nil
}

// pgClose: close the open Postgres connection.
func pgClose() {
	if pgConn != nil {
		pgConn.Close(context.Background())
		pgConn = nil
	}
}

// pgExecute runs the body inside a single transaction, rolling
// back if the body fails and committing otherwise.
func pgExecute(body func(tx pgx.Tx) error) error {
	if pgConn == nil {
		return fmt.Errorf("database is not connected")
	}
	ctx := context.Background()
	tx, err := pgConn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("can't open a transaction against database: %v", err)
	}
	if err := body(tx); err != nil {
		tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
