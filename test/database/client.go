// Package database provides test database clients backed by a shared
// PostgreSQL testcontainer.
package database

import (
	"testing"

	"github.com/specsmith/specsmith/pkg/database"
	"github.com/specsmith/specsmith/test/util"
)

// NewTestClient creates a test client for the work store.
// In CI (when CI_DATABASE_URL is set): connects to the external PostgreSQL
// service container. In local dev: spins up a testcontainer.
// The schema and connections are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	return newClient(t, database.StoreWork)
}

// NewIdentityTestClient creates a test client for the identity store.
func NewIdentityTestClient(t *testing.T) *database.Client {
	return newClient(t, database.StoreIdentity)
}

func newClient(t *testing.T, store database.Store) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	// Cleanup (schema drop and connection close) is handled by SetupTestDatabase.
	return database.NewClientFromEnt(entClient, db, store)
}
