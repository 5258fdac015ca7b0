package database

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/johnquangdev/transcript-insight/pkg/config"
)

// Schema statements are idempotent (IF NOT EXISTS) and safe to re-run at
// every process start.
var schemaStatements = []string{
	// Uniqueness constraints
	"CREATE CONSTRAINT transcript_id IF NOT EXISTS FOR (t:Transcript) REQUIRE t.id IS UNIQUE",
	"CREATE CONSTRAINT action_item_id IF NOT EXISTS FOR (a:ActionItem) REQUIRE a.id IS UNIQUE",

	// Secondary indexes
	"CREATE INDEX transcript_created_at_idx IF NOT EXISTS FOR (t:Transcript) ON (t.created_at)",
	"CREATE INDEX transcript_updated_at_idx IF NOT EXISTS FOR (t:Transcript) ON (t.updated_at)",
	"CREATE INDEX action_item_created_at_idx IF NOT EXISTS FOR (a:ActionItem) ON (a.created_at)",
	"CREATE INDEX action_item_updated_at_idx IF NOT EXISTS FOR (a:ActionItem) ON (a.updated_at)",
	"CREATE INDEX action_item_status_idx IF NOT EXISTS FOR (a:ActionItem) ON (a.status)",

	// Full-text index backing search
	"CREATE FULLTEXT INDEX transcriptContent IF NOT EXISTS FOR (t:Transcript) ON EACH [t.content]",
}

// Neo4jDB wraps the driver lifecycle. The driver is safe for concurrent use
// and connects lazily on first session use; a dropped connection surfaces as
// an error on the next call rather than triggering reconnect logic here.
type Neo4jDB struct {
	driver neo4j.DriverWithContext
}

// SchemaResult reports the outcome of schema initialization. Statement
// failures are non-fatal warnings; the caller decides whether to proceed.
type SchemaResult struct {
	Applied  int
	Warnings []string
}

// NewNeo4jDB creates a new Neo4j driver from config
func NewNeo4jDB(cfg *config.Neo4jConfig) (*Neo4jDB, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.User, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}
	return &Neo4jDB{driver: driver}, nil
}

// Driver exposes the underlying driver to repositories
func (db *Neo4jDB) Driver() neo4j.DriverWithContext {
	return db.driver
}

// EnsureSchema creates uniqueness constraints, secondary indexes and the
// full-text index. Individual statement failures are collected as warnings
// instead of aborting, so a partially provisioned database still starts.
func (db *Neo4jDB) EnsureSchema(ctx context.Context) (*SchemaResult, error) {
	session := db.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	result := &SchemaResult{}
	for _, stmt := range schemaStatements {
		_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
			res, err := tx.Run(ctx, stmt, nil)
			if err != nil {
				return nil, err
			}
			return nil, res.Err()
		})
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", stmt, err))
			continue
		}
		result.Applied++
	}

	return result, nil
}

// Close shuts down the driver and its connection pool
func (db *Neo4jDB) Close(ctx context.Context) error {
	if err := db.driver.Close(ctx); err != nil {
		return fmt.Errorf("failed to close neo4j driver: %w", err)
	}
	return nil
}
