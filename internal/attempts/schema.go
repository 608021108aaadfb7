package attempts

import (
	"database/sql"
	_ "embed"
	"errors"
)

// schemaDDL holds the attempt log schema.
//
//go:embed schema.sql
var schemaDDL string

// SchemaDDL returns the schema DDL used for initializing attempt databases.
func SchemaDDL() string {
	return schemaDDL
}

// EnsureSchema applies the schema DDL to the provided database connection.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("attempts: db is nil")
	}
	_, err := db.Exec(schemaDDL)
	return err
}
