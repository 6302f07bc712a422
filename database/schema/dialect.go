package schema

import (
	"fmt"

	"gorm.io/gorm"
)

// Dialect isolates the syntax that differs between storage backends: the
// autoincrement primary-key form, the timestamp column with its
// current-timestamp default, and the table-existence introspection query.
// The provisioner itself stays dialect-agnostic; all backends produce
// schema-equivalent tables.
type Dialect interface {
	Name() string

	// HasTable runs the backend's introspection query for table.
	HasTable(db *gorm.DB, table string) (bool, error)

	// AutoIncrementPrimaryKey is the column definition for the id column.
	AutoIncrementPrimaryKey() string

	// TimestampColumn is the column definition for created_at, including
	// the backend's current-timestamp default expression.
	TimestampColumn() string

	// CreateTableSuffix is appended verbatim after the closing paren.
	CreateTableSuffix() string
}

// For returns the Dialect for a gorm driver name.
func For(driver string) (Dialect, error) {
	switch driver {
	case "sqlite":
		return sqliteDialect{}, nil
	case "mysql":
		return mysqlDialect{}, nil
	case "postgres":
		return postgresDialect{}, nil
	case "sqlserver":
		return sqlserverDialect{}, nil
	default:
		return nil, fmt.Errorf("schema: no dialect for driver %q", driver)
	}
}

func countTable(db *gorm.DB, query string, args ...interface{}) (bool, error) {
	var n int64
	if err := db.Raw(query, args...).Scan(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── sqlite ───────────────────────────────────────────────────────────────────

type sqliteDialect struct{}

func (sqliteDialect) Name() string { return "sqlite" }

func (sqliteDialect) HasTable(db *gorm.DB, table string) (bool, error) {
	return countTable(db,
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table)
}

func (sqliteDialect) AutoIncrementPrimaryKey() string { return "INTEGER PRIMARY KEY AUTOINCREMENT" }
func (sqliteDialect) TimestampColumn() string         { return "DATETIME DEFAULT CURRENT_TIMESTAMP" }
func (sqliteDialect) CreateTableSuffix() string       { return "" }

// ── mysql ────────────────────────────────────────────────────────────────────

type mysqlDialect struct{}

func (mysqlDialect) Name() string { return "mysql" }

func (mysqlDialect) HasTable(db *gorm.DB, table string) (bool, error) {
	return countTable(db,
		"SELECT count(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?", table)
}

func (mysqlDialect) AutoIncrementPrimaryKey() string {
	return "BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY"
}
func (mysqlDialect) TimestampColumn() string { return "DATETIME DEFAULT CURRENT_TIMESTAMP" }
func (mysqlDialect) CreateTableSuffix() string {
	return " ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"
}

// ── postgres ─────────────────────────────────────────────────────────────────

type postgresDialect struct{}

func (postgresDialect) Name() string { return "postgres" }

func (postgresDialect) HasTable(db *gorm.DB, table string) (bool, error) {
	return countTable(db,
		"SELECT count(*) FROM information_schema.tables WHERE table_schema = 'public' AND table_name = ?", table)
}

func (postgresDialect) AutoIncrementPrimaryKey() string { return "BIGSERIAL PRIMARY KEY" }
func (postgresDialect) TimestampColumn() string {
	return "TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP"
}
func (postgresDialect) CreateTableSuffix() string { return "" }

// ── sqlserver ────────────────────────────────────────────────────────────────

type sqlserverDialect struct{}

func (sqlserverDialect) Name() string { return "sqlserver" }

func (sqlserverDialect) HasTable(db *gorm.DB, table string) (bool, error) {
	return countTable(db,
		"SELECT count(*) FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_TYPE = 'BASE TABLE' AND TABLE_NAME = ?", table)
}

func (sqlserverDialect) AutoIncrementPrimaryKey() string {
	return "BIGINT IDENTITY(1,1) PRIMARY KEY"
}
func (sqlserverDialect) TimestampColumn() string   { return "DATETIME2 DEFAULT SYSDATETIME()" }
func (sqlserverDialect) CreateTableSuffix() string { return "" }
