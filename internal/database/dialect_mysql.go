package database

import (
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLDialect implements Dialect for MySQL
type MySQLDialect struct{}

// NewMySQLDialect creates a new MySQL dialect
func NewMySQLDialect() *MySQLDialect {
	return &MySQLDialect{}
}

func (d *MySQLDialect) DriverName() string {
	return "mysql"
}

func (d *MySQLDialect) DSN(config DialectConfig) string {
	return config.URL
}

func (d *MySQLDialect) RewriteQuery(query string) string {
	// MySQL uses ? placeholders like SQLite, no rewrite needed
	return query
}

func (d *MySQLDialect) SupportsLastInsertId() bool {
	return true
}

func (d *MySQLDialect) ConfigureConnection(db *sql.DB) error {
	// Configure connection pool for MySQL
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	// Ensure foreign key checks are enabled
	if _, err := db.Exec("SET FOREIGN_KEY_CHECKS = 1;"); err != nil {
		return err
	}

	return nil
}

func (d *MySQLDialect) SchemaStatements() []string {
	return []string{
		"CREATE TABLE IF NOT EXISTS users (" +
			"id BIGINT AUTO_INCREMENT PRIMARY KEY, " +
			"provider VARCHAR(32) NOT NULL, " +
			"provider_id VARCHAR(191) NOT NULL, " +
			"name VARCHAR(255) NOT NULL, " +
			"nickname VARCHAR(255) NOT NULL DEFAULT '', " +
			"avatar_url TEXT, " +
			"email VARCHAR(255) NOT NULL DEFAULT '', " +
			"access_token VARCHAR(191), " +
			"created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6), " +
			"updated_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6), " +
			"UNIQUE KEY uniq_provider_identity (provider, provider_id), " +
			"KEY idx_users_access_token (access_token)" +
			");",
		"CREATE TABLE IF NOT EXISTS families (" +
			"id BIGINT AUTO_INCREMENT PRIMARY KEY, " +
			"name VARCHAR(255) NOT NULL, " +
			"avatar TEXT, " +
			"created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6)" +
			");",
		"CREATE TABLE IF NOT EXISTS family_members (" +
			"id BIGINT AUTO_INCREMENT PRIMARY KEY, " +
			"family_id BIGINT NOT NULL, " +
			"user_id BIGINT NOT NULL, " +
			"role VARCHAR(16) NOT NULL DEFAULT 'member', " +
			"joined_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6), " +
			"UNIQUE KEY uniq_family_member (family_id, user_id), " +
			"FOREIGN KEY (family_id) REFERENCES families(id) ON DELETE CASCADE, " +
			"FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE" +
			");",
		"CREATE TABLE IF NOT EXISTS messages (" +
			"id BIGINT AUTO_INCREMENT PRIMARY KEY, " +
			"family_id BIGINT NOT NULL, " +
			"content_type VARCHAR(32) NOT NULL, " +
			"url TEXT, " +
			"text TEXT, " +
			"user_id BIGINT NOT NULL, " +
			"tags TEXT, " +
			"comments MEDIUMTEXT, " +
			"created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6), " +
			"KEY idx_messages_family (family_id), " +
			"FOREIGN KEY (family_id) REFERENCES families(id) ON DELETE CASCADE, " +
			"FOREIGN KEY (user_id) REFERENCES users(id)" +
			");",
	}
}
