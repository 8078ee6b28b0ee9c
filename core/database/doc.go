// Package database opens the GORM connection that backs the instance and
// subscriber stores.
//
// MySQL is the production driver. SQLite is supported for local runs and
// tests; a ":memory:" name gives every test its own throwaway database.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//	if err := models.Migrate(db); err != nil {
//	    log.Fatal("Migration failed", err)
//	}
package database
