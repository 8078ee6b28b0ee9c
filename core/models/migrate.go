package models

import "gorm.io/gorm"

// All lists every model managed by this service, in migration order.
func All() []any {
	return []any{&Instance{}, &Subscriber{}, &SubscriberServer{}}
}

// Migrate creates or updates the tables for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
