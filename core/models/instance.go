package models

// Instance represents a tracked remote service deployment.
type Instance struct {
	// ID is the storage identifier. Zero means the instance was never persisted.
	ID uint `gorm:"column:id;primaryKey" json:"id,omitempty"`
	// Key is the stable external identifier (site/region code).
	Key string `gorm:"column:instance_key;size:64;index" json:"key"`
	// Location is the data center location reported by the remote source.
	Location string `gorm:"column:location;size:128" json:"location"`
	// Environment is the deployment environment (e.g. "production", "sandbox").
	Environment string `gorm:"column:environment;size:64" json:"environment"`
	// ReleaseVersion is the currently deployed release.
	ReleaseVersion string `gorm:"column:release_version;size:64" json:"releaseVersion"`
	// Status is the free-text status label.
	Status string `gorm:"column:status;size:64" json:"status"`
}

// TableName overrides the table name used by GORM.
func (Instance) TableName() string {
	return "server_instances"
}

// Persisted reports whether the instance carries a storage identifier.
func (i Instance) Persisted() bool {
	return i.ID != 0
}

// SameState reports whether two records describe the same observed state.
// Only Key and Status take part in the comparison.
func (i Instance) SameState(other Instance) bool {
	return i.Key == other.Key && i.Status == other.Status
}
