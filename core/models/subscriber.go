package models

import "strings"

// Subscriber represents a notification recipient.
type Subscriber struct {
	ID        uint   `gorm:"column:id;primaryKey"`
	Firstname string `gorm:"column:firstname;size:100"`
	Lastname  string `gorm:"column:lastname;size:100"`
	Email     string `gorm:"column:email;size:255;index"`
	// Servers holds the instance keys this subscriber is interested in.
	Servers []SubscriberServer `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name used by GORM.
func (Subscriber) TableName() string {
	return "subscribers"
}

// SubscriberServer links a subscriber to one instance key.
// No foreign key to server_instances is enforced: a key that was never
// observed is simply never matched.
type SubscriberServer struct {
	ID           uint   `gorm:"column:id;primaryKey"`
	SubscriberID uint   `gorm:"column:subscriber_id;index"`
	ServerKey    string `gorm:"column:server_key;size:64;index"`
}

// TableName overrides the table name used by GORM.
func (SubscriberServer) TableName() string {
	return "subscriber_servers"
}

// FullName returns "firstname lastname" without dangling spaces.
func (s Subscriber) FullName() string {
	return strings.TrimSpace(s.Firstname + " " + s.Lastname)
}

// Keys returns the subscribed instance keys in stored order.
func (s Subscriber) Keys() []string {
	keys := make([]string, 0, len(s.Servers))
	for _, srv := range s.Servers {
		keys = append(keys, srv.ServerKey)
	}
	return keys
}

// SetKeys replaces the subscribed key set. Keys are trimmed, empty keys are
// dropped and duplicates collapse onto their first occurrence.
func (s *Subscriber) SetKeys(keys []string) {
	seen := make(map[string]struct{}, len(keys))
	servers := make([]SubscriberServer, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		servers = append(servers, SubscriberServer{SubscriberID: s.ID, ServerKey: k})
	}
	s.Servers = servers
}

// Subscribes reports whether the subscriber is interested in the given key.
func (s Subscriber) Subscribes(key string) bool {
	for _, srv := range s.Servers {
		if srv.ServerKey == key {
			return true
		}
	}
	return false
}
