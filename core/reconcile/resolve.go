package reconcile

import "status-notifier/core/models"

// Notification groups the changed instances relevant to one subscriber.
type Notification struct {
	Subscriber models.Subscriber
	Instances  []models.Instance
}

// Resolve maps changed instances to the subscribers watching their keys.
//
// Subscribers appear in order of their first match and only if they match at
// least once. Each subscriber's instances follow the order of changed.
func Resolve(changed []models.Instance, subscribers []models.Subscriber) []Notification {
	watchers := make(map[string][]int)
	for j, sub := range subscribers {
		seen := make(map[string]struct{}, len(sub.Servers))
		for _, key := range sub.Keys() {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			watchers[key] = append(watchers[key], j)
		}
	}

	var out []Notification
	slot := make(map[int]int)
	for _, inst := range changed {
		for _, j := range watchers[inst.Key] {
			i, ok := slot[j]
			if !ok {
				i = len(out)
				slot[j] = i
				out = append(out, Notification{Subscriber: subscribers[j]})
			}
			out[i].Instances = append(out[i].Instances, inst)
		}
	}
	return out
}
