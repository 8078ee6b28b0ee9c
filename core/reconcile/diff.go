package reconcile

import "status-notifier/core/models"

// ReconcileResult is the plan produced by Reconcile.
type ReconcileResult struct {
	// Upserts are the remote records to persist: new keys (ID zero) and known
	// keys whose state differs (ID carried over from the stored record).
	Upserts []models.Instance

	// Changed are the upserts that are status transitions of known instances.
	Changed []models.Instance

	// EmptyKeys counts remote records that arrived without a key.
	EmptyKeys int

	// changedAt maps Changed[i] to its position in Upserts.
	changedAt []int
}

// Reconcile diffs the remote records against the stored ones, indexed by key.
//
// Remote records with the same key collapse onto one entry: it keeps the
// position of the first occurrence and the content of the last. Records with
// an empty key never match a stored instance and are always planned as
// inserts.
func Reconcile(remote []models.Instance, local map[string]models.Instance) ReconcileResult {
	var res ReconcileResult

	for _, rec := range collapse(remote) {
		if rec.Key == "" {
			res.EmptyKeys++
		}

		stored, found := lookup(local, rec.Key)
		if !found {
			rec.ID = 0
			res.Upserts = append(res.Upserts, rec)
			continue
		}

		if stored.SameState(rec) {
			continue
		}

		rec.ID = stored.ID
		res.changedAt = append(res.changedAt, len(res.Upserts))
		res.Upserts = append(res.Upserts, rec)
		res.Changed = append(res.Changed, rec)
	}

	return res
}

// Surviving returns the changed instances whose upsert was saved. saved is
// indexed like Upserts.
func (r ReconcileResult) Surviving(saved []bool) []models.Instance {
	out := make([]models.Instance, 0, len(r.changedAt))
	for _, i := range r.changedAt {
		if i < len(saved) && saved[i] {
			out = append(out, r.Upserts[i])
		}
	}
	return out
}

// IndexByKey indexes stored instances by key. Instances without a key are
// left out so they can never be matched; on duplicate keys the last wins.
func IndexByKey(instances []models.Instance) map[string]models.Instance {
	index := make(map[string]models.Instance, len(instances))
	for _, inst := range instances {
		if inst.Key == "" {
			continue
		}
		index[inst.Key] = inst
	}
	return index
}

func lookup(local map[string]models.Instance, key string) (models.Instance, bool) {
	if key == "" {
		return models.Instance{}, false
	}
	stored, ok := local[key]
	if !ok || !stored.Persisted() {
		return models.Instance{}, false
	}
	return stored, true
}

func collapse(remote []models.Instance) []models.Instance {
	out := make([]models.Instance, 0, len(remote))
	pos := make(map[string]int, len(remote))
	for _, rec := range remote {
		if rec.Key == "" {
			out = append(out, rec)
			continue
		}
		if i, ok := pos[rec.Key]; ok {
			out[i] = rec
			continue
		}
		pos[rec.Key] = len(out)
		out = append(out, rec)
	}
	return out
}
