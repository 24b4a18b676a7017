package domain

import "sort"

// ChangeTracker records which fields of an aggregate were modified so the
// repository can emit an update mutation for those columns only.
type ChangeTracker struct {
	dirty map[string]struct{}
}

// NewChangeTracker creates an empty tracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{dirty: make(map[string]struct{})}
}

// MarkDirty flags a field as modified.
func (ct *ChangeTracker) MarkDirty(field string) {
	ct.dirty[field] = struct{}{}
}

// Dirty reports whether field was modified.
func (ct *ChangeTracker) Dirty(field string) bool {
	_, ok := ct.dirty[field]
	return ok
}

// HasChanges reports whether anything was modified.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirty) > 0
}

// DirtyFields returns the modified fields in sorted order.
func (ct *ChangeTracker) DirtyFields() []string {
	fields := make([]string, 0, len(ct.dirty))
	for f := range ct.dirty {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Clear forgets all modifications.
func (ct *ChangeTracker) Clear() {
	ct.dirty = make(map[string]struct{})
}
