package importer

import "strings"

// Existing describes a record already in the store. An Existing with an
// empty ID marks a key claimed by an earlier row of the same file.
type Existing struct {
	ID      string
	Deleted bool
}

// DuplicateRegistry tracks the unique-key space per entity set. It is
// seeded from the store before a run and grows as rows are accepted, so
// a second row claiming the same key inside one file is caught too.
type DuplicateRegistry struct {
	sets map[string]map[string]Existing
}

func NewDuplicateRegistry() *DuplicateRegistry {
	return &DuplicateRegistry{sets: make(map[string]map[string]Existing)}
}

func dupKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Seed records a key owned by a stored record.
func (r *DuplicateRegistry) Seed(set, key string, e Existing) {
	if strings.TrimSpace(key) == "" {
		return
	}
	m, ok := r.sets[set]
	if !ok {
		m = make(map[string]Existing)
		r.sets[set] = m
	}
	m[dupKey(key)] = e
}

// Claim marks keys as taken by a row in the current file. Keys already
// seeded from the store keep their store entry.
func (r *DuplicateRegistry) Claim(set string, keys ...string) {
	m, ok := r.sets[set]
	if !ok {
		m = make(map[string]Existing)
		r.sets[set] = m
	}
	for _, k := range keys {
		if strings.TrimSpace(k) == "" {
			continue
		}
		nk := dupKey(k)
		if _, taken := m[nk]; !taken {
			m[nk] = Existing{}
		}
	}
}

// Find reports the holder of a key, if any.
func (r *DuplicateRegistry) Find(set, key string) (Existing, bool) {
	if strings.TrimSpace(key) == "" {
		return Existing{}, false
	}
	e, ok := r.sets[set][dupKey(key)]
	return e, ok
}
