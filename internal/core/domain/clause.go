package domain

// MaxRecents caps the recents list. Inserting beyond the cap evicts
// the oldest entry.
const MaxRecents = 20

// DuplicateThreshold is the similarity ratio at or above which a
// clause is reported as a likely duplicate. Tunable design constant;
// 0.9 matches near-identical wording while tolerating small edits.
const DuplicateThreshold = 0.9

// Clause is a reusable fragment of document text managed
// independently of any single generation request.
type Clause struct {
	// ID is the stable unique identifier.
	ID string `json:"id"`

	// Text is the clause body. May contain template placeholders;
	// clauses are expanded through the same renderer as documents.
	Text string `json:"text"`

	// Tags classify the clause for search.
	Tags []string `json:"tags"`

	// DocType optionally associates the clause with a document type.
	DocType string `json:"doc_type,omitempty"`

	// Jurisdiction optionally scopes the clause to a jurisdiction.
	Jurisdiction string `json:"jurisdiction,omitempty"`
}

// ClauseMetadata is the sidecar state kept alongside the clause list.
type ClauseMetadata struct {
	// Favorites is the set of favourited clause IDs.
	Favorites []string `json:"favorites"`

	// Tags maps clause ID to user-assigned tag strings.
	Tags map[string][]string `json:"tags"`

	// Recents lists recently used clause IDs, most recent first,
	// capped at MaxRecents.
	Recents []string `json:"recents"`
}

// NewClauseMetadata returns empty metadata with initialised containers.
func NewClauseMetadata() ClauseMetadata {
	return ClauseMetadata{
		Favorites: []string{},
		Tags:      make(map[string][]string),
		Recents:   []string{},
	}
}

// TouchRecent moves id to the front of the recents list.
// An already-present id is moved, not duplicated. The list is
// truncated to MaxRecents.
func (m *ClauseMetadata) TouchRecent(id string) {
	recents := make([]string, 0, len(m.Recents)+1)
	recents = append(recents, id)
	for _, r := range m.Recents {
		if r != id {
			recents = append(recents, r)
		}
	}
	if len(recents) > MaxRecents {
		recents = recents[:MaxRecents]
	}
	m.Recents = recents
}

// Favorite adds id to the favourites set.
func (m *ClauseMetadata) Favorite(id string) {
	for _, f := range m.Favorites {
		if f == id {
			return
		}
	}
	m.Favorites = append(m.Favorites, id)
}

// Unfavorite removes id from the favourites set.
func (m *ClauseMetadata) Unfavorite(id string) {
	out := m.Favorites[:0]
	for _, f := range m.Favorites {
		if f != id {
			out = append(out, f)
		}
	}
	m.Favorites = out
}

// IsFavorite reports whether id is favourited.
func (m *ClauseMetadata) IsFavorite(id string) bool {
	for _, f := range m.Favorites {
		if f == id {
			return true
		}
	}
	return false
}

// Forget removes every trace of id: favourites, tags and recents.
// Called when a clause is deleted.
func (m *ClauseMetadata) Forget(id string) {
	m.Unfavorite(id)
	delete(m.Tags, id)
	recents := m.Recents[:0]
	for _, r := range m.Recents {
		if r != id {
			recents = append(recents, r)
		}
	}
	m.Recents = recents
}

// DuplicateMatch pairs an existing clause with its similarity to
// candidate text.
type DuplicateMatch struct {
	// Clause is the existing clause.
	Clause Clause `json:"clause"`

	// Similarity is a normalised sequence-similarity ratio in [0,1].
	Similarity float64 `json:"similarity"`

	// Likely is true when Similarity >= DuplicateThreshold.
	Likely bool `json:"likely"`
}
