// Package file provides file-backed implementations of the clause
// library driven ports.
//
// Layout under the data directory:
//
//	clauses.json            ordered array of clause objects
//	metadata.json           {favorites, tags, recents}
//	versions/<name>/        timestamped YYYYMMDD_HHMMSS.txt snapshots
//
// Reads are fail-soft: unreadable state logs a warning and behaves as
// an empty store. Writes are fail-loud: a failed save propagates so
// callers know nothing persisted.
package file
