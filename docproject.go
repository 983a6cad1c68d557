package docproject

import "context"

// Snapshot is the external document handle consumed by ProjectDocument.
// Implementations expose the document's full data as a key/value record;
// how that data was fetched is the caller's concern.
type Snapshot interface {
	Data() (map[string]any, error)
}

// SnapshotOf wraps an already-decoded record as a Snapshot. JSON-backed
// snapshots, which also convert raw wrapper shapes into the tagged union,
// live in the source package.
func SnapshotOf(doc map[string]any) Snapshot { return mapSnapshot(doc) }

type mapSnapshot map[string]any

func (m mapSnapshot) Data() (map[string]any, error) { return m, nil }

// ProjectDocument unwraps the snapshot's raw data and projects it against the
// given field descriptors. It is a thin adapter over Project; see Project for
// the projection contract.
func ProjectDocument(ctx context.Context, snap Snapshot, fields []Field, opts ...ProjectOpt) (Record, Warnings, error) {
	doc, err := snap.Data()
	if err != nil {
		return nil, nil, err
	}
	return Project(ctx, doc, fields, opts...)
}
