package storage

import "context"

// Storage keys, one per collection. Values are opaque text blobs; only the
// codec interprets their structure.
const (
	CoursesKey     = "@courses"
	AssignmentsKey = "@assignments"
)

// Store is the opaque key-value store behind the collections. Load returns
// ok=false when the key was never written. Save overwrites the whole value;
// there is no coupling between keys.
type Store interface {
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	Save(ctx context.Context, key, value string) error
}
