package buffer

// Snapshot provides a read-only view of a buffer at a specific point in time.
// It exposes the same queries as Buffer (Text, LineSlice, CoordinateToOffset,
// OffsetToCoordinate and friends) and never changes after creation, so it is
// safe to hand to a renderer running on another goroutine.
type Snapshot struct {
	text
	revisionID RevisionID
}

// RevisionID returns the revision this snapshot was taken at.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}
