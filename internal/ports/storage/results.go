package storage

// UpdateResult reports how many records a mutation matched and changed.
// Matched == 0 means the target does not exist; Matched > 0 with
// Modified == 0 means it exists but the mutation was a no-op.
type UpdateResult struct {
	Matched  int64 `json:"matched"`
	Modified int64 `json:"modified"`
}

// DeleteResult reports how many records a delete removed.
type DeleteResult struct {
	Deleted int64 `json:"deleted"`
}

func (r UpdateResult) NotFound() bool { return r.Matched == 0 }

func (r UpdateResult) Changed() bool { return r.Modified > 0 }
