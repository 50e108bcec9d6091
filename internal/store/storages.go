package store

// Storages groups the in-memory repositories of the interactive UI. Nothing
// here outlives the process.
type Storages struct {
	Views ViewRepository
}

// NewStorages returns empty repositories.
func NewStorages() *Storages {
	return &Storages{Views: NewViewRepository()}
}
