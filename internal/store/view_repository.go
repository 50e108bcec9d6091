package store

import (
	"time"

	"github.com/MKhiriev/go-arr-keeper/internal/network"
)

type viewRepository struct {
	views map[network.ViewKey]ViewData
	now   func() time.Time
}

// NewViewRepository constructs an empty in-memory [ViewRepository].
func NewViewRepository() ViewRepository {
	return newViewRepository(time.Now)
}

func newViewRepository(now func() time.Time) *viewRepository {
	return &viewRepository{views: make(map[network.ViewKey]ViewData), now: now}
}

func (r *viewRepository) Begin(key network.ViewKey) {
	d := r.views[key]
	d.Loading = true
	r.views[key] = d
}

func (r *viewRepository) Apply(key network.ViewKey, generation uint64, res network.Result) {
	if res.Cancelled() {
		d := r.views[key]
		d.Loading = false
		r.views[key] = d
		return
	}

	if res.Err != nil {
		d := r.views[key]
		d.Loading = false
		d.Err = res.Err
		d.Generation = generation
		r.views[key] = d
		return
	}

	r.views[key] = ViewData{
		Value:       res.Value,
		RefreshedAt: r.now(),
		Generation:  generation,
	}
}

func (r *viewRepository) Read(key network.ViewKey) ViewData {
	return r.views[key]
}

func (r *viewRepository) ClearError(key network.ViewKey) {
	d, ok := r.views[key]
	if !ok {
		return
	}
	d.Err = nil
	r.views[key] = d
}

func (r *viewRepository) Invalidate(key network.ViewKey) {
	delete(r.views, key)
}
