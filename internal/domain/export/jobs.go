package export

import (
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// Job ticket lifecycle. Tickets only ever move forward:
// processing → ready, or processing → failed.
type JobStatus string

const (
	StatusProcessing JobStatus = "processing"
	StatusReady      JobStatus = "ready"
	StatusFailed     JobStatus = "failed"
)

// ErrJobNotFound is returned when a ticket has expired or never existed.
var ErrJobNotFound = errors.New("export: job not found")

// Job is the ticket handed back to a client that requested an asynchronous
// export, polled via the status endpoint until it leaves processing.
type Job struct {
	ID          string    `json:"job_id"`
	Status      JobStatus `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	Mode        string    `json:"mode"`
	DownloadURL string    `json:"download_url,omitempty"`
	Error       string    `json:"error,omitempty"`
}

// JobStore keeps export tickets in a TTL cache so abandoned jobs expire on
// their own instead of leaking.
type JobStore struct {
	jobs *cache.Cache
}

// NewJobStore creates a store whose tickets expire after ttl.
func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{jobs: cache.New(ttl, ttl/2)}
}

// Put stores a ticket.
func (s *JobStore) Put(j Job) {
	s.jobs.Set(j.ID, j, cache.DefaultExpiration)
}

// Get returns a ticket by id.
func (s *JobStore) Get(id string) (Job, bool) {
	v, ok := s.jobs.Get(id)
	if !ok {
		return Job{}, false
	}
	return v.(Job), true
}

// Transition moves a ticket from processing to a terminal state, applying
// update to fill in the outcome fields. Any other transition is a
// programmer error.
func (s *JobStore) Transition(id string, to JobStatus, update func(*Job)) error {
	j, ok := s.Get(id)
	if !ok {
		return ErrJobNotFound
	}
	if j.Status != StatusProcessing {
		return fmt.Errorf("export: illegal transition %s → %s for %s", j.Status, to, id)
	}
	if to != StatusReady && to != StatusFailed {
		return fmt.Errorf("export: illegal target state %s for %s", to, id)
	}
	j.Status = to
	if update != nil {
		update(&j)
	}
	s.Put(j)
	return nil
}
