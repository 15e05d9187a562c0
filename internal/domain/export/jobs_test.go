package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Minute)

	job := Job{ID: "job_1", Status: StatusProcessing, Mode: ModeXLSXFull, CreatedAt: time.Now()}
	store.Put(job)

	got, ok := store.Get("job_1")
	require.True(t, ok)
	assert.Equal(t, job, got)

	_, ok = store.Get("job_nope")
	assert.False(t, ok)
}

func TestJobStore_TransitionToReady(t *testing.T) {
	store := NewJobStore(time.Minute)
	store.Put(Job{ID: "job_1", Status: StatusProcessing})

	err := store.Transition("job_1", StatusReady, func(j *Job) {
		j.DownloadURL = "/exports/job_1.xlsx"
	})
	require.NoError(t, err)

	got, ok := store.Get("job_1")
	require.True(t, ok)
	assert.Equal(t, StatusReady, got.Status)
	assert.Equal(t, "/exports/job_1.xlsx", got.DownloadURL)
}

func TestJobStore_TransitionToFailed(t *testing.T) {
	store := NewJobStore(time.Minute)
	store.Put(Job{ID: "job_1", Status: StatusProcessing})

	err := store.Transition("job_1", StatusFailed, func(j *Job) {
		j.Error = "disk full"
	})
	require.NoError(t, err)

	got, _ := store.Get("job_1")
	assert.Equal(t, StatusFailed, got.Status)
	assert.Equal(t, "disk full", got.Error)
}

func TestJobStore_IllegalTransitions(t *testing.T) {
	store := NewJobStore(time.Minute)

	t.Run("unknown job", func(t *testing.T) {
		err := store.Transition("job_missing", StatusReady, nil)
		assert.ErrorIs(t, err, ErrJobNotFound)
	})

	t.Run("terminal states are final", func(t *testing.T) {
		store.Put(Job{ID: "job_done", Status: StatusProcessing})
		require.NoError(t, store.Transition("job_done", StatusReady, nil))

		err := store.Transition("job_done", StatusFailed, nil)
		assert.Error(t, err)
	})

	t.Run("processing is not a valid target", func(t *testing.T) {
		store.Put(Job{ID: "job_p", Status: StatusProcessing})
		err := store.Transition("job_p", StatusProcessing, nil)
		assert.Error(t, err)
	})
}
