package metrics

import (
	"sync"
	"time"
)

type FakeRecorder struct {
	Outcomes map[string][]string
	lock     sync.Mutex
}

func NewFakeRecorder() *FakeRecorder {
	return &FakeRecorder{Outcomes: make(map[string][]string)}
}

func (r *FakeRecorder) RecordOutcome(operation string, outcome string, duration time.Duration) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Outcomes[operation] = append(r.Outcomes[operation], outcome)
}
