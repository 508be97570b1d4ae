package metrics

import "time"

type Recorder interface {
	RecordOutcome(operation string, outcome string, duration time.Duration)
}
