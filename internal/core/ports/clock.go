package ports

import "time"

// Clock supplies "now" to use cases so aggregation and transitions stay deterministic in tests.
type Clock interface {
	Now() time.Time
}
