package realtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/noodlebox/timekeep/realtime"
)

// A clock instance for use in other tests
var time Clock

func init() {
	time = NewClock()
}

func TestNowIsMonotonic(t *testing.T) {
	start := time.Now()
	time.Sleep(2 * Millisecond)

	assert.GreaterOrEqual(t, time.Now().Sub(start), 2*Millisecond)
	assert.Less(t, start.Sub(time.Now()), Duration(0))
}

func TestNowCarriesMonotonicReading(t *testing.T) {
	// Round(0) strips the monotonic reading; it is only present on
	// values straight from Now.
	now := time.Now()
	assert.NotEqual(t, now.String(), now.Round(0).String())
}

func BenchmarkNow(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = time.Now()
	}
}
