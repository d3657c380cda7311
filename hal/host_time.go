//go:build !tinygo

package hal

import "time"

type hostClock struct {
	start time.Time
}

func newHostClock() *hostClock {
	return &hostClock{start: time.Now()}
}

func (c *hostClock) Millis() int64 {
	return time.Since(c.start).Milliseconds()
}

func (c *hostClock) SleepMillis(ms int64) {
	if ms <= 0 {
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
