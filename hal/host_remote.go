//go:build !tinygo

package hal

import (
	"errors"
	"io"
	"net/http"
	"sync"
	"time"
)

var errRequestActive = errors.New("request already active")

// hostRemote drives one HTTP GET at a time over the desktop network stack.
//
// BeginGet returns immediately; the request runs on a goroutine and
// IsConnected reports false once the response (or the error) is in, which
// is how the firmware transport signals completion.
type hostRemote struct {
	mu        sync.Mutex
	timeoutMS int64
	active    bool
	status    int
	body      []byte
	err       error
}

func (r *hostRemote) SetTimeout(ms int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timeoutMS = ms
}

func (r *hostRemote) BeginGet(url string) error {
	r.mu.Lock()
	if r.active {
		r.mu.Unlock()
		return errRequestActive
	}
	r.active = true
	r.status = 0
	r.body = nil
	r.err = nil
	timeout := time.Duration(r.timeoutMS) * time.Millisecond
	r.mu.Unlock()

	go func() {
		client := &http.Client{Timeout: timeout}
		resp, err := client.Get(url)

		r.mu.Lock()
		defer r.mu.Unlock()
		if err != nil {
			r.err = err
			r.active = false
			return
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		r.status = resp.StatusCode
		r.body = body
		r.err = err
		r.active = false
	}()
	return nil
}

func (r *hostRemote) IsConnected() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

func (r *hostRemote) Status() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

func (r *hostRemote) Body() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.body, r.err
}

func (r *hostRemote) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = 0
	r.body = nil
	r.err = nil
	r.active = false
}
