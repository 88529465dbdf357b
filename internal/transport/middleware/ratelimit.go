package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// submissionWindow is the period a client's submission allowance covers.
const submissionWindow = time.Minute

// RateLimiter caps public form submissions per client IP using fixed
// one-minute windows. Both forms share one allowance per client.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time

	stop chan struct{}
	done chan struct{}
}

type window struct {
	start time.Time
	count int
}

// NewRateLimiter creates a limiter that drops expired windows every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		windows: make(map[string]*window),
		now:     time.Now,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the cleanup goroutine and waits for it to exit.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
	<-rl.done
}

// Limit returns middleware that admits at most perWindow requests per
// client per minute. Rejected requests get 429 with Retry-After set to the
// seconds left in the client's window.
func (rl *RateLimiter) Limit(perWindow int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			remaining, retry := rl.take(clientIP(r), perWindow)
			if retry > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(int(retry.Round(time.Second)/time.Second)))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"too many submissions, try again later"}` + "\n"))
				return
			}
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			next.ServeHTTP(w, r)
		})
	}
}

// take consumes one request from key's window. It returns the requests left
// or, when the allowance is spent, how long until the window resets.
func (rl *RateLimiter) take(key string, perWindow int) (int, time.Duration) {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	win, ok := rl.windows[key]
	if !ok || now.Sub(win.start) >= submissionWindow {
		win = &window{start: now}
		rl.windows[key] = win
	}
	if win.count >= perWindow {
		retry := win.start.Add(submissionWindow).Sub(now)
		if retry < time.Second {
			retry = time.Second
		}
		return 0, retry
	}
	win.count++
	return perWindow - win.count, 0
}

// clientIP strips the port from RemoteAddr so every connection of one client
// shares a window.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) sweep() {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, win := range rl.windows {
		if now.Sub(win.start) >= submissionWindow {
			delete(rl.windows, key)
		}
	}
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	defer close(rl.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}
