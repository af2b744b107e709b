package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ignite/mailbox/internal/service/email"
)

var errBadWindow = errors.New("start and stop must be non-negative integers")

// parseWindow extracts the optional pagination window from the query string.
//
// Returns nil (unbounded) when start or stop is absent; the service only
// paginates when both are given. Non-integer or negative values are rejected
// here so the core's InvalidRange guard is a second line, not the first.
func parseWindow(r *http.Request) (*email.Window, error) {
	q := r.URL.Query()
	rawStart, rawStop := q.Get("start"), q.Get("stop")
	if rawStart == "" || rawStop == "" {
		return nil, nil
	}

	start, err := strconv.Atoi(rawStart)
	if err != nil {
		return nil, errBadWindow
	}
	stop, err := strconv.Atoi(rawStop)
	if err != nil {
		return nil, errBadWindow
	}
	if start < 0 || stop < 0 {
		return nil, errBadWindow
	}

	return &email.Window{Start: start, Stop: stop}, nil
}
