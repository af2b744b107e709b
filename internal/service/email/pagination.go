package email

// Window is a half-open [Start, Stop) index pair over a recipient's inbox.
// A nil *Window means "unbounded": fetch the whole inbox.
type Window struct {
	Start int
	Stop  int
}

// WindowToLimitOffset translates a (start, stop) index pair into the
// (limit, offset) arguments of a bounded fetch.
//
// The HTTP layer rejects negative indices before they reach the service,
// but the guard is repeated here so the contract holds for any caller:
// start < 0, stop < 0, or stop <= start all fail with ErrInvalidRange.
// For every valid pair, limit = stop - start (strictly positive) and
// offset = start.
func WindowToLimitOffset(start, stop int) (limit, offset int, err error) {
	if start < 0 || stop < 0 {
		return 0, 0, ErrInvalidRange
	}
	if stop <= start {
		return 0, 0, ErrInvalidRange
	}
	return stop - start, start, nil
}
