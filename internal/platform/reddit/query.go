package reddit

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// Mode selects which reddit resource a Query fetches.
type Mode string

const (
	// ModeList fetches the hot listing of a subreddit.
	ModeList Mode = "list"

	// ModeComments fetches a post and its comment tree by permalink.
	ModeComments Mode = "comments"
)

// Query validation errors.
var (
	ErrMissingSub       = errors.New("missing sub")
	ErrInvalidPermalink = errors.New("missing or invalid permalink")
	ErrInvalidMode      = errors.New("invalid mode")
)

// Query describes one proxied fetch.
type Query struct {
	Mode      Mode
	Sub       string
	Permalink string

	// Limit is the requested item count. Zero means the client default.
	Limit int
}

// ParseQuery reads mode, sub, permalink and limit from query parameters.
// mode defaults to list. A limit that is missing, unparsable or not
// positive is left as zero.
func ParseQuery(values url.Values) (Query, error) {
	q := Query{Mode: ModeList}
	if m := values.Get("mode"); m != "" {
		q.Mode = Mode(m)
	}

	if n, err := strconv.Atoi(strings.TrimSpace(values.Get("limit"))); err == nil && n > 0 {
		q.Limit = n
	}

	switch q.Mode {
	case ModeList:
		q.Sub = values.Get("sub")
		if q.Sub == "" {
			return Query{}, ErrMissingSub
		}
	case ModeComments:
		q.Permalink = values.Get("permalink")
		if !strings.HasPrefix(q.Permalink, "/") {
			return Query{}, ErrInvalidPermalink
		}
	default:
		return Query{}, ErrInvalidMode
	}

	return q, nil
}
