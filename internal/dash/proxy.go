package dash

import (
	"net/url"
	"strings"
	"time"

	"github.com/pyshield/shieldtop/internal/api"
)

const (
	// MaxRequestRows caps the rendered proxy request table.
	MaxRequestRows = 50
	// MaxURLDisplay is the display width of the URL column; longer URLs are
	// truncated with an ellipsis while the full value stays on the row.
	MaxURLDisplay = 50
)

// RequestRow is one display row of the intercepted-request table.
type RequestRow struct {
	Time        time.Time
	Method      string
	URL         string // full, untruncated value
	DisplayURL  string // truncated for the table column
	Domain      string
	Blocked     bool
	BlockReason string
	ClientIP    string
}

// BuildRequestRows converts an appliance request list into display rows:
// reversed so the newest request comes first, capped at max, with the
// display domain and truncated URL derived per record.
func BuildRequestRows(reqs []api.ProxyRequest, max int) []RequestRow {
	if max <= 0 {
		max = MaxRequestRows
	}

	n := len(reqs)
	if n > max {
		n = max
	}

	rows := make([]RequestRow, 0, n)
	for i := len(reqs) - 1; i >= 0 && len(rows) < n; i-- {
		r := reqs[i]
		rows = append(rows, RequestRow{
			Time:        time.Unix(int64(r.Timestamp), 0),
			Method:      r.Method,
			URL:         r.URL,
			DisplayURL:  truncateURL(r.URL, MaxURLDisplay),
			Domain:      displayDomain(r),
			Blocked:     r.Blocked,
			BlockReason: r.BlockReason,
			ClientIP:    r.ClientIP,
		})
	}
	return rows
}

// displayDomain prefers the record's explicit domain and otherwise parses
// one from the URL. CONNECT targets arrive as bare "host:port" strings,
// which url.Parse only handles with a scheme prefixed.
func displayDomain(r api.ProxyRequest) string {
	if r.Domain != "" {
		return r.Domain
	}

	if u, err := url.Parse(r.URL); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}
	if u, err := url.Parse("http://" + r.URL); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}
	return ""
}

// truncateURL shortens a URL to max characters plus an ellipsis marker.
func truncateURL(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

// methodLabel pads an HTTP method to a fixed table column width.
func methodLabel(method string) string {
	const width = 7 // len("CONNECT")
	if len(method) >= width {
		return method[:width]
	}
	return method + strings.Repeat(" ", width-len(method))
}
