package api

// StatsSnapshot is the full firewall statistics payload from GET /stats.
// Each successful poll replaces the previous snapshot wholesale; snapshots
// are never merged.
type StatsSnapshot struct {
	BlockedIPs    map[string]int `json:"blocked_ips"`
	BlockedURLs   map[string]int `json:"blocked_urls"`
	BlockedPorts  []int          `json:"blocked_ports"`
	ActiveAttacks map[string]int `json:"active_attacks"`
}

// ProxyAggregate is the proxy counter payload from GET /proxy/stats.
type ProxyAggregate struct {
	TotalRequests   int     `json:"total_requests"`
	AllowedRequests int     `json:"allowed_requests"`
	BlockedRequests int     `json:"blocked_requests"`
	BlockRate       float64 `json:"block_rate"`
	ProxyRunning    bool    `json:"proxy_running"`
}

// ProxyRequest is one intercepted request as reported by GET /proxy/requests.
// Domain and BlockReason may be absent; Timestamp is epoch seconds.
type ProxyRequest struct {
	Timestamp   float64 `json:"timestamp"`
	Method      string  `json:"method"`
	URL         string  `json:"url"`
	Domain      string  `json:"domain,omitempty"`
	Blocked     bool    `json:"blocked"`
	BlockReason string  `json:"block_reason,omitempty"`
	ClientIP    string  `json:"client_ip"`
}

// ProxyRequestList is the full GET /proxy/requests response.
type ProxyRequestList struct {
	Requests     []ProxyRequest `json:"requests"`
	ProxyEnabled bool           `json:"proxy_enabled"`
	ProxyPort    int            `json:"proxy_port"`
}

// DDoSSettings is the rate-limit configuration exchanged with the appliance
// via GET /ddos/settings and POST /settings/ddos.
type DDoSSettings struct {
	RequestLimit  int  `json:"request_limit"`
	WindowSeconds int  `json:"window_seconds"`
	BanSeconds    int  `json:"ban_seconds"`
	UseRedis      bool `json:"use_redis,omitempty"`
}

// urlsBody is the request body for /urls/add and /urls/remove.
type urlsBody struct {
	Items []string `json:"items"`
}

// portsBody is the request body for /ports/block and /ports/unblock.
type portsBody struct {
	Ports []int `json:"ports"`
}

// Health is the unauthenticated GET /health response.
type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
