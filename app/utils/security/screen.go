package security

import (
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"
)

// RequestScreen flags requests whose parameters carry injection or
// traversal patterns, and tracks repeat offenders by IP.
type RequestScreen struct {
	logger         *slog.Logger
	alertThreshold int
	suspiciousIPs  map[string]*suspiciousActivity
	mutex          sync.RWMutex
}

type suspiciousActivity struct {
	attempts    int
	lastAttempt time.Time
	patterns    []string
}

var (
	sqlInjectionPattern  = regexp.MustCompile(`(?i)(\bunion\b.*\bselect\b|\bselect\b.*\bfrom\b|\bdrop\b.*\btable\b|\binsert\b.*\binto\b|--|;\s*drop)`)
	scriptInjectPattern  = regexp.MustCompile(`(?i)(<script|javascript:|onerror\s*=|onload\s*=)`)
	pathTraversalPattern = regexp.MustCompile(`(\.\./|\.\.\\|%2e%2e)`)
)

// NewRequestScreen creates a request screen.
func NewRequestScreen(logger *slog.Logger) *RequestScreen {
	rs := &RequestScreen{
		logger:         logger.With("component", "request_screen"),
		alertThreshold: 10,
		suspiciousIPs:  make(map[string]*suspiciousActivity),
	}
	go rs.cleanup()
	return rs
}

// Suspicious reports whether the request's path or parameters look like an
// attack, recording the offending IP when they do.
func (rs *RequestScreen) Suspicious(ip, path string, params url.Values) bool {
	var matched []string

	if pathTraversalPattern.MatchString(path) {
		matched = append(matched, "PATH_TRAVERSAL")
	}
	for _, values := range params {
		for _, value := range values {
			if sqlInjectionPattern.MatchString(value) {
				matched = append(matched, "SQL_INJECTION")
			}
			if scriptInjectPattern.MatchString(value) {
				matched = append(matched, "SCRIPT_INJECTION")
			}
			if pathTraversalPattern.MatchString(value) {
				matched = append(matched, "PATH_TRAVERSAL")
			}
		}
	}

	if len(matched) == 0 {
		return false
	}

	rs.record(ip, matched)
	rs.logger.Warn("suspicious request screened",
		"ip", ip,
		"path", path,
		"patterns", strings.Join(matched, ","))
	return true
}

// Blocked reports whether an IP has crossed the repeat-offender threshold.
func (rs *RequestScreen) Blocked(ip string) bool {
	rs.mutex.RLock()
	defer rs.mutex.RUnlock()

	activity, exists := rs.suspiciousIPs[ip]
	return exists && activity.attempts >= rs.alertThreshold
}

func (rs *RequestScreen) record(ip string, patterns []string) {
	rs.mutex.Lock()
	defer rs.mutex.Unlock()

	activity, exists := rs.suspiciousIPs[ip]
	if !exists {
		activity = &suspiciousActivity{}
		rs.suspiciousIPs[ip] = activity
	}
	activity.attempts++
	activity.lastAttempt = time.Now()
	activity.patterns = append(activity.patterns, patterns...)
}

func (rs *RequestScreen) cleanup() {
	for {
		time.Sleep(time.Minute)

		rs.mutex.Lock()
		for ip, activity := range rs.suspiciousIPs {
			if time.Since(activity.lastAttempt) > 10*time.Minute {
				delete(rs.suspiciousIPs, ip)
			}
		}
		rs.mutex.Unlock()
	}
}
