package domain

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// ServerUsage is the resource consumption of one instance over a report range.
type ServerUsage struct {
	Name   string  `json:"name"`
	VCPUs  int     `json:"vcpus"`
	RAMMB  int     `json:"memory_mb"`
	DiskGB int     `json:"local_gb"`
	Hours  float64 `json:"hours"`
	Uptime int64   `json:"uptime"`
	State  string  `json:"state"`
}

// ProjectUsage is a project's aggregated resource usage report.
type ProjectUsage struct {
	ProjectID  string        `json:"project_id"`
	Start      time.Time     `json:"start"`
	End        time.Time     `json:"end"`
	Servers    []ServerUsage `json:"server_usages"`
	TotalVCPUs float64       `json:"total_vcpus_usage"`
	TotalRAMMB float64       `json:"total_memory_mb_usage"`
	TotalDisk  float64       `json:"total_local_gb_usage"`
	TotalHours float64       `json:"total_hours"`
}

// csvHeader matches the usage report column layout consumers rely on.
var csvHeader = []string{
	"Instance Name",
	"VCPUs",
	"RAM (MB)",
	"Disk (GB)",
	"Usage (Hours)",
	"Time since created (Seconds)",
	"State",
}

// WriteCSV streams the per-instance report with CRLF line endings.
func (u *ProjectUsage) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write usage header: %w", err)
	}
	for _, s := range u.Servers {
		record := []string{
			s.Name,
			fmt.Sprintf("%d", s.VCPUs),
			fmt.Sprintf("%d", s.RAMMB),
			fmt.Sprintf("%d", s.DiskGB),
			fmt.Sprintf("%.2f", s.Hours),
			fmt.Sprintf("%d", s.Uptime),
			s.State,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write usage row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// UsageRange resolves the report window ending at now. With daysRange > 0 the
// window reaches back that many days; otherwise it starts at the first day of
// the current month. The end is pinned to the last second of today.
func UsageRange(now time.Time, daysRange int) (time.Time, time.Time) {
	var startDay time.Time
	if daysRange > 0 {
		startDay = now.AddDate(0, 0, -daysRange)
	} else {
		startDay = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	start := time.Date(startDay.Year(), startDay.Month(), startDay.Day(), 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	return start, end
}
