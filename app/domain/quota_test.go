package domain_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identity-dashboard/app/domain"
)

func TestQuotaSet_SubsetAndMerge(t *testing.T) {
	compute := domain.QuotaSet{"instances": 10, "cores": 20, "ram": 51200}
	volume := domain.QuotaSet{"volumes": 10, "gigabytes": 1000}

	merged := domain.QuotaSet{}.Merge(compute).Merge(volume)
	assert.Len(t, merged, 5)

	subset := merged.Subset([]string{"instances", "volumes", "not_a_quota"})
	assert.Equal(t, domain.QuotaSet{"instances": 10, "volumes": 10}, subset)
}

func TestQuotaSet_WithoutDisabled(t *testing.T) {
	qs := domain.QuotaSet{"instances": 10, "floating_ips": 50, "cores": 20}
	qs = qs.WithoutDisabled([]string{"floating_ips"})

	assert.Equal(t, domain.QuotaSet{"instances": 10, "cores": 20}, qs)
}

func TestQuotaSet_ValidateAgainstUsage(t *testing.T) {
	usages := domain.QuotaUsageMap{
		"instances": {Used: 4, Limit: 10},
		"cores":     {Used: 8, Limit: 20},
	}

	tests := []struct {
		name    string
		quotas  domain.QuotaSet
		wantErr bool
	}{
		{
			name:   "limits above usage pass",
			quotas: domain.QuotaSet{"instances": 5, "cores": 8},
		},
		{
			name:   "unlimited always passes",
			quotas: domain.QuotaSet{"instances": domain.QuotaUnlimited},
		},
		{
			name:   "resource without usage entry passes",
			quotas: domain.QuotaSet{"key_pairs": 1},
		},
		{
			name:    "limit below usage rejected",
			quotas:  domain.QuotaSet{"instances": 3},
			wantErr: true,
		},
		{
			name:    "limit below -1 rejected",
			quotas:  domain.QuotaSet{"cores": -5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.quotas.ValidateAgainstUsage(usages)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProjectUsage_WriteCSV(t *testing.T) {
	usage := &domain.ProjectUsage{
		ProjectID: "p1",
		Servers: []domain.ServerUsage{
			{Name: "web-1", VCPUs: 2, RAMMB: 4096, DiskGB: 40, Hours: 122.5, Uptime: 441000, State: "active"},
			{Name: "db-1", VCPUs: 4, RAMMB: 8192, DiskGB: 80, Hours: 3.25, Uptime: 11700, State: "shutoff"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, usage.WriteCSV(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out,
		"Instance Name,VCPUs,RAM (MB),Disk (GB),Usage (Hours),Time since created (Seconds),State\r\n"))
	assert.Contains(t, out, "web-1,2,4096,40,122.50,441000,active\r\n")
	assert.Contains(t, out, "db-1,4,8192,80,3.25,11700,shutoff\r\n")
}

func TestUsageRange(t *testing.T) {
	now := time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC)

	start, end := domain.UsageRange(now, 0)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.March, 14, 23, 59, 59, 0, time.UTC), end)

	start, end = domain.UsageRange(now, 1)
	assert.Equal(t, time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.March, 14, 23, 59, 59, 0, time.UTC), end)
}
