package domain

import "fmt"

// QuotaUnlimited marks a quota with no limit.
const QuotaUnlimited int64 = -1

// ComputeQuotaFields are the compute-service quota resource names.
var ComputeQuotaFields = []string{
	"instances",
	"cores",
	"ram",
	"metadata_items",
	"key_pairs",
	"injected_files",
	"injected_file_content_bytes",
	"server_groups",
	"server_group_members",
}

// VolumeQuotaFields are the block-storage quota resource names.
var VolumeQuotaFields = []string{
	"volumes",
	"snapshots",
	"gigabytes",
}

// NetworkQuotaFields are the network-service quota resource names.
var NetworkQuotaFields = []string{
	"networks",
	"subnets",
	"ports",
	"routers",
	"floating_ips",
	"security_groups",
	"security_group_rules",
}

// QuotaSet maps a resource name to its limit. A limit of QuotaUnlimited
// means the resource is not capped.
type QuotaSet map[string]int64

// Merge overlays other onto the set and returns it.
func (qs QuotaSet) Merge(other QuotaSet) QuotaSet {
	for name, limit := range other {
		qs[name] = limit
	}
	return qs
}

// Subset returns the entries for the given resource names, keeping only the
// names actually present in the set.
func (qs QuotaSet) Subset(names []string) QuotaSet {
	out := make(QuotaSet, len(names))
	for _, name := range names {
		if limit, ok := qs[name]; ok {
			out[name] = limit
		}
	}
	return out
}

// WithoutDisabled strips the named resources from the set.
func (qs QuotaSet) WithoutDisabled(disabled []string) QuotaSet {
	for _, name := range disabled {
		delete(qs, name)
	}
	return qs
}

// QuotaUsage is the amount of a resource currently consumed against its limit.
type QuotaUsage struct {
	Used  int64 `json:"used"`
	Limit int64 `json:"limit"`
}

// QuotaUsageMap maps a resource name to its usage.
type QuotaUsageMap map[string]QuotaUsage

// ValidateAgainstUsage rejects limits set below what the project already
// consumes. Unlimited values always pass; resources with no usage entry pass.
func (qs QuotaSet) ValidateAgainstUsage(usages QuotaUsageMap) error {
	for name, limit := range qs {
		if limit == QuotaUnlimited {
			continue
		}
		if limit < QuotaUnlimited {
			return fmt.Errorf("quota %q must be -1 or greater: got %d", name, limit)
		}
		usage, ok := usages[name]
		if !ok {
			continue
		}
		if limit < usage.Used {
			return fmt.Errorf("%w: quota %q of %d is less than the current usage of %d",
				ErrQuotaBelowUsage, name, limit, usage.Used)
		}
	}
	return nil
}
