package usecase

// IndexabilityPolicy gates search-engine indexability on published-listing
// counts. The threshold is a single configuration value shared by every
// page kind that enumerates listings; page kinds that do not depend on
// listing counts (home, static, single listing, single attraction) bypass
// this policy entirely.
type IndexabilityPolicy struct {
	MinPublished int
}

// IsIndexable is monotonic in the published count.
func (p IndexabilityPolicy) IsIndexable(publishedCount int) bool {
	return publishedCount >= p.MinPublished
}
