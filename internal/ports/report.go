package ports

import "nsxfint/internal/types"

// UsageReportPort loads VM usage records from a delimited report file.
type UsageReportPort interface {
	LoadUsage(path string) (types.UsageReport, error)
}
