package ports

import "nsxfint/internal/types"

// ReportWriterPort serializes resolved rows to the output table.
// Feature columns follow catalog order.
type ReportWriterPort interface {
	WriteReport(path string, features []types.FeatureDefinition, rows []types.ResolvedRow) error
}
