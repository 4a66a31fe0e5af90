package types

// UsageRecord is one VM row from a Usage Meter (VMH) report. Mask is
// the NsxFInt feature bitmask, already normalized so that absent and
// "-" values read as zero.
type UsageRecord struct {
	Name string
	Mask uint64
}

// UsageReport is the loaded report plus the bookkeeping from the
// line-filter pre-pass.
type UsageReport struct {
	Records []UsageRecord
	// SkippedLines holds the 1-based physical line numbers excluded
	// by the pre-pass because their delimiter count did not match the
	// table.
	SkippedLines []int
	// Filtered is the report content after the pre-pass, kept so
	// debug runs can write it out for inspection.
	Filtered []byte
}

// ResolvedRow is the derived output row for one VM. Active follows
// catalog order, one entry per feature definition.
type ResolvedRow struct {
	Name    string
	Active  []bool
	Edition Edition
}
