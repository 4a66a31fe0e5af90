package adapters

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"nsxfint/internal/ports"
	"nsxfint/internal/shared"
	"nsxfint/internal/types"
)

// reportDelimiters maps recognized input extensions to their field
// delimiter.
var reportDelimiters = map[string]rune{
	".tsv": '\t',
	".csv": ',',
}

// ReportFileAdapter loads Usage Meter (VMH) reports from delimited
// text files.
type ReportFileAdapter struct{}

func NewReportFileAdapter() ReportFileAdapter {
	return ReportFileAdapter{}
}

func (a ReportFileAdapter) LoadUsage(path string) (types.UsageReport, error) {
	delimiter, ok := reportDelimiters[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return types.UsageReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("input file %s is not CSV or TSV", path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.UsageReport{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("input file %s does not exist", path))
		}
		return types.UsageReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read input file").
			WithCause(err)
	}

	filtered, skipped := filterReportLines(string(data), delimiter)
	records, err := parseUsageTable(filtered, delimiter)
	if err != nil {
		return types.UsageReport{}, err
	}
	return types.UsageReport{
		Records:      records,
		SkippedLines: skipped,
		Filtered:     []byte(filtered),
	}, nil
}

// filterReportLines is the line-based pre-pass over the raw report.
// Usage Meter exports interleave metadata lines with fewer delimiters
// than the data table; every line whose delimiter count differs from
// the modal count is excluded before the table is parsed. Blank lines
// are dropped without being reported as skips.
func filterReportLines(content string, delimiter rune) (string, []int) {
	lines := strings.Split(content, "\n")
	counts := make([]int, len(lines))
	frequency := map[int]int{}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			counts[i] = -1
			continue
		}
		counts[i] = strings.Count(line, string(delimiter))
		frequency[counts[i]]++
	}

	// A table row carries at least one delimiter, so zero-delimiter
	// lines never qualify as the modal shape.
	modal, best := 0, 0
	for count, seen := range frequency {
		if count == 0 {
			continue
		}
		if seen > best || (seen == best && count > modal) {
			modal, best = count, seen
		}
	}

	var kept []string
	var skipped []int
	for i, line := range lines {
		switch {
		case counts[i] == -1:
		case counts[i] == modal && modal > 0:
			kept = append(kept, line)
		default:
			skipped = append(skipped, i+1)
		}
	}
	return strings.Join(kept, "\n"), skipped
}

// parseUsageTable interprets the filtered content as a delimited table
// with a header row and extracts the Name and NsxFInt columns.
func parseUsageTable(content string, delimiter rune) ([]types.UsageRecord, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = delimiter
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse input table").
			WithCause(err)
	}
	if len(rows) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("input file contains no data table")
	}

	nameCol, maskCol := -1, -1
	for i, header := range rows[0] {
		switch shared.NormalizeColumnName(header) {
		case "Name":
			if nameCol < 0 {
				nameCol = i
			}
		case "NsxFInt":
			if maskCol < 0 {
				maskCol = i
			}
		}
	}
	if nameCol < 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("input table has no Name column")
	}
	if maskCol < 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("input table has no NsxFInt column")
	}

	records := make([]types.UsageRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := strings.TrimSpace(row[nameCol])
		mask, err := shared.ParseUsageMask(row[maskCol])
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid NsxFInt value %q for VM %s", row[maskCol], name)).
				WithCause(err)
		}
		records = append(records, types.UsageRecord{Name: name, Mask: mask})
	}
	return records, nil
}

var _ ports.UsageReportPort = ReportFileAdapter{}
