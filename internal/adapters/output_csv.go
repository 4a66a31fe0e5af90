package adapters

import (
	"encoding/csv"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"nsxfint/internal/ports"
	"nsxfint/internal/types"
)

// activeCell is how an active feature renders in the output table.
// Inactive features render as an empty cell.
const activeCell = "True"

// OutputCSVAdapter writes the resolved per-VM feature report as
// comma-delimited text.
type OutputCSVAdapter struct{}

func NewOutputCSVAdapter() OutputCSVAdapter {
	return OutputCSVAdapter{}
}

// WriteReport serializes the rows with columns Name, one per catalog
// feature, then NSX Edition. An existing file at path is overwritten.
func (a OutputCSVAdapter) WriteReport(path string, features []types.FeatureDefinition, rows []types.ResolvedRow) error {
	file, err := os.Create(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output file").
			WithCause(err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := make([]string, 0, len(features)+2)
	header = append(header, "Name")
	for _, feature := range features {
		header = append(header, feature.Name)
	}
	header = append(header, "NSX Edition")
	if err := writer.Write(header); err != nil {
		return writeError(err)
	}

	for _, row := range rows {
		record := make([]string, 0, len(features)+2)
		record = append(record, row.Name)
		for _, active := range row.Active {
			if active {
				record = append(record, activeCell)
			} else {
				record = append(record, "")
			}
		}
		record = append(record, string(row.Edition))
		if err := writer.Write(record); err != nil {
			return writeError(err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return writeError(err)
	}
	if err := file.Close(); err != nil {
		return writeError(err)
	}
	return nil
}

func writeError(err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to write output file").
		WithCause(err)
}

var _ ports.ReportWriterPort = OutputCSVAdapter{}
