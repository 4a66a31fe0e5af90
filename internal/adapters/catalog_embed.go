package adapters

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	_ "embed"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"nsxfint/internal/ports"
	"nsxfint/internal/types"
)

// nsx_features.csv is the bundled reference catalog mapping NsxFInt
// bits to feature names and minimum editions.
//
//go:embed nsx_features.csv
var nsxFeaturesCSV string

// CatalogEmbedAdapter serves the feature catalog shipped with the
// binary.
type CatalogEmbedAdapter struct{}

func NewCatalogEmbedAdapter() CatalogEmbedAdapter {
	return CatalogEmbedAdapter{}
}

func (a CatalogEmbedAdapter) LoadFeatures() ([]types.FeatureDefinition, error) {
	return parseCatalogCSV(strings.NewReader(nsxFeaturesCSV))
}

func parseCatalogCSV(r io.Reader) ([]types.FeatureDefinition, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse feature catalog").
			WithCause(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	nameCol, bitCol, editionCol := -1, -1, -1
	for i, header := range rows[0] {
		switch strings.TrimSpace(header) {
		case "NSX Feature Name":
			nameCol = i
		case "NSXFINT":
			bitCol = i
		case "Edition":
			editionCol = i
		}
	}
	if nameCol < 0 || bitCol < 0 || editionCol < 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("feature catalog is missing required columns")
	}

	var features []types.FeatureDefinition
	for _, row := range rows[1:] {
		bit, _ := strconv.ParseUint(strings.TrimSpace(cell(row, bitCol)), 10, 64)
		features = appendCatalogRow(features, types.FeatureDefinition{
			Name:    cell(row, nameCol),
			Bit:     bit,
			Edition: types.Edition(cell(row, editionCol)),
		})
	}
	return features, nil
}

// appendCatalogRow applies the catalog row filter: rows with a missing
// required field, or a bit value that is not a positive integer, are
// dropped rather than failing the load.
func appendCatalogRow(features []types.FeatureDefinition, feature types.FeatureDefinition) []types.FeatureDefinition {
	feature.Name = strings.TrimSpace(feature.Name)
	feature.Edition = types.Edition(strings.TrimSpace(string(feature.Edition)))
	if feature.Name == "" || feature.Bit == 0 || feature.Edition == types.EditionNone {
		return features
	}
	return append(features, feature)
}

func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}

var _ ports.FeatureCatalogPort = CatalogEmbedAdapter{}
