package adapters

import (
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nsxfint/internal/types"
)

func TestEmbeddedCatalogLoads(t *testing.T) {
	adapter := NewCatalogEmbedAdapter()
	features, err := adapter.LoadFeatures()
	require.NoError(t, err)
	require.NotEmpty(t, features)

	// Every bundled edition must belong to the closed edition set and
	// every bit must be positive.
	for _, feature := range features {
		_, ok := types.EditionRank(feature.Edition)
		assert.True(t, ok, "feature %s has unrecognized edition %q", feature.Name, feature.Edition)
		assert.Positive(t, feature.Bit, "feature %s", feature.Name)
	}

	assert.Equal(t, "Distributed Switching", features[0].Name)
	assert.Equal(t, uint64(1), features[0].Bit)
	assert.Equal(t, types.EditionBase, features[0].Edition)
}

func TestParseCatalogCSVDropsIncompleteRows(t *testing.T) {
	raw := strings.Join([]string{
		"NSX Feature Name,NSXFINT,Edition,Notes",
		"Micro-segmentation,4,Advanced,kept",
		",8,Base,missing name",
		"No Bit,,Professional,missing bit",
		"Bad Bit,abc,Professional,unparsable bit",
		"No Edition,16,,missing edition",
		"Edge VPN,256,Advanced,kept",
	}, "\n")

	features, err := parseCatalogCSV(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, features, 2)
	assert.Equal(t, "Micro-segmentation", features[0].Name)
	assert.Equal(t, "Edge VPN", features[1].Name)
}

func TestCatalogFileAdapter(t *testing.T) {
	adapter := NewCatalogFileAdapter("../../fixtures/catalog-override.yaml")
	features, err := adapter.LoadFeatures()
	require.NoError(t, err)

	// Two entries carry missing fields and are dropped.
	require.Len(t, features, 2)
	assert.Equal(t, "Micro-segmentation", features[0].Name)
	assert.Equal(t, uint64(4), features[0].Bit)
	assert.Equal(t, types.EditionAdvanced, features[0].Edition)
	assert.Equal(t, "Distributed Firewall", features[1].Name)
	assert.Equal(t, types.EditionProfessional, features[1].Edition)
}

func TestCatalogFileAdapterMissingFile(t *testing.T) {
	adapter := NewCatalogFileAdapter("nope.yaml")
	_, err := adapter.LoadFeatures()
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
