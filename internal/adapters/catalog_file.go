package adapters

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"nsxfint/internal/ports"
	"nsxfint/internal/types"
)

type catalogDocument struct {
	Features []catalogEntry `yaml:"features"`
}

type catalogEntry struct {
	Name    string `yaml:"name"`
	Bit     uint64 `yaml:"bit"`
	Edition string `yaml:"edition"`
}

// CatalogFileAdapter loads a user-supplied feature catalog, used when
// the bundled table lags behind a newer NSX release.
type CatalogFileAdapter struct {
	Path string
}

func NewCatalogFileAdapter(path string) CatalogFileAdapter {
	return CatalogFileAdapter{Path: path}
}

func (a CatalogFileAdapter) LoadFeatures() ([]types.FeatureDefinition, error) {
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("catalog file %s does not exist", a.Path)).
			WithCause(err)
	}
	var document catalogDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse catalog yaml").
			WithCause(err)
	}
	var features []types.FeatureDefinition
	for _, entry := range document.Features {
		features = appendCatalogRow(features, types.FeatureDefinition{
			Name:    entry.Name,
			Bit:     entry.Bit,
			Edition: types.Edition(entry.Edition),
		})
	}
	return features, nil
}

var _ ports.FeatureCatalogPort = CatalogFileAdapter{}
