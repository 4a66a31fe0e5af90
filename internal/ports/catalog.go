package ports

import "nsxfint/internal/types"

// FeatureCatalogPort supplies the ordered NSX feature catalog.
type FeatureCatalogPort interface {
	LoadFeatures() ([]types.FeatureDefinition, error)
}
