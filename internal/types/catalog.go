package types

// FeatureDefinition maps one NSX feature to the usage-report bit (or
// bit combination) that signals it and the minimum edition that
// licenses it.
type FeatureDefinition struct {
	Name    string
	Bit     uint64
	Edition Edition
}
