package app

import "nsxfint/internal/types"

type RunRequest struct {
	InputPath   string
	OutputPath  string
	CatalogPath string
	// KeepArtifacts leaves the filtered intermediate report on disk
	// for inspection (debug mode).
	KeepArtifacts bool
}

type RunResult struct {
	VMCount      int
	FeatureCount int
	SkippedLines int
	OutputPath   string
}

type CatalogRequest struct {
	CatalogPath string
}

type CatalogResult struct {
	Features []types.FeatureDefinition
}
