package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"nsxfint/internal/types"
)

// Resolver decides, per VM usage record, which catalog features are in
// use and the minimum edition covering that usage.
type Resolver struct {
	catalog []types.FeatureDefinition
	ranks   []int
}

// NewResolver validates the catalog and prepares rank lookups. An
// edition name outside the recognized set is a catalog-integrity
// defect and fails construction.
func NewResolver(ctx context.Context, catalog []types.FeatureDefinition) (Resolver, error) {
	ranks := make([]int, len(catalog))
	for i, feature := range catalog {
		assert.NotEmpty(ctx, feature.Name, "catalog feature name must be set")
		rank, ok := types.EditionRank(feature.Edition)
		if !ok {
			return Resolver{}, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("feature %s has unrecognized edition %q", feature.Name, feature.Edition))
		}
		ranks[i] = rank
	}
	if len(catalog) == 0 {
		log.Ctx(ctx).Warn().Msg("feature catalog is empty, output will have no feature columns")
	}
	return Resolver{catalog: catalog, ranks: ranks}, nil
}

// Resolve computes one output row per usage record, in input order.
// Features are evaluated in catalog order; a feature is active when
// any of its bits are present in the record's mask, and the row's
// edition is the highest rank among active features.
func (r Resolver) Resolve(ctx context.Context, records []types.UsageRecord) []types.ResolvedRow {
	rows := make([]types.ResolvedRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, r.resolveRecord(record))
	}
	log.Ctx(ctx).Debug().Int("vms", len(rows)).Int("features", len(r.catalog)).Msg("resolver completed")
	return rows
}

func (r Resolver) resolveRecord(record types.UsageRecord) types.ResolvedRow {
	row := types.ResolvedRow{
		Name:   record.Name,
		Active: make([]bool, len(r.catalog)),
	}
	maxRank := 0
	for i, feature := range r.catalog {
		if record.Mask&feature.Bit == 0 {
			continue
		}
		row.Active[i] = true
		if r.ranks[i] > maxRank {
			maxRank = r.ranks[i]
		}
	}
	row.Edition = types.EditionAt(maxRank)
	return row
}
