package types

// Edition is an NSX license tier. Tiers are totally ordered by
// capability; a higher tier is a superset of every lower one. The
// empty edition means no licensed feature is in use.
type Edition string

const (
	EditionNone           Edition = ""
	EditionBase           Edition = "Base"
	EditionProfessional   Edition = "Professional"
	EditionAdvanced       Edition = "Advanced"
	EditionEnterprisePlus Edition = "Enterprise Plus"
)

// editionOrder fixes the ordinal rank of each edition. Max-reduction
// over ranks picks the minimum edition covering a VM's feature usage.
var editionOrder = []Edition{
	EditionNone,
	EditionBase,
	EditionProfessional,
	EditionAdvanced,
	EditionEnterprisePlus,
}

// EditionRank returns the ordinal rank of an edition, or false when
// the name is not part of the closed edition set.
func EditionRank(e Edition) (int, bool) {
	for rank, candidate := range editionOrder {
		if candidate == e {
			return rank, true
		}
	}
	return 0, false
}

// EditionAt returns the edition name at the given rank. Ranks outside
// the table resolve to the empty edition.
func EditionAt(rank int) Edition {
	if rank < 0 || rank >= len(editionOrder) {
		return EditionNone
	}
	return editionOrder[rank]
}
