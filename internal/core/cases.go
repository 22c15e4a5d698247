package core

import "github.com/MightyBhargava/LegalChain-sub001/internal/domain"

// Mutation rules for the case collection. All rules are total: unsupported
// inputs degrade to no-ops, never errors. A rule that changes nothing returns
// its input slice unchanged.

// UpsertCase appends c, or replaces the existing record when the id is
// already present (last write wins by id).
func UpsertCase(items []domain.Case, c domain.Case) []domain.Case {
	for i := range items {
		if items[i].CaseID == c.CaseID {
			out := make([]domain.Case, len(items))
			copy(out, items)
			out[i] = c
			return out
		}
	}
	out := make([]domain.Case, len(items), len(items)+1)
	copy(out, items)
	return append(out, c)
}

// UpdateCase replaces the record matching c's id in its entirety. When the id
// is absent the collection is returned unchanged.
func UpdateCase(items []domain.Case, c domain.Case) []domain.Case {
	for i := range items {
		if items[i].CaseID == c.CaseID {
			out := make([]domain.Case, len(items))
			copy(out, items)
			out[i] = c
			return out
		}
	}
	return items
}

// RemoveCase filters out the record with the given id. Removing an absent id
// is a no-op.
func RemoveCase(items []domain.Case, id string) []domain.Case {
	for i := range items {
		if items[i].CaseID == id {
			out := make([]domain.Case, 0, len(items)-1)
			out = append(out, items[:i]...)
			return append(out, items[i+1:]...)
		}
	}
	return items
}
