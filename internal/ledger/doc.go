// Package ledger computes who owes whom from the household's records.
//
// The pipeline is a set of pure functions over in-memory slices:
//
//	records -> Aggregate -> Matrix -> Instructions
//
// MonthlyBreakdown re-runs the same pipeline on each calendar month's
// records independently. Nothing is cached; callers recompute whenever their
// records change.
//
// Equal-split expenses are divided across all N participants. Shared
// purchases with a split set are divided across that set only. Settlement
// expenses are direct payments. For participants i and j:
//
//	debt(i, j) = (equalShare[j] - equalShare[i]) / N
//	           + itemDebts[i->j] - itemDebts[j->i]
//	           - directPayments[i->j] + directPayments[j->i]
//
// A positive debt(i, j) means i owes j. The matrix is antisymmetric.
package ledger
