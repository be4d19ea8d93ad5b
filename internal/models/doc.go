// Package models defines the record types of the roommate ledger.
//
// # Records
//
// The ledger is built from three kinds of records:
//   - Expense: money one roommate spent for the household, split equally
//     across everyone. An Expense with category Settlement is instead a
//     direct payment from one roommate to another.
//   - SharedPurchase: an item bought for a named subset of roommates, or,
//     without a subset, owed in full by the buyer to the payer.
//   - FixedCost: a recurring household cost kept for reference.
//
// Participants are identified by name throughout the ledger. IDs exist for
// deletion only; a deleted participant's name may still appear on older
// records and is carried through the calculations as is.
//
// # Money
//
// All amounts are decimal.Decimal values in the major currency unit. Records
// are validated at the API boundary; the calculation core assumes
// well-formed input.
package models
