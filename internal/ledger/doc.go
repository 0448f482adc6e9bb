// Package ledger derives the monthly views of a transaction snapshot:
// month partitions, income and expense totals, savings, budget progress
// and the expense breakdown by category.
//
// Every function is pure. Inputs are snapshots taken from the store and are
// never modified; empty or degenerate inputs produce zero values, not errors.
package ledger
