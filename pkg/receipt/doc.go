// Package receipt turns entered goods into an assembled receipt.
//
// A Session collects customer fields and a working list of LineItems; every
// add goes through EligibleForList. On submit the working list is frozen by
// Assemble into a Document, folding in the pending entry when
// EligibleForAutoInclude holds. Documents are immutable and their grand total
// is always derived from their items.
package receipt
