// Package finbook implements the core of a personal-finance manager backed
// by flat CSV files. It is designed to be local-first and auditable: the
// account file and the transaction file are plain text a user can read,
// diff, and keep under version control.
//
// The core functionalities include:
//   - Account Store: whole-file CSV persistence of account records keyed by
//     username, with serialized read-modify-write updates.
//   - Transaction Store: append-only CSV persistence of immutable
//     transactions, in a legacy 5-field or an extended 13-field schema.
//   - Canonical Normalizer: free-form amount and time strings turned into
//     canonical values, with currency conversion via a rate source.
//   - Analytics: current-month expense aggregation, textual summaries,
//     abnormal-transaction detection, and budget recommendations.
//
// This package serves as the foundational logic for the `fin` command-line
// tool; the renderer, rates, docs, and agent subpackages build on it.
package finbook
