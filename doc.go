// Package csvt implements the core of a small interactive tool that tags
// the rows of a bank-statement CSV export, one category per row, and keeps
// the progress in a single JSON state file so a session can be resumed.
//
// The moving parts are:
//   - Mapping: which raw columns hold dates, free-form infos, the debit
//     and credit amounts, and where tags belong.
//   - Line: one parsed, taggable row. Only its tag ever changes.
//   - SheetState: the persisted session. Mapping, lines, cursor, and the
//     header rows kept verbatim for fidelity.
//   - Actions: cursor movements and tag assignments, each one an atomic
//     transition applied to the state and persisted right after.
//   - Summarize: per-tag counts and totals for the final report.
//
// The interactive session lives in the tui package, the CLI in cmd, and
// report rendering in renderer. This package has no terminal knowledge:
// it consumes raw tables and single-line commands, and exposes state.
package csvt
