// Package scc provides the core problem model for steel continuous-casting
// (SCC) scheduling instances.
//
// This package contains type definitions and the one pure derivation that
// cross-references them (ComposeChargeStages). All other internal packages
// import scc; scc imports nothing internal. This keeps the problem model the
// foundational layer with no circular dependencies.
//
// Vocabulary:
//   - Stage: an ordered step in the production process; owns a set of machines.
//   - Cast: an ordered grouping of charges scheduled together.
//   - Charge: the atomic schedulable unit; has a due date and
//     machine-specific processing times.
//   - Instance: one complete problem dataset, identified by a numeric index.
package scc
