// Package loader reads per-instance input files and assembles them into
// scheduling problem instances.
//
// Each instance is described by four files sharing one naming convention
// (resolved by the config package): a machine-environment document, a cast
// document, a due-date document, and a tabular process-time file. The
// parsers in this package each handle one format, open and close their file
// deterministically, and normalize the content into the maps and sequences
// of the scc package.
//
// Assembly is lazy: Iterator yields one fully parsed Problem per configured
// instance index, in index-list order, reading nothing ahead of the
// caller's pull. The first failing file terminates the sequence; there is
// no retry and no partial instance.
//
// Error classification:
//
//   - FileAccessError: the path does not exist or cannot be read.
//   - SchemaError: the file was readable but violates its format rules
//     (missing sequence key, wrong column set, non-integer value).
//
// Configuration problems (missing encoding, missing index list) surface as
// the config package's error types.
package loader
