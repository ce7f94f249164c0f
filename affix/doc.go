// Package affix implements Aspell's affix engine: compiling a compact
// prefix/suffix rule language into an indexed, subset-ordered match
// structure, and using it to decide whether a surface word is a legal
// inflection of some root word held by a dictionary collaborator.
//
// The engine is split into a handful of cooperating pieces:
//
//   - Condition: a compiled per-position byte-class bitmap (condition.go)
//   - Entry / Store: compiled rules and their by-flag/by-key indexes (entry.go, store.go)
//   - ParseFile / ParseFileWithConfig: the affix rule-file parser, and the Config governing its limits (parser.go, config.go)
//   - Checker: prefix/suffix/cross-product matching against a Dictionary (checker.go)
//   - Munch / BulkMunch: decomposing surface words into (root, flags) pairs (munch.go, bulkmunch.go)
//   - Expand: generating surface forms from a root and flag list (expand.go)
//   - CasePattern / GetWord: case normalization and reconstruction (case.go)
//
// A *Store is built once by ParseFile and is immutable and safe for
// concurrent read-only use afterward; every other type in this package is
// either a call-local scratch value or a thin view over the Store's
// internal arena.
package affix
