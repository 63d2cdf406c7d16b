// Package fuzztrie implements a path-compressed trie over arbitrary byte
// strings with budget-bounded fuzzy search.
//
// A Trie stores a set of entries (no associated values — membership is all
// that's tracked) and answers four kinds of query: exact membership,
// fuzzy search for the entry closest to a query string within an edit-
// distance budget, substring search for a fuzzy match anywhere inside a
// longer text, and longest-prefix match.
//
// The tree itself is compressed: a chain of nodes with no branching and no
// stored entry ending partway through collapses into a single edge whose
// label is the whole chain's bytes concatenated. This keeps both the
// exact-match descent and the fuzzy search's per-byte work proportional to
// the matched entries rather than to the number of nodes a naive trie
// would allocate.
//
// Fuzzy search considers up to three edit operations: matching a byte
// (free), substituting a byte (one edit), and — when the trie is built
// with allowIndels — inserting into or deleting from the query (one edit
// each). With allowIndels off, fuzzy search only ever considers
// same-length substitutions, i.e. Hamming distance.
//
// The trie has no internal synchronization: concurrent readers are safe as
// long as no mutator runs at the same time, exactly like a plain Go map.
package fuzztrie
