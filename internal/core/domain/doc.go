// Package domain defines the core business entities for hnsearch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Item: One search hit returned by the search API
//   - ResultPage: The hits accumulated for one query, page by page
//   - QueryCache: An immutable query -> ResultPage mapping
//   - SortKey / SortState: Presentation-time ordering of hits
//   - FetchState / FetchRequest / FetchResult: The fetch lifecycle
//   - Snapshot: The read-only view handed to display adapters
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
