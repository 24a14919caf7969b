// Package model declares the external-collaborator contracts a complete
// inference engine is driven through: a network loader, row-oriented
// observation sources/sinks, and the Model value a loader produces.
// Concrete implementations (HUGIN NET parsing, CSV time-series I/O) are
// out of scope here — only the contracts and the value type they exchange.
package model
