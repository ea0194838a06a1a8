// Package domain holds the disaster-response entities (disasters, relief
// resources, reports), the geo math they share, broadcast event shapes and
// the business errors adapters translate into transport responses.
//
// Nothing in this package performs I/O.
package domain
