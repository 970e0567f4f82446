// Package kernel provides the shared value objects of the bakery domain model.
//
// The package currently holds UUID, the identifier type used by orders and
// products. Value objects here are immutable and safe for concurrent use; their
// zero values are invalid and rejected by Validate.
package kernel
