// Package kernel holds the shared domain primitives of the dispatch service.
//
// It provides:
//   - Location: a validated point on the 10x10 dispatch grid with Manhattan
//     distance between points
//   - UUID: the identifier value object used by all aggregates
//
// Both types are immutable value objects. Their zero values are invalid and
// fail Validate, which forces construction through the provided constructors
// and keeps the rest of the domain model free of bounds checks.
package kernel
