// Package scheme holds the named alignment schemes tonearm knows about.
//
// The built-in table is fixed reference data built once at startup and never
// mutated; callers only ever receive copies. A Catalog layers user-defined
// schemes from configuration on top of the built-ins and resolves names by
// exact match only. A custom name that differs from an existing one only by
// accents or case is rejected.
package scheme
