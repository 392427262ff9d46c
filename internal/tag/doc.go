// Package tag owns acceptable-error declarations for test routines.
//
// Ownership boundary:
// - error-type tokens and acceptable sets
// - the routine registry and its definition phase
// - name catalogs for declarations resolved at first use
// - matching policy vocabulary used by external test runners
//
// Running tests and discovering routines belong to the consuming runner.
package tag
