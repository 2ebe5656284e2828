// Package utils provides utility functions shared across the gs-ppe packages.
//
// This package contains the single random-sampling entry point used
// throughout gs: every call that needs a uniform scalar field element goes
// through RandomFieldElement, so swapping in a seeded reader anywhere makes
// the whole call graph deterministic.
package utils
