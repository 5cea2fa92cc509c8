// Package testutil provides helpers for tests that exercise the binding:
// temporary fixture staging, geometry equivalence assertions, and scoped
// suppression of the engine's diagnostic log for tests that expect errors.
package testutil
