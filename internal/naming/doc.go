// Package naming decides where converted fonts are written and tracks output
// paths claimed within one batch.
package naming
