// Package errors provides structured errors with stable codes for the
// decode, publish, server and CLI layers. The serialization core itself
// never fails and does not use this package.
package errors
