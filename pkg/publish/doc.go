// Package publish uploads rendered markup to an S3 bucket so serialized
// documents can be served as static pages.
package publish
