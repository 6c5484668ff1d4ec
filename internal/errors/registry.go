package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Decode errors (E1xx)
	"E101": {
		Category:   CategoryDecode,
		Message:    "Invalid element tree",
		Detail:     "The submitted document is not a valid stored element tree.",
		Suggestion: "Check that the payload is JSON and each object node carries a \"tag\" field.",
	},
	"E102": {
		Category:   CategoryDecode,
		Message:    "Invalid block document",
		Detail:     "The submitted document is not a valid block list.",
		Suggestion: "A block document is a JSON array of {type, attrs, inner} objects.",
	},

	// Publish errors (E2xx)
	"E201": {
		Category:   CategoryPublish,
		Message:    "Document upload failed",
		Detail:     "The rendered document could not be written to the object store.",
		Suggestion: "Verify the bucket exists and the credentials allow PutObject.",
	},
	"E202": {
		Category:   CategoryPublish,
		Message:    "Missing bucket",
		Suggestion: "Pass --bucket or set the publisher's Bucket field.",
	},

	// Server errors (E3xx)
	"E301": {
		Category: CategoryServer,
		Message:  "Request body unreadable",
	},

	// CLI errors (E4xx)
	"E401": {
		Category:   CategoryCLI,
		Message:    "Input file unreadable",
		Suggestion: "Pass a readable file path or pipe the document on stdin.",
	},
}
