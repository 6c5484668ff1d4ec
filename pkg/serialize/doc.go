// Package serialize converts element trees into well-formed HTML5
// fragment text.
//
// The serializer is a pure, synchronous transform: one call walks the
// tree top to bottom and returns the composed string. It handles
//
//   - text and attribute escaping with a minimal, contract-exact
//     character set
//   - attribute name normalization (className, htmlFor) and filtering
//   - boolean and enumerated attribute semantics
//   - ordered style mappings with implicit px units
//   - self-closing tags, fragments and raw HTML passthrough
//   - optional beautified output with tab indentation around
//     non-inline tags
//
// # Basic Usage
//
// To render a tree with compact output:
//
//	html := serialize.RenderToString(node)
//
// To render with a context and beautified output:
//
//	s := serialize.New(serialize.Config{
//	    Context:  element.Context{"theme": "dark"},
//	    Beautify: true,
//	})
//	html := s.RenderToString(node)
//
// # Error Model
//
// The serializer never fails: malformed or unrecognized input renders
// as the empty string. A fault in upstream tree construction is
// therefore masked rather than surfaced; this is accepted behavior for
// a server-side formatting pass where a panic would break a whole page.
//
// # Context Sharing
//
// The traversal context is one map mutated in place. A component's
// ChildContext contribution is visible to its descendants and to every
// node rendered after it, including sibling subtrees. Callers that need
// per-render isolation must supply a fresh context map each call.
package serialize
