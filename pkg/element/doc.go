// Package element defines the virtual element tree consumed by the
// serializer.
//
// A tree is built from Node values: text, numbers, sequences, tagged
// elements, fragments, raw HTML payloads and component references. Nodes
// are plain immutable-in-place values consumed during a single render;
// nothing persists between calls.
//
// Trees are built either with the El/Fragment/Text builders:
//
//	node := element.El("div", element.Class("card"),
//	    element.El("h2", "Title"),
//	    element.El("p", "Body text"),
//	)
//
// or decoded from their stored JSON form with DecodeNode.
package element
