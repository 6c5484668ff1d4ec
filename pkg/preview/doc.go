// Package preview provides the development preview server: it renders
// submitted element trees or block documents to markup over HTTP and
// pushes every render to connected WebSocket clients so open previews
// stay current.
//
// Routes:
//
//	POST /render         render a stored element tree (JSON body)
//	POST /render/blocks  render a block document (JSON array body)
//	GET  /ws             live-preview WebSocket
//	GET  /healthz        health probe
//	GET  /metrics        Prometheus metrics
//
// Query parameters on the render routes: beautify=1 enables indented
// output, page=1 wraps the result in a full HTML document, title sets
// the document title.
package preview
