// Package blocks converts stored editor blocks into element trees.
//
// A Registry maps block type names (e.g. "core/paragraph") to renderer
// functions. Unknown block types render to nothing so that content
// saved by a newer editor degrades instead of failing.
package blocks
