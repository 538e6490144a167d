// Package travel maps reading progress through a document onto a position
// along a route and the heading to face there.
//
// Every function here is pure. Missing or too-small inputs are reported
// through a false ok value, which callers render as a loading state.
package travel
