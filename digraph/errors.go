// errors.go — sentinel errors for the digraph package.
//
// digraph currently exposes no validating constructor (a Graph is always
// constructed empty via New and grown by AddOrUpdateEdge/IncrementEdge,
// neither of which rejects any float64 weight), so there is no sentinel
// to define here yet. See proximity/arraygraph/gindex/hpg/collector for
// the <pkg>Errorf(method, format, args...) wrapping convention this
// package's siblings use, mirroring builder/errors.go's builderErrorf.
package digraph
