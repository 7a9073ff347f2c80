// Package plugin coordinates modsync with the package manager's lifecycle.
//
// Package events are recorded in an Accumulator as they arrive. Nothing is
// published until post-autoload-dump, when the Coordinator flushes once:
// it removes the assets of uninstalled modules, publishes the full asset
// map, repairs permissions and resets the accumulator.
//
// When modsync runs as a script hook it does not see individual package
// events. Diff replays them by comparing installed.json with the State
// recorded by the previous run.
package plugin
