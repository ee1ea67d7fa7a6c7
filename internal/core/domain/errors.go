package domain

import "go.trai.ch/zerr"

var (
	// ErrNodeNotFound is returned when a node id does not resolve in the registry.
	ErrNodeNotFound = zerr.New("node not found")

	// ErrParentNotFound is returned when a node references a parent that is not registered.
	ErrParentNotFound = zerr.New("parent node not found")

	// ErrNoChildren is returned when expanding a node that has no children.
	ErrNoChildren = zerr.New("No child nodes available")

	// ErrTargetUnresolved is returned when an interaction target cannot be mapped to a node.
	ErrTargetUnresolved = zerr.New("interaction target could not be resolved to a node")

	// ErrCycleDetected is returned when a parent link would close a loop in the tree.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrDepthExceeded is returned when a subtree walk goes deeper than the configured bound.
	ErrDepthExceeded = zerr.New("subtree depth limit exceeded")

	// ErrNoSelection is returned when a form is submitted without a selected node.
	ErrNoSelection = zerr.New("no node selected")

	// ErrNoPendingMode is returned when a form is submitted without an add or edit mode pending.
	ErrNoPendingMode = zerr.New("no add or edit action pending")

	// ErrInvalidSeed is returned when a seed record is malformed.
	ErrInvalidSeed = zerr.New("invalid seed record")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file is found walking up from the working directory.
	ErrConfigNotFound = zerr.New("could not find kin.yaml")

	// ErrRenderFailed is returned when a scene cannot be rasterized.
	ErrRenderFailed = zerr.New("failed to render scene")

	// ErrEmptyScene is returned when rendering a scene with no visible content.
	ErrEmptyScene = zerr.New("scene has no visible nodes")

	// ErrLoopClosed is returned when work is submitted to a stopped event loop.
	ErrLoopClosed = zerr.New("event loop is not running")

	// ErrWatcherFailed is returned when the seed watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to start seed watcher")
)

// Tag attaches metadata to a sentinel while keeping it matchable with errors.Is.
func Tag(sentinel error, key string, value any) error {
	return zerr.With(zerr.Wrap(sentinel, ""), key, value)
}
