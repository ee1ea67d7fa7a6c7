package domain

import "path/filepath"

const (
	// KinDirName is the name of the internal workspace directory.
	KinDirName = ".kin"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "kin.yaml"

	// SceneFileName is the default name of an exported scene.
	SceneFileName = "scene.png"

	// DefaultServerAddr is the address the HTTP API listens on when none is configured.
	DefaultServerAddr = "127.0.0.1:4200"

	// DefaultExpandID is the node expanded right after the initial draw.
	DefaultExpandID = "group-2"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultScenePath returns the default path for exported scenes.
// It joins .kin and scene.png.
func DefaultScenePath() string {
	return filepath.Join(KinDirName, SceneFileName)
}
