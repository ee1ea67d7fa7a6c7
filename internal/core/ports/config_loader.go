package ports

import "go.trai.ch/kin/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers kin.yaml walking up from cwd and resolves it.
	// Without a config file the built-in defaults are returned.
	Load(cwd string) (*domain.Config, error)

	// LoadFile resolves the given config or seed file.
	LoadFile(path string) (*domain.Config, error)

	// DiscoverRoot walks up from cwd to find the directory containing kin.yaml.
	DiscoverRoot(cwd string) (string, error)
}
