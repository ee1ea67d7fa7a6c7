// Package config provides the configuration loader for kin.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/kin/internal/core/domain"
	"go.trai.ch/kin/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using kin.yaml and seed files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Load discovers kin.yaml from cwd upwards. Without one, the built-in defaults are used.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	root, err := l.DiscoverRoot(cwd)
	if errors.Is(err, domain.ErrConfigNotFound) {
		return domain.DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return l.LoadFile(filepath.Join(root, domain.ConfigFileName))
}

// DiscoverRoot walks up from cwd and returns the first directory holding kin.yaml.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	current := cwd
	for {
		if _, err := os.Stat(filepath.Join(current, domain.ConfigFileName)); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", domain.Tag(domain.ErrConfigNotFound, "cwd", cwd)
		}
		current = parent
	}
}

// LoadFile resolves a kin.yaml file, or a bare seed file in JSON or YAML.
func (l *Loader) LoadFile(path string) (*domain.Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if filepath.Base(abs) != domain.ConfigFileName {
		seed, err := readSeed(abs)
		if err != nil {
			return nil, err
		}
		cfg := domain.DefaultConfig()
		cfg.Root = filepath.Dir(abs)
		cfg.SeedPath = abs
		cfg.Seed = seed
		return cfg, nil
	}

	var kinfile Kinfile
	if err := readAndUnmarshal(abs, &kinfile); err != nil {
		return nil, err
	}
	return l.resolve(abs, &kinfile)
}

func (l *Loader) resolve(configPath string, kf *Kinfile) (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	cfg.Root = filepath.Dir(configPath)
	cfg.SeedPath = configPath

	if kf.Expand != nil {
		cfg.ExpandID = *kf.Expand
	}
	if kf.Server.Addr != "" {
		cfg.Server.Addr = kf.Server.Addr
	}
	applyCanvas(&cfg.Canvas, kf.Canvas)

	switch {
	case kf.Seed != "" && len(kf.Tree) > 0:
		return nil, zerr.With(domain.ErrConfigParseFailed, "reason", "seed and tree are mutually exclusive")
	case kf.Seed != "":
		seedPath := kf.Seed
		if !filepath.IsAbs(seedPath) {
			seedPath = filepath.Join(cfg.Root, seedPath)
		}
		seed, err := readSeed(seedPath)
		if err != nil {
			return nil, err
		}
		cfg.Seed = seed
		cfg.SeedPath = filepath.Clean(seedPath)
	case len(kf.Tree) > 0:
		cfg.Seed = kf.Tree
	default:
		l.Logger.Warn(fmt.Sprintf("no tree defined in %s, using the built-in family", domain.ConfigFileName))
	}

	if err := domain.ValidateSeed(cfg.Seed); err != nil {
		return nil, zerr.With(err, "path", cfg.SeedPath)
	}
	return cfg, nil
}

func applyCanvas(c *domain.CanvasConfig, dto CanvasDTO) {
	c.OffsetLeft = dto.Offset.Left
	c.OffsetTop = dto.Offset.Top
	if dto.NodeWidth > 0 {
		c.NodeWidth = dto.NodeWidth
	}
	if dto.NodeHeight > 0 {
		c.NodeHeight = dto.NodeHeight
	}
	if dto.VerticalGap > 0 {
		c.VerticalGap = dto.VerticalGap
	}
	if dto.MaxDepth > 0 {
		c.MaxDepth = dto.MaxDepth
	}
	if dto.Background != "" {
		c.Background = dto.Background
	}
	if dto.Margin > 0 {
		c.Margin = dto.Margin
	}
}

// readSeed reads a forest stored as a JSON array (the GET /nodes payload) or a YAML list.
func readSeed(path string) ([]*domain.TreeNode, error) {
	var seed []*domain.TreeNode
	if err := readAndUnmarshal(path, &seed); err != nil {
		return nil, err
	}
	if err := domain.ValidateSeed(seed); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return seed, nil
}

// readAndUnmarshal reads a file and decodes it as JSON or YAML depending on its extension.
func readAndUnmarshal[T any](path string, target *T) error {
	// #nosec G304 -- path comes from discovery or the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, target)
	} else {
		err = yaml.Unmarshal(data, target)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}
