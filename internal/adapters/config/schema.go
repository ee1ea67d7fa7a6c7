package config

import "go.trai.ch/kin/internal/core/domain"

// Kinfile represents the structure of the kin.yaml configuration file.
type Kinfile struct {
	Version string             `yaml:"version"`
	Expand  *string            `yaml:"expand"`
	Seed    string             `yaml:"seed"`
	Server  ServerDTO          `yaml:"server"`
	Canvas  CanvasDTO          `yaml:"canvas"`
	Tree    []*domain.TreeNode `yaml:"tree"`
}

// ServerDTO configures the HTTP API.
type ServerDTO struct {
	Addr string `yaml:"addr"`
}

// CanvasDTO configures the drawing surface. Zero values keep the defaults.
type CanvasDTO struct {
	Offset      OffsetDTO `yaml:"offset"`
	NodeWidth   float64   `yaml:"nodeWidth"`
	NodeHeight  float64   `yaml:"nodeHeight"`
	VerticalGap float64   `yaml:"verticalGap"`
	MaxDepth    int       `yaml:"maxDepth"`
	Background  string    `yaml:"background"`
	Margin      float64   `yaml:"margin"`
}

// OffsetDTO locates the surface on the page.
type OffsetDTO struct {
	Left float64 `yaml:"left"`
	Top  float64 `yaml:"top"`
}
