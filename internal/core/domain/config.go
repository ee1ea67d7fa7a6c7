package domain

// Config is the resolved project configuration.
type Config struct {
	// Root is the directory holding the config file, empty when running on defaults.
	Root string
	// SeedPath is the file the seed was read from, empty for the built-in seed.
	SeedPath string
	// Seed is the initial forest.
	Seed []*TreeNode
	// ExpandID is the node toggled open after the initial draw.
	ExpandID string
	Server   ServerConfig
	Canvas   CanvasConfig
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string
}

// CanvasConfig configures the drawing surface and the layout constants.
type CanvasConfig struct {
	// OffsetLeft and OffsetTop locate the surface on the page.
	OffsetLeft  float64
	OffsetTop   float64
	NodeWidth   float64
	NodeHeight  float64
	VerticalGap float64
	MaxDepth    int
	Background  string
	// Margin pads exported images around the visible nodes.
	Margin float64
}

// DefaultCanvas returns the stock surface settings.
func DefaultCanvas() CanvasConfig {
	return CanvasConfig{
		NodeWidth:   DefaultNodeWidth,
		NodeHeight:  DefaultNodeHeight,
		VerticalGap: VerticalGap,
		MaxDepth:    DefaultMaxDepth,
		Background:  "white",
		Margin:      20,
	}
}

// DefaultConfig returns the configuration used when no kin.yaml exists.
func DefaultConfig() *Config {
	return &Config{
		Seed:     DefaultSeed(),
		ExpandID: DefaultExpandID,
		Server:   ServerConfig{Addr: DefaultServerAddr},
		Canvas:   DefaultCanvas(),
	}
}
