// Package config handles editor and generator configuration.
package config

// Config holds all settings shared by the editor and the mapgen CLI.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Editor    EditorConfig    `yaml:"editor"`
	Generator GeneratorConfig `yaml:"generator"`
	Paths     PathsConfig     `yaml:"paths"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// EditorConfig holds interactive editor settings.
type EditorConfig struct {
	HistoryLimit int `yaml:"history_limit"`
	RecentLimit  int `yaml:"recent_limit"`
	CellSize     int `yaml:"cell_size"`
	MapWidth     int `yaml:"map_width"`
	MapHeight    int `yaml:"map_height"`
}

// GeneratorConfig holds procedural generation settings.
type GeneratorConfig struct {
	Seed   uint64 `yaml:"seed"` // 0 picks a time based seed
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Drift  string `yaml:"drift"`  // "random" or "perlin"
	Policy string `yaml:"policy"` // tengo script name under prefabs/scripts, empty for built-in
}

// PathsConfig holds on-disk locations.
type PathsConfig struct {
	GroupsDir string `yaml:"groups_dir"`
	LevelsDir string `yaml:"levels_dir"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Editor: EditorConfig{
			HistoryLimit: 50,
			RecentLimit:  10,
			CellSize:     32,
			MapWidth:     40,
			MapHeight:    22,
		},
		Generator: GeneratorConfig{
			Width:  100,
			Height: 30,
			Drift:  "random",
		},
		Paths: PathsConfig{
			GroupsDir: "prefabs",
			LevelsDir: "levels",
		},
	}
}
