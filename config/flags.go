package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagSeed   = flag.Uint64("seed", 0, "Generator seed (0 = time based)")
	flagWidth  = flag.Int("width", 0, "Generated map width in tiles")
	flagHeight = flag.Int("height", 0, "Generated map height in tiles")
	flagDrift  = flag.String("drift", "", "Terrain drift mode: random or perlin")
	flagPolicy = flag.String("policy", "", "Density policy script name")

	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether -save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed != 0 {
		cfg.Generator.Seed = *flagSeed
	}
	if *flagWidth > 0 {
		cfg.Generator.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Generator.Height = *flagHeight
	}
	if *flagDrift != "" {
		cfg.Generator.Drift = *flagDrift
	}
	if *flagPolicy != "" {
		cfg.Generator.Policy = *flagPolicy
	}
}
