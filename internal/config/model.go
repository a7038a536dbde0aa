package config

// Config represents the pinning.yaml file that sits next to the
// dependency manifest and controls how the requirements file is
// regenerated.
type Config struct {
	Version int    `yaml:"version"`
	Project string `yaml:"project,omitempty"`
	// Output is the path of the generated requirements file, relative
	// to the repository root.
	Output string `yaml:"output"`
	// Exclude lists packages stripped from the export. Entries are
	// either exact package names or namespace prefixes ending in "*"
	// ("certbot-*" covers certbot-apache but not certbotx), compared
	// against normalized names.
	Exclude []string `yaml:"exclude"`
}

// Default returns the configuration used when no pinning.yaml exists.
// The exclusions cover the packages this repository publishes itself.
func Default() *Config {
	return &Config{
		Version: 1,
		Project: "certbot",
		Output:  "tools/requirements.txt",
		Exclude: []string{
			"acme",
			"certbot",
			"certbot-*",
			"letshelp-*",
		},
	}
}
