package config

// configFile represents the structure of the refold.yaml configuration file.
// Pointer fields distinguish "unset" from an explicit false.
type configFile struct {
	Debug          *bool  `yaml:"debug"`
	ContentFiles   *bool  `yaml:"contentFiles"`
	DiagnosticsDir string `yaml:"diagnosticsDir"`
	Evaluator      string `yaml:"evaluator"`
}
