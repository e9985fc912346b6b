package config

// Config is the top-level legalmigrate configuration, corresponding to
// .legalmigrate.yml.
type Config struct {
	SiteRoot    string   `yaml:"site_root" koanf:"site_root"`
	Exclude     []string `yaml:"exclude" koanf:"exclude"`
	JournalPath string   `yaml:"journal_path" koanf:"journal_path"`
	DryRun      bool     `yaml:"dry_run" koanf:"dry_run"`
}
