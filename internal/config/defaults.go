package config

import "path/filepath"

// DefaultConfigFile is the configuration file looked up in the working
// directory.
const DefaultConfigFile = ".legalmigrate.yml"

// DefaultJournalPath is where the run journal lives, relative to the site root.
const DefaultJournalPath = ".legalmigrate/journal.db"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteRoot:    ".",
		Exclude:     []string{},
		JournalPath: DefaultJournalPath,
	}
}

// JournalFile returns the journal location with relative paths resolved
// against the site root. It returns "" when the journal is disabled.
func (c *Config) JournalFile() string {
	if c.JournalPath == "" {
		return ""
	}
	if filepath.IsAbs(c.JournalPath) {
		return c.JournalPath
	}
	return filepath.Join(c.SiteRoot, c.JournalPath)
}
