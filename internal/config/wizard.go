package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"

	"github.com/evera-world/legalmigrate/internal/docset"
	"github.com/evera-world/legalmigrate/internal/locale"
)

// detectSiteRoot returns the first of the working directory and its parents
// that holds both reference pages, or "." when none does.
func detectSiteRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if hasReferencePages(dir) {
			if rel, err := filepath.Rel(".", dir); err == nil {
				return rel
			}
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
}

func hasReferencePages(dir string) bool {
	for _, loc := range locale.All {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(loc.ReferencePage()))); err != nil {
			return false
		}
	}
	return true
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to legalmigrate! Let's configure the migration.")
	fmt.Println()

	// 1. Site root.
	rootPrompt := promptui.Prompt{
		Label:   "Site root (directory holding en/pages and pages)",
		Default: detectSiteRoot(),
		Validate: func(s string) error {
			info, err := os.Stat(s)
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return errors.New("not a directory")
			}
			return nil
		},
	}
	siteRoot, err := rootPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site root: %w", err)
	}
	if !hasReferencePages(siteRoot) {
		fmt.Printf("Note: %s does not contain both reference pages yet.\n", siteRoot)
	}

	// 2. Exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Exclude patterns (comma-separated globs, blank for none)",
		Default: "",
		Validate: func(s string) error {
			return docset.ValidatePatterns(splitAndTrim(s))
		},
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	exclude := splitAndTrim(excludeStr)
	if exclude == nil {
		exclude = []string{}
	}

	// 3. Journal.
	journalPrompt := promptui.Select{
		Label: "Record each run in a journal",
		Items: []string{
			"yes (" + DefaultJournalPath + ")",
			"no",
		},
	}
	journalIdx, _, err := journalPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("journal selection: %w", err)
	}
	journalPath := DefaultJournalPath
	if journalIdx == 1 {
		journalPath = ""
	}

	cfg := &Config{
		SiteRoot:    siteRoot,
		Exclude:     exclude,
		JournalPath: journalPath,
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
