package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// DefaultPath is where init writes the configuration.
const DefaultPath = ".trendview.yml"

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to trendview! Let's configure your viewer.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Snapshot location.
	snapshotPrompt := promptui.Prompt{
		Label:   "Snapshot location (URL or file path)",
		Default: cfg.Snapshot,
	}
	snapshot, err := snapshotPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("snapshot location: %w", err)
	}
	cfg.Snapshot = snapshot

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port for trendview serve",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 3. Language tabs.
	languagesPrompt := promptui.Prompt{
		Label:   "Language tabs (comma-separated)",
		Default: joinComma(cfg.Languages),
	}
	languagesStr, err := languagesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("languages: %w", err)
	}
	if langs := splitAndTrim(languagesStr); len(langs) > 0 {
		cfg.Languages = langs
	}

	// 4. Default language.
	languageSelect := promptui.Select{
		Label: "Default language tab",
		Items: cfg.Languages,
	}
	_, cfg.DefaultLanguage, err = languageSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("default language: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func joinComma(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ","
		}
		out += item
	}
	return out
}
