package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings holds the user-tunable configuration loaded from config.yaml.
// Flags may override individual fields after loading.
type Settings struct {
	// BookPath is where the address book is loaded from and saved to.
	BookPath string

	// PageSize controls how many records a "show all" page holds.
	PageSize int

	// Language selects the interface language (ISO 639-1).
	Language string

	// ReminderTrigger is an optional ISO8601 duration (e.g. "-P1D") attached
	// as a VALARM to exported birthday events. Empty disables reminders.
	ReminderTrigger string
}

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Go Contactbook configuration

# Path to the address book file (vCard format)
# book_path: addressbook.vcf

# Records per page for "show all"
# page_size: 5

# Interface language: en, uk
# language: en

# ISO8601 reminder trigger for calendar export, e.g. "-P1D" (1 day before)
# reminder_trigger: ""
`

// ResolveConfigDir returns the configuration directory with precedence:
// --config-dir flag > CONTACTBOOK_CONFIG_DIR env > user config dir.
func ResolveConfigDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrSettingsDir, err)
	}
	return filepath.Join(base, BinaryName), nil
}

// LoadSettings reads config.yaml from the given directory using Viper.
// The directory and a commented default config.yaml are created on first
// run. A missing config file is not an error.
func LoadSettings(configDir string) (*Settings, error) {
	if err := os.MkdirAll(configDir, DirPermUserRWX); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCreateDir, err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault(CfgKeyBookPath, DefaultBookFile)
	v.SetDefault(CfgKeyPageSize, DefaultPageSize)
	v.SetDefault(CfgKeyLanguage, DefaultLanguage)
	v.SetDefault(CfgKeyReminder, DefaultReminder)
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("%s: %w", ErrSettingsRead, err)
		}
	}

	s := &Settings{
		BookPath:        v.GetString(CfgKeyBookPath),
		PageSize:        v.GetInt(CfgKeyPageSize),
		Language:        v.GetString(CfgKeyLanguage),
		ReminderTrigger: v.GetString(CfgKeyReminder),
	}
	if s.PageSize <= 0 {
		s.PageSize = DefaultPageSize
	}
	return s, nil
}

// ensureDefaultConfigFile creates a commented config.yaml if the file does
// not exist yet in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, ConfigFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
