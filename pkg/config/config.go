package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var configDir string
var configFilePath string
var credentialsPath string
var stateDir string

// getConfigDir returns platform-specific config directory
func getConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		// Windows: %LOCALAPPDATA%\onesocial\cli
		appData := os.Getenv("LOCALAPPDATA")
		if appData == "" {
			appData = os.Getenv("APPDATA")
		}
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			appData = home
		}
		return filepath.Join(appData, "onesocial", "cli"), nil
	}

	// Unix-like (macOS, Linux): ~/.config/onesocial/cli
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "onesocial", "cli"), nil
}

// getSystemConfigPaths returns platform-specific system config paths
func getSystemConfigPaths() []string {
	if runtime.GOOS == "windows" {
		return []string{filepath.Join(os.Getenv("ProgramFiles"), "OneSocial", "cli", "config.toml")}
	}

	return []string{
		"/etc/onesocial/cli/config.toml",
		"/usr/local/etc/onesocial/cli/config.toml",
	}
}

// Init initializes the configuration
func Init(configPath string) error {
	var err error
	if configPath != "" {
		configDir = filepath.Dir(configPath)
		configFilePath = configPath
	} else {
		configDir, err = getConfigDir()
		if err != nil {
			return err
		}
		configFilePath = filepath.Join(configDir, "config.toml")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	credentialsPath = filepath.Join(configDir, "credentials")
	stateDir = filepath.Join(configDir, "state")

	viper.Reset()
	viper.SetConfigType("toml")
	viper.SetEnvPrefix("ONESOCIAL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// System config is the foundation, user config overrides it
	for _, sysConfigPath := range getSystemConfigPaths() {
		if _, err := os.Stat(sysConfigPath); err == nil {
			viper.SetConfigFile(sysConfigPath)
			_ = viper.ReadInConfig()
			break
		}
	}

	viper.SetConfigFile(configFilePath)
	_ = viper.MergeInConfig()

	return nil
}

func setDefaults() {
	viper.SetDefault("api.base_url", "http://localhost:8000/api")
	viper.SetDefault("api.timeout", 30)
	viper.SetDefault("api.retries", 2)
	viper.SetDefault("web.base_url", "http://localhost:3000")
	viper.SetDefault("output.format", "text")
	viper.SetDefault("list.page_size", 10)
	viper.SetDefault("search.debounce_ms", 400)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", filepath.Join(configDir, "onesocial-cli.log"))
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetString returns a string configuration value
func GetString(key string) string {
	value := viper.GetString(key)
	if key == "log.file" {
		return expandPath(value)
	}
	return value
}

// GetInt returns an int configuration value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool configuration value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration reads an integer key expressed in the given unit.
func GetDuration(key string, unit time.Duration) time.Duration {
	return time.Duration(viper.GetInt(key)) * unit
}

// SearchDebounce is the quiet period before a typed search is sent.
func SearchDebounce() time.Duration {
	d := GetDuration("search.debounce_ms", time.Millisecond)
	if d <= 0 {
		return 400 * time.Millisecond
	}
	return d
}

// Set overrides a value for the current process only.
func Set(key string, value interface{}) {
	viper.Set(key, value)
}

// SetString sets a string configuration value and persists it
func SetString(key string, value string) error {
	viper.Set(key, value)
	return viper.WriteConfigAs(configFilePath)
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() string {
	return configDir
}

// GetCredentialsPath returns the path to the credentials file
func GetCredentialsPath() string {
	return credentialsPath
}

// GetStateDir returns the directory holding per-view saved locations
func GetStateDir() string {
	return stateDir
}
