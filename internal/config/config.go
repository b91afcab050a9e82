package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultInputPath  = "dataset/kertagosa.xlsx"
	DefaultOutputPath = "dataset/kertagosa_cleaned.xlsx"

	envPrefix = "DATA_CLEANER"
)

// Config represents the application configuration
type Config struct {
	Input    InputConfig    `mapstructure:"input"`
	Output   OutputConfig   `mapstructure:"output"`
	Log      LogConfig      `mapstructure:"log"`
	Progress ProgressConfig `mapstructure:"progress"`
	Report   ReportConfig   `mapstructure:"report"`
}

// InputConfig holds the source workbook settings
type InputConfig struct {
	Path string `mapstructure:"path"` // Workbook to clean (.xlsx)
}

// OutputConfig holds the cleaned workbook settings
type OutputConfig struct {
	Path string `mapstructure:"path"` // Cleaned workbook (.xlsx); parent dirs are created on save
}

// LogConfig holds logging settings
type LogConfig struct {
	File    string `mapstructure:"file"`    // Log file path, empty for console only
	Verbose bool   `mapstructure:"verbose"` // Show DEBUG logs on console
}

// ProgressConfig holds progress bar settings
type ProgressConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// ReportConfig holds run report settings
type ReportConfig struct {
	Dir     string   `mapstructure:"dir"`     // Report directory, empty for the output file's directory
	Formats []string `mapstructure:"formats"` // Any of json, html, word
}

var reportFormats = map[string]bool{
	"json": true,
	"html": true,
	"word": true,
	"docx": true,
}

// Load reads the configuration from a file or uses defaults
// If configPath is empty, it looks for "config.yaml" in the current directory
// If the file doesn't exist, it uses the defaults
// Environment variables prefixed with DATA_CLEANER_ override both (e.g. DATA_CLEANER_INPUT_PATH)
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	// Read config file (ignore error if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if isNotFound(err) {
			fmt.Println("Config file not found. Using defaults:")
			fmt.Printf("  Input:  %s\n", v.GetString("input.path"))
			fmt.Printf("  Output: %s\n", v.GetString("output.path"))
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.normalizeFormats()

	return &cfg, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
		return true
	}
	return strings.Contains(err.Error(), "no such file") ||
		strings.Contains(err.Error(), "cannot find")
}

// setDefaults configures default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("input.path", DefaultInputPath)
	v.SetDefault("output.path", DefaultOutputPath)

	v.SetDefault("log.file", "")
	v.SetDefault("log.verbose", false)

	v.SetDefault("progress.enabled", true)

	v.SetDefault("report.dir", "")
	v.SetDefault("report.formats", []string{})
}

func (c *Config) normalizeFormats() {
	formats := make([]string, 0, len(c.Report.Formats))
	for _, f := range c.Report.Formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" {
			formats = append(formats, f)
		}
	}
	c.Report.Formats = formats
}

// GetReportDir returns the directory run reports are written to
func (c *Config) GetReportDir() string {
	if c.Report.Dir != "" {
		return c.Report.Dir
	}
	return filepath.Dir(c.Output.Path)
}

// GetReportBase returns the report file path without extension
func (c *Config) GetReportBase() string {
	base := strings.TrimSuffix(filepath.Base(c.Output.Path), filepath.Ext(c.Output.Path))
	return filepath.Join(c.GetReportDir(), base+"_report")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input.Path) == "" {
		return fmt.Errorf("input.path cannot be empty")
	}
	if strings.TrimSpace(c.Output.Path) == "" {
		return fmt.Errorf("output.path cannot be empty")
	}

	if !isWorkbook(c.Input.Path) {
		return fmt.Errorf("input.path must be an .xlsx file: %s", c.Input.Path)
	}
	if !isWorkbook(c.Output.Path) {
		return fmt.Errorf("output.path must be an .xlsx file: %s", c.Output.Path)
	}

	if samePath(c.Input.Path, c.Output.Path) {
		return fmt.Errorf("output.path must differ from input.path: %s", c.Output.Path)
	}

	for _, f := range c.Report.Formats {
		if !reportFormats[strings.ToLower(f)] {
			return fmt.Errorf("unknown report format: %s", f)
		}
	}

	return nil
}

func isWorkbook(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== Data Cleaner Configuration ===")
	fmt.Printf("Input File:       %s\n", c.Input.Path)
	fmt.Printf("Output File:      %s\n", c.Output.Path)
	fmt.Printf("Log File:         %s\n", c.Log.File)
	fmt.Printf("Verbose:          %v\n", c.Log.Verbose)
	fmt.Printf("Progress Bars:    %v\n", c.Progress.Enabled)
	fmt.Printf("Report Formats:   %v\n", c.Report.Formats)
	fmt.Printf("Report Directory: %s\n", c.GetReportDir())
	fmt.Println("==================================")
}
