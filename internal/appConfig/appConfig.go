package appConfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"repocloner/internal/ext"
	"repocloner/internal/gitrepo"
	logger "repocloner/internal/log"
)

const (
	DefaultConfigFileName = "repocloner.yaml"
	DefaultCSVFile        = "data/target_projects.csv"
	DefaultCloneDirectory = "cloned_projects"
	DefaultBranch         = "main"
	DefaultLogFile        = logger.LogFileName

	BackendExec  = gitrepo.BackendExec
	BackendGoGit = gitrepo.BackendGoGit
)

type AppConfig struct {
	CSVFile        string `yaml:"csvFile"`        // Project list, relative to the executable directory unless absolute
	CloneDirectory string `yaml:"cloneDirectory"` // Where working copies are created
	DefaultBranch  string `yaml:"defaultBranch"`  // Used for rows with a blank branch
	Backend        string `yaml:"backend"`        // exec (git binary) or go-git
	LogFile        string `yaml:"logFile"`
}

// Default is the configuration used when no config file is present.
func Default() *AppConfig {
	config := &AppConfig{}
	config.applyDefaults()
	return config
}

func (config *AppConfig) applyDefaults() {
	config.CSVFile = ext.DefaultValue(config.CSVFile, DefaultCSVFile)
	config.CloneDirectory = ext.DefaultValue(config.CloneDirectory, DefaultCloneDirectory)
	config.DefaultBranch = ext.DefaultValue(config.DefaultBranch, DefaultBranch)
	config.Backend = ext.DefaultValue(config.Backend, BackendExec)
	config.LogFile = ext.DefaultValue(config.LogFile, DefaultLogFile)
}

func (config *AppConfig) Validate() error {
	switch config.Backend {
	case BackendExec, BackendGoGit:
		return nil
	default:
		return fmt.Errorf("unknown backend %q (expected %q or %q)", config.Backend, BackendExec, BackendGoGit)
	}
}

// ResolvePaths makes CSVFile, CloneDirectory and LogFile absolute against baseDir.
func (config *AppConfig) ResolvePaths(baseDir string) {
	config.CSVFile = ext.ResolvePath(baseDir, config.CSVFile)
	config.CloneDirectory = ext.ResolvePath(baseDir, config.CloneDirectory)
	config.LogFile = ext.ResolvePath(baseDir, config.LogFile)
}

// LoadConfig reads configFilePath when given. Otherwise it looks for repocloner.yaml in the
// working directory and then the home directory, and falls back to defaults if neither exists.
func LoadConfig(configFilePath string) (*AppConfig, error) {
	if configFilePath != "" {
		return readConfig(configFilePath)
	}

	candidates := []string{DefaultConfigFileName}
	if homeDir, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(homeDir, DefaultConfigFileName))
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return readConfig(candidate)
		}
	}
	return Default(), nil
}

func readConfig(configFilePath string) (*AppConfig, error) {
	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", configFilePath)
		}
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var config AppConfig
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config file %s: %w", configFilePath, err)
	}
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}
