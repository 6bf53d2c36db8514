// Package config loads the application configuration files and writes the
// default configuration template.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/olivercalder/simple-tree/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds command-specific configuration defaults.
type ApplicationConfiguration struct {
	Tree   TreeCommandConfiguration   `mapstructure:"tree"`
	Trie   TrieCommandConfiguration   `mapstructure:"trie"`
	BST    RenderCommandConfiguration `mapstructure:"bst"`
	Syntax RenderCommandConfiguration `mapstructure:"syntax"`
}

// TreeCommandConfiguration defines defaults for the tree command.
type TreeCommandConfiguration struct {
	Format          string             `mapstructure:"format"`
	Summary         *bool              `mapstructure:"summary"`
	Sizes           *bool              `mapstructure:"sizes"`
	DirectoriesOnly *bool              `mapstructure:"dirs_only"`
	Exclude         []string           `mapstructure:"exclude"`
	Tokens          TokenConfiguration `mapstructure:"tokens"`
	Clipboard       *bool              `mapstructure:"clipboard"`
}

// TokenConfiguration controls token counting defaults.
type TokenConfiguration struct {
	Enabled *bool  `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
}

// TrieCommandConfiguration defines defaults for the trie command.
type TrieCommandConfiguration struct {
	Format    string `mapstructure:"format"`
	Sort      string `mapstructure:"sort"`
	Display   string `mapstructure:"display"`
	Fold      *bool  `mapstructure:"fold"`
	Clipboard *bool  `mapstructure:"clipboard"`
}

// RenderCommandConfiguration defines defaults shared by the bst and syntax commands.
type RenderCommandConfiguration struct {
	Format    string `mapstructure:"format"`
	Clipboard *bool  `mapstructure:"clipboard"`
}

// LoadApplicationConfiguration merges the global configuration under the user
// home with the local one beside the working directory (or an explicit
// --config path). Later files win field by field.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	configurationPaths := make([]string, 0, 2)
	if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		configurationPaths = append(configurationPaths, globalPath)
	}
	localPath, localPathError := localConfigurationPath(workingDirectory, options.ExplicitFilePath)
	if localPathError != nil {
		return ApplicationConfiguration{}, localPathError
	}
	if localPath != "" {
		configurationPaths = append(configurationPaths, localPath)
	}

	var merged ApplicationConfiguration
	for _, configurationPath := range configurationPaths {
		fileConfiguration, readError := readConfigurationFile(configurationPath)
		if readError != nil {
			return ApplicationConfiguration{}, readError
		}
		merged = merged.Merge(fileConfiguration)
	}

	merged.Tree.Exclude = utils.DeduplicatePatterns(merged.Tree.Exclude)

	return merged, nil
}

// localConfigurationPath resolves the configuration file beside the working
// directory, honoring an explicit override from the --config flag.
func localConfigurationPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath == "" {
		if workingDirectory == "" {
			return "", nil
		}
		return filepath.Join(workingDirectory, utils.ConfigFileName), nil
	}
	if filepath.IsAbs(explicitPath) {
		return explicitPath, nil
	}
	if workingDirectory != "" {
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	absolutePath, absoluteError := filepath.Abs(explicitPath)
	if absoluteError != nil {
		return "", fmt.Errorf("resolve configuration path %s: %w", explicitPath, absoluteError)
	}
	return absolutePath, nil
}

// readConfigurationFile loads one YAML configuration file through viper.
// Missing files yield an empty configuration.
func readConfigurationFile(path string) (ApplicationConfiguration, error) {
	pathInfo, statError := os.Stat(path)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statError)
	}
	if pathInfo.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	configurationReader := viper.New()
	configurationReader.SetConfigFile(path)
	if readError := configurationReader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readError)
	}
	var fileConfiguration ApplicationConfiguration
	if decodeError := configurationReader.Unmarshal(&fileConfiguration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeError)
	}
	return fileConfiguration, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	result.Tree = result.Tree.merge(override.Tree)
	result.Trie = result.Trie.merge(override.Trie)
	result.BST = result.BST.merge(override.BST)
	result.Syntax = result.Syntax.merge(override.Syntax)
	return result
}

func (config TreeCommandConfiguration) merge(override TreeCommandConfiguration) TreeCommandConfiguration {
	result := config
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Summary != nil {
		result.Summary = cloneBool(override.Summary)
	}
	if override.Sizes != nil {
		result.Sizes = cloneBool(override.Sizes)
	}
	if override.DirectoriesOnly != nil {
		result.DirectoriesOnly = cloneBool(override.DirectoriesOnly)
	}
	if len(override.Exclude) > 0 {
		result.Exclude = append([]string{}, utils.DeduplicatePatterns(override.Exclude)...)
	}
	result.Tokens = result.Tokens.merge(override.Tokens)
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	return result
}

func (config TokenConfiguration) merge(override TokenConfiguration) TokenConfiguration {
	result := config
	if override.Enabled != nil {
		result.Enabled = cloneBool(override.Enabled)
	}
	if override.Model != "" {
		result.Model = override.Model
	}
	return result
}

func (config TrieCommandConfiguration) merge(override TrieCommandConfiguration) TrieCommandConfiguration {
	result := config
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Sort != "" {
		result.Sort = override.Sort
	}
	if override.Display != "" {
		result.Display = override.Display
	}
	if override.Fold != nil {
		result.Fold = cloneBool(override.Fold)
	}
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	return result
}

func (config RenderCommandConfiguration) merge(override RenderCommandConfiguration) RenderCommandConfiguration {
	result := config
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
