package utils

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"
)

const unknownVersion = "unknown"

// GetApplicationVersion resolves the version string reported by --version.
// Module build information takes precedence; development builds fall back to
// git describe when a repository is reachable from the working directory.
func GetApplicationVersion() string {
	buildInformation, buildInformationAvailable := debug.ReadBuildInfo()
	if buildInformationAvailable && buildInformation.Main.Version != "" && buildInformation.Main.Version != "(devel)" {
		return buildInformation.Main.Version
	}

	repositoryDirectory, repositoryLookupError := findGitDirectory(".")
	if repositoryLookupError != nil {
		return unknownVersion
	}
	if exactVersion := gitDescribe(repositoryDirectory, "--tags", "--exact-match"); exactVersion != "" {
		return exactVersion
	}
	if longVersion := gitDescribe(repositoryDirectory, "--tags", "--long", "--dirty"); longVersion != "" {
		return longVersion
	}
	return unknownVersion
}

// gitDescribe runs git describe with the provided arguments inside
// repositoryDirectory and returns the trimmed output, or "" on failure.
func gitDescribe(repositoryDirectory string, arguments ...string) string {
	// #nosec G204
	describeCommand := exec.Command("git", append([]string{"describe"}, arguments...)...)
	describeCommand.Dir = repositoryDirectory
	describeOutput, describeError := describeCommand.Output()
	if describeError != nil || len(describeOutput) == 0 {
		return ""
	}
	return strings.TrimSpace(string(describeOutput))
}

// findGitDirectory walks upward from startDirectory until it finds a directory
// containing a .git folder and returns that directory.
func findGitDirectory(startDirectory string) (string, error) {
	absoluteStart, absoluteError := filepath.Abs(startDirectory)
	if absoluteError != nil {
		return "", fmt.Errorf("resolving absolute path for %s: %w", startDirectory, absoluteError)
	}

	currentDirectory := absoluteStart
	for {
		repositoryMarker := filepath.Join(currentDirectory, GitDirectoryName)
		markerInfo, statError := os.Stat(repositoryMarker)
		if statError == nil && markerInfo.IsDir() {
			return currentDirectory, nil
		}
		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			break
		}
		currentDirectory = parentDirectory
	}
	return "", fmt.Errorf("no %s directory found in or above %s", GitDirectoryName, absoluteStart)
}
