// Package tests contains the integration-level test suite for simpletree.
package tests

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	appTypes "github.com/olivercalder/simple-tree/internal/types"
)

const (
	commandDirectoryRelativePath = "cmd/simpletree"
	integrationBinaryBaseName    = "simpletree_integration_binary"

	treeCommandName = "tree"
	trieCommandName = "trie"
	bstCommandName  = "bst"
	initCommandName = "init"

	formatFlag  = "--format"
	summaryFlag = "--summary"
	excludeFlag = "-e"
	displayFlag = "--display"
	versionFlag = "--version"
	globalFlag  = "--global"
	forceFlag   = "--force"

	jsonFormatValue = "json"
	xmlFormatValue  = "xml"

	currentDirectoryPath = "."
	configurationName    = ".simpletree.yaml"
	globalDirectoryName  = ".simpletree"

	usageSnippet         = "Usage:\n  simpletree"
	versionOutputPrefix  = "simpletree version: "
	wordsFileName        = "words.txt"
	greetingWordsContent = "hey hello hey"
	greetingTrieFixture  = "\n" +
		"└── h\t0\n" +
		"    └── he\t0\n" +
		"        ├── hel\t0\n" +
		"        │   └── hell\t0\n" +
		"        │       └── hello\t1\n" +
		"        └── hey\t2\n"

	goSourceFileName = "main.go"
	goSourceContent  = "package main\n\nfunc main() {}\n"
	// cgoUnavailableSnippet appears when the binary was built without cgo.
	cgoUnavailableSnippet = "cgo"
)

// environmentWithHome returns the current environment with the home directory
// redirected, so invocations never read developer configuration files.
func environmentWithHome(homeDirectory string) []string {
	var environment []string
	for _, entry := range os.Environ() {
		if strings.HasPrefix(entry, "HOME=") || strings.HasPrefix(entry, "USERPROFILE=") {
			continue
		}
		environment = append(environment, entry)
	}
	return append(environment, "HOME="+homeDirectory, "USERPROFILE="+homeDirectory)
}

func isolatedEnvironment(testingHandle *testing.T) []string {
	testingHandle.Helper()
	return environmentWithHome(testingHandle.TempDir())
}

// buildBinary compiles the simpletree binary and returns its path.
func buildBinary(testingHandle *testing.T) string {
	testingHandle.Helper()

	temporaryDirectory := testingHandle.TempDir()
	binaryName := integrationBinaryBaseName
	if runtime.GOOS == "windows" {
		binaryName += ".exe"
	}
	binaryPath := filepath.Join(temporaryDirectory, binaryName)

	moduleRootDirectory := getModuleRoot(testingHandle)
	commandDirectory := filepath.Join(moduleRootDirectory, commandDirectoryRelativePath)
	buildCommand := exec.Command("go", "build", "-o", binaryPath, ".")
	buildCommand.Dir = commandDirectory

	combinedOutput, buildError := buildCommand.CombinedOutput()
	if buildError != nil {
		testingHandle.Fatalf("build failed in %s: %v\n%s", commandDirectory, buildError, string(combinedOutput))
	}

	return binaryPath
}

// runCommand executes the binary with arguments and returns stdout.
func runCommand(testingHandle *testing.T, binaryPath string, arguments []string, workingDirectory string) string {
	testingHandle.Helper()

	command := exec.Command(binaryPath, arguments...)
	command.Dir = workingDirectory
	command.Env = isolatedEnvironment(testingHandle)

	var stdoutBuffer, stderrBuffer bytes.Buffer
	command.Stdout = &stdoutBuffer
	command.Stderr = &stderrBuffer

	runError := command.Run()

	stdout := stdoutBuffer.String()
	stderr := stderrBuffer.String()

	if runError != nil {
		var exitError *exec.ExitError
		if errors.As(runError, &exitError) {
			testingHandle.Fatalf("command failed (%d): %v\nstdout:\n%s\nstderr:\n%s",
				exitError.ExitCode(), runError, stdout, stderr)
		}
		testingHandle.Fatalf("command failed: %v\nstdout:\n%s\nstderr:\n%s", runError, stdout, stderr)
	}

	if strings.Contains(stderr, "Warning:") {
		testingHandle.Logf("command produced warnings:\n%s", stderr)
	}

	return stdout
}

// runCommandExpectError runs the binary expecting a failure and returns combined output.
func runCommandExpectError(testingHandle *testing.T, binaryPath string, arguments []string, workingDirectory string) string {
	testingHandle.Helper()

	command := exec.Command(binaryPath, arguments...)
	command.Dir = workingDirectory
	command.Env = isolatedEnvironment(testingHandle)

	var buffer bytes.Buffer
	command.Stdout = &buffer
	command.Stderr = &buffer

	runError := command.Run()
	output := buffer.String()

	if runError == nil {
		testingHandle.Fatalf("command succeeded unexpectedly\noutput:\n%s", output)
	}

	return output
}

// runCommandWithWarnings runs the binary and returns stdout while requiring warnings on stderr.
func runCommandWithWarnings(testingHandle *testing.T, binaryPath string, arguments []string, workingDirectory string) string {
	testingHandle.Helper()

	command := exec.Command(binaryPath, arguments...)
	command.Dir = workingDirectory
	command.Env = isolatedEnvironment(testingHandle)

	var stdoutBuffer, stderrBuffer bytes.Buffer
	command.Stdout = &stdoutBuffer
	command.Stderr = &stderrBuffer

	runError := command.Run()

	stdout := stdoutBuffer.String()
	stderr := stderrBuffer.String()

	if runError != nil {
		var exitError *exec.ExitError
		if errors.As(runError, &exitError) {
			testingHandle.Fatalf("command failed when warnings were expected (%d): %v\nstderr:\n%s",
				exitError.ExitCode(), runError, stderr)
		}
		testingHandle.Fatalf("command failed when warnings were expected: %v\nstderr:\n%s", runError, stderr)
	}

	if !strings.Contains(stderr, "Warning:") {
		testingHandle.Fatalf("expected warnings on stderr\nstderr:\n%s", stderr)
	}

	return stdout
}

// setupTestDirectory creates a temporary directory populated with the provided layout.
func setupTestDirectory(testingHandle *testing.T, layout map[string]string) string {
	testingHandle.Helper()

	root := testingHandle.TempDir()

	for relativePath, content := range layout {
		absolutePath := filepath.Join(root, relativePath)

		if strings.HasSuffix(relativePath, "/") || content == "" {
			_ = os.MkdirAll(absolutePath, 0o755)
			continue
		}

		parent := filepath.Dir(absolutePath)
		_ = os.MkdirAll(parent, 0o755)

		_ = os.WriteFile(absolutePath, []byte(content), 0o644)
	}

	return root
}

// getModuleRoot returns the repository root directory.
func getModuleRoot(testingHandle *testing.T) string {
	testingHandle.Helper()

	directory, err := os.Getwd()
	if err != nil {
		testingHandle.Fatalf("failed to determine working directory: %v", err)
	}

	for {
		goMod := filepath.Join(directory, "go.mod")
		if _, statErr := os.Stat(goMod); statErr == nil {
			return directory
		}

		parent := filepath.Dir(directory)
		if parent == directory {
			testingHandle.Fatalf("could not locate go.mod from %s", directory)
		}
		directory = parent
	}
}

func decodeJSONRoots(testingHandle *testing.T, data string) []appTypes.TreeOutputNode {
	testingHandle.Helper()
	var single appTypes.TreeOutputNode
	if err := json.Unmarshal([]byte(data), &single); err == nil && single.Path != "" {
		return []appTypes.TreeOutputNode{single}
	}
	var multi []appTypes.TreeOutputNode
	if err := json.Unmarshal([]byte(data), &multi); err == nil {
		return multi
	}
	testingHandle.Fatalf("invalid JSON: %s", data)
	return nil
}

func decodeXMLRoots(testingHandle *testing.T, data string) []appTypes.TreeOutputNode {
	testingHandle.Helper()
	var single appTypes.TreeOutputNode
	if err := xml.Unmarshal([]byte(data), &single); err == nil && single.Path != "" {
		return []appTypes.TreeOutputNode{single}
	}
	var wrapper struct {
		Nodes []appTypes.TreeOutputNode `xml:"node"`
	}
	if err := xml.Unmarshal([]byte(data), &wrapper); err == nil && len(wrapper.Nodes) > 0 {
		return wrapper.Nodes
	}
	testingHandle.Fatalf("invalid XML: %s", data)
	return nil
}

func findNodeByName(nodes []appTypes.TreeOutputNode, name string) *appTypes.TreeOutputNode {
	for index := range nodes {
		if nodes[index].Name == name {
			return &nodes[index]
		}
		if child := findNodeByName(childrenToSlice(nodes[index].Children), name); child != nil {
			return child
		}
	}
	return nil
}

func childrenToSlice(children []*appTypes.TreeOutputNode) []appTypes.TreeOutputNode {
	result := make([]appTypes.TreeOutputNode, 0, len(children))
	for _, child := range children {
		if child != nil {
			result = append(result, *child)
		}
	}
	return result
}

func TestVersionFlagPrintsVersion(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)

	output := runCommand(testingHandle, binary, []string{versionFlag}, testingHandle.TempDir())
	if !strings.HasPrefix(output, versionOutputPrefix) {
		testingHandle.Fatalf("expected version output, got:\n%s", output)
	}
}

func TestNoArgumentsDisplaysHelp(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)

	output := runCommand(testingHandle, binary, nil, testingHandle.TempDir())
	if !strings.Contains(output, usageSnippet) {
		testingHandle.Fatalf("expected help output containing %q\n%s", usageSnippet, output)
	}
}

func TestTreeCommandRawOutput(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)
	root := setupTestDirectory(testingHandle, map[string]string{
		"alpha/beta.txt": "beta",
		"gamma.txt":      "gamma",
	})

	output := runCommand(testingHandle, binary, []string{treeCommandName, currentDirectoryPath}, root)

	expected := ".\n" +
		"├── alpha\n" +
		"│   └── beta.txt\n" +
		"└── gamma.txt\n" +
		"\n" +
		"1 directory, 2 files\n"
	if output != expected {
		testingHandle.Fatalf("unexpected output:\n%s\nexpected:\n%s", output, expected)
	}
}

func TestTreeCommandAliasMatchesFullName(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)
	root := setupTestDirectory(testingHandle, map[string]string{"gamma.txt": "gamma"})

	fullOutput := runCommand(testingHandle, binary, []string{treeCommandName, currentDirectoryPath}, root)
	aliasOutput := runCommand(testingHandle, binary, []string{"t", currentDirectoryPath}, root)
	if fullOutput != aliasOutput {
		testingHandle.Fatalf("alias output differs:\n%s\nversus:\n%s", aliasOutput, fullOutput)
	}
}

func TestTreeCommandSummaryUsesSingularForms(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)
	root := setupTestDirectory(testingHandle, map[string]string{
		"solo/":   "",
		"one.txt": "content",
	})

	output := runCommand(testingHandle, binary, []string{treeCommandName, currentDirectoryPath}, root)
	if !strings.HasSuffix(output, "1 directory, 1 file\n") {
		testingHandle.Fatalf("expected singular summary forms:\n%s", output)
	}
}

func TestTreeCommandMultiplePaths(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)
	firstRoot := setupTestDirectory(testingHandle, map[string]string{"a.txt": "first"})
	secondRoot := setupTestDirectory(testingHandle, map[string]string{"b.txt": "second"})

	output := runCommand(testingHandle, binary, []string{treeCommandName, firstRoot, secondRoot}, testingHandle.TempDir())

	expected := firstRoot + "\n" +
		"└── a.txt\n" +
		"\n" +
		"0 directories, 1 file\n" +
		"\n" +
		secondRoot + "\n" +
		"└── b.txt\n" +
		"\n" +
		"0 directories, 1 file\n"
	if output != expected {
		testingHandle.Fatalf("unexpected output:\n%s\nexpected:\n%s", output, expected)
	}
}

func TestTreeCommandExcludePatterns(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)
	root := setupTestDirectory(testingHandle, map[string]string{
		"vendor/dependency.js": "dependency",
		"visible.txt":          "visible",
	})

	output := runCommand(testingHandle, binary, []string{treeCommandName, excludeFlag, "vendor", currentDirectoryPath}, root)
	if strings.Contains(output, "vendor") {
		testingHandle.Fatalf("expected vendor to be excluded:\n%s", output)
	}
	if !strings.Contains(output, "visible.txt") {
		testingHandle.Fatalf("expected visible.txt to be listed:\n%s", output)
	}
}

func TestTreeCommandJSONOutput(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)
	root := setupTestDirectory(testingHandle, map[string]string{
		"alpha/beta.txt": "beta",
		"gamma.txt":      "gamma",
	})

	output := runCommand(testingHandle, binary, []string{treeCommandName, formatFlag, jsonFormatValue, currentDirectoryPath}, root)
	if !strings.HasPrefix(output, "{") {
		testingHandle.Fatalf("expected a single JSON object for one path:\n%s", output)
	}

	roots := decodeJSONRoots(testingHandle, output)
	if len(roots) != 1 {
		testingHandle.Fatalf("expected one root, got %d", len(roots))
	}
	if roots[0].Type != appTypes.NodeTypeDirectory {
		testingHandle.Fatalf("expected directory root, got %q", roots[0].Type)
	}
	gammaNode := findNodeByName(roots, "gamma.txt")
	if gammaNode == nil || gammaNode.Type != appTypes.NodeTypeFile {
		testingHandle.Fatalf("expected gamma.txt file node in:\n%s", output)
	}
}

func TestTreeCommandJSONMultiplePathsUseArray(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)
	firstRoot := setupTestDirectory(testingHandle, map[string]string{"a.txt": "first"})
	secondRoot := setupTestDirectory(testingHandle, map[string]string{"b.txt": "second"})

	output := runCommand(testingHandle, binary, []string{treeCommandName, formatFlag, jsonFormatValue, firstRoot, secondRoot}, testingHandle.TempDir())
	if !strings.HasPrefix(output, "[") {
		testingHandle.Fatalf("expected a JSON array for multiple paths:\n%s", output)
	}

	roots := decodeJSONRoots(testingHandle, output)
	if len(roots) != 2 {
		testingHandle.Fatalf("expected two roots, got %d", len(roots))
	}
}

func TestTreeCommandXMLOutput(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)
	root := setupTestDirectory(testingHandle, map[string]string{"gamma.txt": "gamma"})

	output := runCommand(testingHandle, binary, []string{treeCommandName, formatFlag, xmlFormatValue, currentDirectoryPath}, root)
	if !strings.HasPrefix(output, "<?xml") {
		testingHandle.Fatalf("expected XML declaration:\n%s", output)
	}

	roots := decodeXMLRoots(testingHandle, output)
	if len(roots) != 1 {
		testingHandle.Fatalf("expected one root, got %d", len(roots))
	}
	if findNodeByName(roots, "gamma.txt") == nil {
		testingHandle.Fatalf("expected gamma.txt node in:\n%s", output)
	}
}

func TestTreeCommandInvalidFormatFails(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)
	root := setupTestDirectory(testingHandle, nil)

	output := runCommandExpectError(testingHandle, binary, []string{treeCommandName, formatFlag, "toon", currentDirectoryPath}, root)
	if !strings.Contains(output, "Invalid format value 'toon'") {
		testingHandle.Fatalf("expected invalid format error:\n%s", output)
	}
}

func TestTreeCommandMissingPathFailsAfterRendering(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)
	root := setupTestDirectory(testingHandle, map[string]string{"present.txt": "content"})

	output := runCommandExpectError(testingHandle, binary, []string{treeCommandName, "missing", currentDirectoryPath}, root)
	if !strings.Contains(output, "present.txt") {
		testingHandle.Fatalf("expected surviving path to render:\n%s", output)
	}
	if !strings.Contains(output, "1 of 2 paths could not be processed") {
		testingHandle.Fatalf("expected skipped path error:\n%s", output)
	}
}

func TestTreeCommandUnreadableSubdirectoryWarns(testingHandle *testing.T) {
	if runtime.GOOS == "windows" {
		testingHandle.Skip("file mode restrictions are not enforced on windows")
	}
	if os.Geteuid() == 0 {
		testingHandle.Skip("file mode restrictions do not apply to root")
	}

	binary := buildBinary(testingHandle)
	root := setupTestDirectory(testingHandle, map[string]string{"readable.txt": "content"})
	lockedDirectory := filepath.Join(root, "locked")
	if mkdirError := os.Mkdir(lockedDirectory, 0o755); mkdirError != nil {
		testingHandle.Fatalf("mkdir locked: %v", mkdirError)
	}
	if chmodError := os.Chmod(lockedDirectory, 0o000); chmodError != nil {
		testingHandle.Fatalf("chmod locked: %v", chmodError)
	}
	testingHandle.Cleanup(func() { _ = os.Chmod(lockedDirectory, 0o755) })

	output := runCommandWithWarnings(testingHandle, binary, []string{treeCommandName, currentDirectoryPath}, root)
	if !strings.Contains(output, "locked") {
		testingHandle.Fatalf("expected the unreadable directory to stay in the tree:\n%s", output)
	}
	if !strings.Contains(output, "readable.txt") {
		testingHandle.Fatalf("expected remaining entries to render:\n%s", output)
	}
}

func TestTreeCommandReadsConfigurationDefaults(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)
	root := setupTestDirectory(testingHandle, map[string]string{
		configurationName: "tree:\n  summary: false\n",
		"gamma.txt":       "gamma",
	})

	output := runCommand(testingHandle, binary, []string{treeCommandName, currentDirectoryPath}, root)

	expected := ".\n" +
		"├── " + configurationName + "\n" +
		"└── gamma.txt\n"
	if output != expected {
		testingHandle.Fatalf("unexpected output:\n%s\nexpected:\n%s", output, expected)
	}
}

func TestTrieCommandFileInput(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)
	root := setupTestDirectory(testingHandle, map[string]string{wordsFileName: greetingWordsContent})

	output := runCommand(testingHandle, binary, []string{trieCommandName, wordsFileName}, root)
	if output != greetingTrieFixture {
		testingHandle.Fatalf("unexpected output:\n%q\nexpected:\n%q", output, greetingTrieFixture)
	}
}

func TestTrieCommandStandardInput(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)

	command := exec.Command(binary, trieCommandName, displayFlag, "none")
	command.Dir = testingHandle.TempDir()
	command.Env = isolatedEnvironment(testingHandle)
	command.Stdin = strings.NewReader("b a b")

	var stdoutBuffer, stderrBuffer bytes.Buffer
	command.Stdout = &stdoutBuffer
	command.Stderr = &stderrBuffer
	if runError := command.Run(); runError != nil {
		testingHandle.Fatalf("command failed: %v\nstderr:\n%s", runError, stderrBuffer.String())
	}

	expected := "\n├── a\n└── b\n"
	if stdoutBuffer.String() != expected {
		testingHandle.Fatalf("unexpected output:\n%q\nexpected:\n%q", stdoutBuffer.String(), expected)
	}
}

func TestBSTCommandRawOutput(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)

	output := runCommand(testingHandle, binary, []string{bstCommandName, "5", "3", "8", "1", "9"}, testingHandle.TempDir())

	expected := "5\n" +
		"├── 3\n" +
		"│   └── 1\n" +
		"└── 8\n" +
		"    └── 9\n" +
		"Descendants of root: 4\n"
	if output != expected {
		testingHandle.Fatalf("unexpected output:\n%s\nexpected:\n%s", output, expected)
	}
}

func TestBSTCommandInvalidIntegerFails(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)

	output := runCommandExpectError(testingHandle, binary, []string{bstCommandName, "5", "five"}, testingHandle.TempDir())
	if !strings.Contains(output, "parsing integer 'five'") {
		testingHandle.Fatalf("expected integer parse error:\n%s", output)
	}
}

func TestSyntaxCommandGoFile(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)
	root := setupTestDirectory(testingHandle, map[string]string{goSourceFileName: goSourceContent})

	command := exec.Command(binary, "syntax", goSourceFileName)
	command.Dir = root
	command.Env = isolatedEnvironment(testingHandle)

	var stdoutBuffer, stderrBuffer bytes.Buffer
	command.Stdout = &stdoutBuffer
	command.Stderr = &stderrBuffer
	runError := command.Run()
	if runError != nil {
		if strings.Contains(stderrBuffer.String(), cgoUnavailableSnippet) {
			testingHandle.Skip("binary was built without cgo")
		}
		testingHandle.Fatalf("command failed: %v\nstderr:\n%s", runError, stderrBuffer.String())
	}

	output := stdoutBuffer.String()
	if !strings.HasPrefix(output, goSourceFileName+"\n") {
		testingHandle.Fatalf("expected the file path as the root label:\n%s", output)
	}
	for _, expectedFragment := range []string{"source_file", "function_declaration", "identifier (main)"} {
		if !strings.Contains(output, expectedFragment) {
			testingHandle.Fatalf("expected %q in output:\n%s", expectedFragment, output)
		}
	}
}

func TestInitCommandWritesLocalConfiguration(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)
	root := testingHandle.TempDir()

	output := runCommand(testingHandle, binary, []string{initCommandName}, root)
	if !strings.Contains(output, "Configuration written to ") {
		testingHandle.Fatalf("expected confirmation message:\n%s", output)
	}

	configurationPath := filepath.Join(root, configurationName)
	content, readError := os.ReadFile(configurationPath)
	if readError != nil {
		testingHandle.Fatalf("expected configuration file: %v", readError)
	}
	for _, section := range []string{"tree:", "trie:", "bst:", "syntax:"} {
		if !strings.Contains(string(content), section) {
			testingHandle.Fatalf("expected %q section in configuration:\n%s", section, content)
		}
	}

	secondOutput := runCommandExpectError(testingHandle, binary, []string{initCommandName}, root)
	if !strings.Contains(secondOutput, "already exists") {
		testingHandle.Fatalf("expected overwrite refusal:\n%s", secondOutput)
	}

	runCommand(testingHandle, binary, []string{initCommandName, forceFlag}, root)
}

func TestInitCommandWritesGlobalConfiguration(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)
	homeDirectory := testingHandle.TempDir()

	command := exec.Command(binary, initCommandName, globalFlag)
	command.Dir = testingHandle.TempDir()
	command.Env = environmentWithHome(homeDirectory)

	var buffer bytes.Buffer
	command.Stdout = &buffer
	command.Stderr = &buffer
	if runError := command.Run(); runError != nil {
		testingHandle.Fatalf("command failed: %v\noutput:\n%s", runError, buffer.String())
	}

	configurationPath := filepath.Join(homeDirectory, globalDirectoryName, configurationName)
	if _, statError := os.Stat(configurationPath); statError != nil {
		testingHandle.Fatalf("expected global configuration file: %v", statError)
	}
}

func TestSummaryFlagDisablesCountLine(testingHandle *testing.T) {
	binary := buildBinary(testingHandle)
	root := setupTestDirectory(testingHandle, map[string]string{"gamma.txt": "gamma"})

	output := runCommand(testingHandle, binary, []string{treeCommandName, summaryFlag, "false", currentDirectoryPath}, root)

	expected := ".\n└── gamma.txt\n"
	if output != expected {
		testingHandle.Fatalf("unexpected output:\n%s\nexpected:\n%s", output, expected)
	}
}
