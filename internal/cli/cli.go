// Package cli provides the command line interface.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/olivercalder/simple-tree/internal/asttree"
	"github.com/olivercalder/simple-tree/internal/bst"
	"github.com/olivercalder/simple-tree/internal/config"
	"github.com/olivercalder/simple-tree/internal/dirtree"
	"github.com/olivercalder/simple-tree/internal/output"
	"github.com/olivercalder/simple-tree/internal/services/clipboard"
	"github.com/olivercalder/simple-tree/internal/tokenizer"
	"github.com/olivercalder/simple-tree/internal/tree"
	"github.com/olivercalder/simple-tree/internal/trie"
	"github.com/olivercalder/simple-tree/internal/types"
	"github.com/olivercalder/simple-tree/internal/utils"
)

const (
	exclusionFlagName    = "e"
	formatFlagName       = "format"
	summaryFlagName      = "summary"
	sizeFlagName         = "size"
	dirsOnlyFlagName     = "dirs-only"
	tokensFlagName       = "tokens"
	modelFlagName        = "model"
	sortFlagName         = "sort"
	displayFlagName      = "display"
	foldFlagName         = "fold"
	languageFlagName     = "language"
	copyFlagName         = "copy"
	configFlagName       = "config"
	globalFlagName       = "global"
	forceFlagName        = "force"
	versionFlagName      = "version"
	versionTemplate      = "simpletree version: %s\n"
	defaultPath          = "."
	rootUse              = "simpletree"
	rootShortDescription = "simpletree command line interface"
	rootLongDescription  = `simpletree renders trees as indented text with box-drawing connectors.
It builds trees from directories, word lists, integer sequences, and source files.
Use --format to select raw, json, or xml output, and --version to print the application version.`
	versionFlagDescription = "display application version"
	configFlagDescription  = "configuration file path"

	treeUse                = "tree [paths...]"
	trieUse                = "trie [paths...]"
	bstUse                 = "bst <integers...>"
	syntaxUse              = "syntax <file>"
	initUse                = "init"
	treeAlias              = "t"
	trieAlias              = "tr"
	bstAlias               = "b"
	syntaxAlias            = "s"
	treeShortDescription   = "display directory tree (" + treeAlias + ")"
	trieShortDescription   = "display word-frequency trie (" + trieAlias + ")"
	bstShortDescription    = "display binary search tree (" + bstAlias + ")"
	syntaxShortDescription = "display source syntax tree (" + syntaxAlias + ")"
	initShortDescription   = "write the default configuration file"

	// treeLongDescription provides detailed help for the tree command.
	treeLongDescription = `List directories and files for one or more paths.
Use --format to select raw, json, or xml output, -e to exclude patterns, and --summary to control the trailing count line.`
	// treeUsageExample demonstrates tree command usage.
	treeUsageExample = `  # Render the current directory with file sizes
  simpletree tree --size

  # Exclude the vendor directory and render XML
  simpletree tree --format xml -e vendor .`

	// trieLongDescription provides detailed help for the trie command.
	trieLongDescription = `Build a word-frequency trie from the whitespace-separated words of the given
files, or from standard input when no paths are given.
Use --sort to order fragments, --display to choose the appended counts, and --fold to lower-case words before insertion.`
	// trieUsageExample demonstrates trie command usage.
	trieUsageExample = `  # Count words from standard input
  echo "hey hello hey" | simpletree trie

  # Order fragments by total occurrences, most frequent first
  simpletree trie --sort total-desc words.txt`

	// bstLongDescription provides detailed help for the bst command.
	bstLongDescription = `Insert the given base-10 integers into an unbalanced binary search tree and render it.
Duplicate values increment a counter on the existing node instead of adding a new one.`
	// bstUsageExample demonstrates bst command usage.
	bstUsageExample = `  # Render a small tree
  simpletree bst 5 3 8 1 9

  # Produce JSON output
  simpletree bst --format json 2 1 3`

	// syntaxLongDescription provides detailed help for the syntax command.
	syntaxLongDescription = `Parse a source file and render its named grammar nodes.
The language is detected from the file extension; use --language to override the detection.`
	// syntaxUsageExample demonstrates syntax command usage.
	syntaxUsageExample = `  # Render the syntax tree of a Go file
  simpletree syntax main.go

  # Parse a file without an extension as Python
  simpletree syntax --language python scripts/build`

	// initLongDescription provides detailed help for the init command.
	initLongDescription = `Write the default YAML configuration to the working directory, or to the
global configuration directory with --global.
Existing files are kept unless --force is given.`

	exclusionFlagDescription = "exclude path pattern"
	formatFlagDescription    = "output format"
	summaryFlagDescription   = "append directory and file counts"
	sizeFlagDescription      = "append human-readable sizes to file labels"
	dirsOnlyFlagDescription  = "list directories only"
	tokensFlagDescription    = "include token counts"
	modelFlagDescription     = "tokenizer model to use for token counting"
	sortFlagDescription      = "fragment order: value, value-desc, count, count-desc, total, total-desc"
	displayFlagDescription   = "appended figure: none, count, total"
	foldFlagDescription      = "lower-case words before insertion"
	languageFlagDescription  = "source language: go, javascript, python"
	copyFlagDescription      = "copy rendered output to the clipboard"
	globalFlagDescription    = "write the global configuration file"
	forceFlagDescription     = "overwrite an existing configuration file"

	defaultTokenizerModelName = "gpt-4o"

	invalidFormatMessage         = "Invalid format value '%s'"
	warningSkipPathFormat        = "Warning: skipping %s: %v\n"
	warningClipboardCopyFormat   = "Warning: unable to copy output to the clipboard: %v\n"
	warningCloseFileFormat       = "Warning: failed to close %s: %v\n"
	errorReadStandardInputFormat = "reading standard input: %w"
	errorParseIntegerFormat      = "parsing integer '%s': %w"
	errorSkippedPathsFormat      = "%d of %d paths could not be processed"
	// errorNoValidPaths indicates that every given path failed validation.
	errorNoValidPaths = "no valid paths"
	// errorNoReadableInputs indicates that every given input file failed to provide words.
	errorNoReadableInputs = "no readable input files"
	// inputIsDirectoryMessage explains why a directory argument is skipped.
	inputIsDirectoryMessage = "path is a directory"
	// inputIsBinaryMessage explains why a binary file argument is skipped.
	inputIsBinaryMessage = "binary content"
	initWrittenFormat    = "Configuration written to %s\n"

	descendantsSummaryFormat = "Descendants of root: %d\n"
)

// clipboardCopier handles --copy output; tests substitute a capturing implementation.
var clipboardCopier clipboard.Copier = clipboard.NewService()

// isSupportedFormat reports whether the provided format is recognized.
func isSupportedFormat(format string) bool {
	switch format {
	case types.FormatRaw, types.FormatJSON, types.FormatXML:
		return true
	default:
		return false
	}
}

// Execute runs the simpletree application.
func Execute() error {
	rootCommand := createRootCommand()
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool
	var configurationFilePath string

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.PersistentFlags().StringVar(&configurationFilePath, configFlagName, "", configFlagDescription)
	rootCommand.AddCommand(
		createTreeCommand(&configurationFilePath),
		createTrieCommand(&configurationFilePath),
		createBSTCommand(&configurationFilePath),
		createSyntaxCommand(&configurationFilePath),
		createInitCommand(),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// treeOptions stores resolved flag values for the tree command.
type treeOptions struct {
	exclusionPatterns []string
	format            string
	summaryEnabled    bool
	sizesEnabled      bool
	directoriesOnly   bool
	tokensEnabled     bool
	tokenizerModel    string
	copyEnabled       bool
}

// applyConfiguration overlays configured defaults for flags the user left unset.
func (options *treeOptions) applyConfiguration(command *cobra.Command, configuration config.TreeCommandConfiguration) {
	flags := command.Flags()
	if !flags.Changed(formatFlagName) && configuration.Format != "" {
		options.format = configuration.Format
	}
	if !flags.Changed(summaryFlagName) && configuration.Summary != nil {
		options.summaryEnabled = *configuration.Summary
	}
	if !flags.Changed(sizeFlagName) && configuration.Sizes != nil {
		options.sizesEnabled = *configuration.Sizes
	}
	if !flags.Changed(dirsOnlyFlagName) && configuration.DirectoriesOnly != nil {
		options.directoriesOnly = *configuration.DirectoriesOnly
	}
	if !flags.Changed(tokensFlagName) && configuration.Tokens.Enabled != nil {
		options.tokensEnabled = *configuration.Tokens.Enabled
	}
	if !flags.Changed(modelFlagName) && configuration.Tokens.Model != "" {
		options.tokenizerModel = configuration.Tokens.Model
	}
	if !flags.Changed(exclusionFlagName) && len(configuration.Exclude) > 0 {
		options.exclusionPatterns = append([]string{}, configuration.Exclude...)
	}
	if !flags.Changed(copyFlagName) && configuration.Clipboard != nil {
		options.copyEnabled = *configuration.Clipboard
	}
}

// trieOptions stores resolved flag values for the trie command.
type trieOptions struct {
	format      string
	sortOrder   string
	displayMode string
	foldEnabled bool
	copyEnabled bool
}

func (options *trieOptions) applyConfiguration(command *cobra.Command, configuration config.TrieCommandConfiguration) {
	flags := command.Flags()
	if !flags.Changed(formatFlagName) && configuration.Format != "" {
		options.format = configuration.Format
	}
	if !flags.Changed(sortFlagName) && configuration.Sort != "" {
		options.sortOrder = configuration.Sort
	}
	if !flags.Changed(displayFlagName) && configuration.Display != "" {
		options.displayMode = configuration.Display
	}
	if !flags.Changed(foldFlagName) && configuration.Fold != nil {
		options.foldEnabled = *configuration.Fold
	}
	if !flags.Changed(copyFlagName) && configuration.Clipboard != nil {
		options.copyEnabled = *configuration.Clipboard
	}
}

// renderOptions stores resolved flag values shared by the bst and syntax commands.
type renderOptions struct {
	format      string
	copyEnabled bool
}

func (options *renderOptions) applyConfiguration(command *cobra.Command, configuration config.RenderCommandConfiguration) {
	flags := command.Flags()
	if !flags.Changed(formatFlagName) && configuration.Format != "" {
		options.format = configuration.Format
	}
	if !flags.Changed(copyFlagName) && configuration.Clipboard != nil {
		options.copyEnabled = *configuration.Clipboard
	}
}

// createTreeCommand returns the tree subcommand.
func createTreeCommand(configurationFilePath *string) *cobra.Command {
	var options treeOptions

	treeCommand := &cobra.Command{
		Use:     treeUse,
		Aliases: []string{treeAlias},
		Short:   treeShortDescription,
		Long:    treeLongDescription,
		Example: treeUsageExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			if len(arguments) == 0 {
				arguments = []string{defaultPath}
			}
			configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: *configurationFilePath})
			if configurationError != nil {
				return configurationError
			}
			options.applyConfiguration(command, configuration.Tree)
			return runTree(arguments, options)
		},
	}

	treeCommand.Flags().StringArrayVarP(&options.exclusionPatterns, exclusionFlagName, exclusionFlagName, nil, exclusionFlagDescription)
	treeCommand.Flags().StringVar(&options.format, formatFlagName, types.FormatRaw, formatFlagDescription)
	registerBooleanFlag(treeCommand.Flags(), &options.summaryEnabled, summaryFlagName, true, summaryFlagDescription)
	registerBooleanFlag(treeCommand.Flags(), &options.sizesEnabled, sizeFlagName, false, sizeFlagDescription)
	registerBooleanFlag(treeCommand.Flags(), &options.directoriesOnly, dirsOnlyFlagName, false, dirsOnlyFlagDescription)
	registerBooleanFlag(treeCommand.Flags(), &options.tokensEnabled, tokensFlagName, false, tokensFlagDescription)
	treeCommand.Flags().StringVar(&options.tokenizerModel, modelFlagName, defaultTokenizerModelName, modelFlagDescription)
	registerBooleanFlag(treeCommand.Flags(), &options.copyEnabled, copyFlagName, false, copyFlagDescription)
	return treeCommand
}

// createTrieCommand returns the trie subcommand.
func createTrieCommand(configurationFilePath *string) *cobra.Command {
	var options trieOptions

	trieCommand := &cobra.Command{
		Use:     trieUse,
		Aliases: []string{trieAlias},
		Short:   trieShortDescription,
		Long:    trieLongDescription,
		Example: trieUsageExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: *configurationFilePath})
			if configurationError != nil {
				return configurationError
			}
			options.applyConfiguration(command, configuration.Trie)
			return runTrie(command, arguments, options)
		},
	}

	trieCommand.Flags().StringVar(&options.format, formatFlagName, types.FormatRaw, formatFlagDescription)
	trieCommand.Flags().StringVar(&options.sortOrder, sortFlagName, string(trie.SortValue), sortFlagDescription)
	trieCommand.Flags().StringVar(&options.displayMode, displayFlagName, string(trie.DisplayCount), displayFlagDescription)
	registerBooleanFlag(trieCommand.Flags(), &options.foldEnabled, foldFlagName, false, foldFlagDescription)
	registerBooleanFlag(trieCommand.Flags(), &options.copyEnabled, copyFlagName, false, copyFlagDescription)
	return trieCommand
}

// createBSTCommand returns the bst subcommand.
func createBSTCommand(configurationFilePath *string) *cobra.Command {
	var options renderOptions

	bstCommand := &cobra.Command{
		Use:     bstUse,
		Aliases: []string{bstAlias},
		Short:   bstShortDescription,
		Long:    bstLongDescription,
		Example: bstUsageExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: *configurationFilePath})
			if configurationError != nil {
				return configurationError
			}
			options.applyConfiguration(command, configuration.BST)
			return runBST(arguments, options)
		},
	}

	bstCommand.Flags().StringVar(&options.format, formatFlagName, types.FormatRaw, formatFlagDescription)
	registerBooleanFlag(bstCommand.Flags(), &options.copyEnabled, copyFlagName, false, copyFlagDescription)
	return bstCommand
}

// createSyntaxCommand returns the syntax subcommand.
func createSyntaxCommand(configurationFilePath *string) *cobra.Command {
	var options renderOptions
	var languageName string

	syntaxCommand := &cobra.Command{
		Use:     syntaxUse,
		Aliases: []string{syntaxAlias},
		Short:   syntaxShortDescription,
		Long:    syntaxLongDescription,
		Example: syntaxUsageExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: *configurationFilePath})
			if configurationError != nil {
				return configurationError
			}
			options.applyConfiguration(command, configuration.Syntax)
			return runSyntax(arguments[0], languageName, options)
		},
	}

	syntaxCommand.Flags().StringVar(&options.format, formatFlagName, types.FormatRaw, formatFlagDescription)
	syntaxCommand.Flags().StringVar(&languageName, languageFlagName, "", languageFlagDescription)
	registerBooleanFlag(syntaxCommand.Flags(), &options.copyEnabled, copyFlagName, false, copyFlagDescription)
	return syntaxCommand
}

// createInitCommand returns the init subcommand.
func createInitCommand() *cobra.Command {
	var writeGlobal bool
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if writeGlobal {
				target = config.InitTargetGlobal
			}
			writtenPath, initializeError := config.InitializeConfiguration(config.InitOptions{Target: target, Force: forceOverwrite})
			if initializeError != nil {
				return initializeError
			}
			fmt.Printf(initWrittenFormat, writtenPath)
			return nil
		},
	}

	initCommand.Flags().BoolVar(&writeGlobal, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&forceOverwrite, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// runTree builds and renders a directory tree for every valid path. Failing
// top-level paths are reported and counted; the command fails afterwards when
// any path was skipped.
func runTree(arguments []string, options treeOptions) error {
	outputFormat := strings.ToLower(options.format)
	if !isSupportedFormat(outputFormat) {
		return fmt.Errorf(invalidFormatMessage, outputFormat)
	}

	var tokenCounter tokenizer.Counter
	if options.tokensEnabled {
		createdCounter, counterError := tokenizer.ForModel(options.tokenizerModel)
		if counterError != nil {
			return counterError
		}
		tokenCounter = createdCounter
	}

	builder := &dirtree.Builder{
		ExcludePatterns: utils.DeduplicatePatterns(options.exclusionPatterns),
		DirectoriesOnly: options.directoriesOnly,
		IncludeSizes:    options.sizesEnabled,
		TokenCounter:    tokenCounter,
	}

	validatedPaths, skippedCount := resolveAndValidatePaths(arguments)
	directoryRoots := make([]*dirtree.Node, 0, len(validatedPaths))
	for _, validatedPath := range validatedPaths {
		rootNode, buildError := builder.Build(validatedPath.GivenPath)
		if buildError != nil {
			fmt.Fprintf(os.Stderr, warningSkipPathFormat, validatedPath.GivenPath, buildError)
			skippedCount++
			continue
		}
		directoryRoots = append(directoryRoots, rootNode)
	}
	if len(directoryRoots) == 0 {
		return errors.New(errorNoValidPaths)
	}

	renderedOutput, renderError := renderDirectoryRoots(outputFormat, directoryRoots, options.summaryEnabled)
	if renderError != nil {
		return renderError
	}
	emitOutput(renderedOutput, options.copyEnabled)

	if skippedCount > 0 {
		return fmt.Errorf(errorSkippedPathsFormat, skippedCount, len(arguments))
	}
	return nil
}

// runTrie builds a word-frequency trie from file or standard input words and
// renders it.
func runTrie(command *cobra.Command, arguments []string, options trieOptions) error {
	outputFormat := strings.ToLower(options.format)
	if !isSupportedFormat(outputFormat) {
		return fmt.Errorf(invalidFormatMessage, outputFormat)
	}
	sortOption, sortError := trie.ParseSortOption(options.sortOrder)
	if sortError != nil {
		return sortError
	}
	displayData, displayError := trie.ParseDisplayData(options.displayMode)
	if displayError != nil {
		return displayError
	}

	words, wordsError := collectWords(command, arguments)
	if wordsError != nil {
		return wordsError
	}
	if options.foldEnabled {
		for wordIndex, word := range words {
			words[wordIndex] = strings.ToLower(word)
		}
	}

	trieRoot := trie.FromWordsWithOptions(words, sortOption, displayData)
	renderedOutput, renderError := renderRoot(outputFormat, trieRoot)
	if renderError != nil {
		return renderError
	}
	emitOutput(renderedOutput, options.copyEnabled)
	return nil
}

// runBST parses the arguments as integers, inserts them in argument order,
// and renders the resulting tree. Raw output appends the descendant count of
// the root.
func runBST(arguments []string, options renderOptions) error {
	outputFormat := strings.ToLower(options.format)
	if !isSupportedFormat(outputFormat) {
		return fmt.Errorf(invalidFormatMessage, outputFormat)
	}
	values := make([]int, 0, len(arguments))
	for _, argument := range arguments {
		value, parseError := strconv.Atoi(argument)
		if parseError != nil {
			return fmt.Errorf(errorParseIntegerFormat, argument, parseError)
		}
		values = append(values, value)
	}

	bstRoot := bst.FromValues(values)
	renderedOutput, renderError := renderRoot(outputFormat, bstRoot)
	if renderError != nil {
		return renderError
	}
	if outputFormat == types.FormatRaw {
		renderedOutput += fmt.Sprintf(descendantsSummaryFormat, tree.CountDescendants(bstRoot))
	}
	emitOutput(renderedOutput, options.copyEnabled)
	return nil
}

// runSyntax parses the source file and renders its syntax tree under a root
// labeled with the given path.
func runSyntax(filePath string, languageName string, options renderOptions) error {
	outputFormat := strings.ToLower(options.format)
	if !isSupportedFormat(outputFormat) {
		return fmt.Errorf(invalidFormatMessage, outputFormat)
	}
	var language asttree.Language
	if languageName != "" {
		parsedLanguage, parseError := asttree.ParseLanguage(languageName)
		if parseError != nil {
			return parseError
		}
		language = parsedLanguage
	}

	syntaxRoot, parseError := asttree.Parse(filePath, language)
	if parseError != nil {
		return parseError
	}
	rootNode := tree.NewLabeledNode(filePath, syntaxRoot)
	renderedOutput, renderError := renderRoot(outputFormat, rootNode)
	if renderError != nil {
		return renderError
	}
	emitOutput(renderedOutput, options.copyEnabled)
	return nil
}

// renderDirectoryRoots renders directory trees in the requested format. Raw
// output renders each root in sequence, followed by its summary line when
// enabled; JSON and XML render the collected roots once.
func renderDirectoryRoots(outputFormat string, directoryRoots []*dirtree.Node, includeSummary bool) (string, error) {
	if outputFormat == types.FormatRaw {
		var rendered strings.Builder
		for index, rootNode := range directoryRoots {
			if index > 0 {
				rendered.WriteString("\n")
			}
			rendered.WriteString(output.RenderText(rootNode))
			if includeSummary {
				directories, files := dirtree.Stats(rootNode)
				rendered.WriteString("\n")
				rendered.WriteString(output.FormatSummaryLine(directories, files))
				rendered.WriteString("\n")
			}
		}
		return rendered.String(), nil
	}
	treeRoots := make([]tree.Node, 0, len(directoryRoots))
	for _, rootNode := range directoryRoots {
		treeRoots = append(treeRoots, rootNode)
	}
	if outputFormat == types.FormatJSON {
		return output.RenderJSON(treeRoots)
	}
	return output.RenderXML(treeRoots)
}

// renderRoot renders a single tree root in the requested format.
func renderRoot(outputFormat string, root tree.Node) (string, error) {
	switch outputFormat {
	case types.FormatJSON:
		return output.RenderJSON([]tree.Node{root})
	case types.FormatXML:
		return output.RenderXML([]tree.Node{root})
	default:
		return output.RenderText(root), nil
	}
}

// emitOutput prints the rendered output and optionally copies it to the
// clipboard. Clipboard failures degrade to a warning so the printed output
// still succeeds.
func emitOutput(renderedOutput string, copyRendered bool) {
	if strings.HasSuffix(renderedOutput, "\n") {
		fmt.Print(renderedOutput)
	} else {
		fmt.Println(renderedOutput)
	}
	if copyRendered {
		if copyError := clipboardCopier.Copy(renderedOutput); copyError != nil {
			fmt.Fprintf(os.Stderr, warningClipboardCopyFormat, copyError)
		}
	}
}

// collectWords gathers whitespace-separated words from the given files, or
// from standard input when no paths are given. Unreadable files are reported
// and skipped; every input failing is an error.
func collectWords(command *cobra.Command, arguments []string) ([]string, error) {
	if len(arguments) == 0 {
		words, readError := readWords(command.InOrStdin())
		if readError != nil {
			return nil, fmt.Errorf(errorReadStandardInputFormat, readError)
		}
		return words, nil
	}

	validatedPaths, _ := resolveAndValidatePaths(arguments)
	var words []string
	readCount := 0
	for _, validatedPath := range validatedPaths {
		fileWords, readError := readWordFile(validatedPath)
		if readError != nil {
			fmt.Fprintf(os.Stderr, warningSkipPathFormat, validatedPath.GivenPath, readError)
			continue
		}
		words = append(words, fileWords...)
		readCount++
	}
	if readCount == 0 {
		return nil, errors.New(errorNoReadableInputs)
	}
	return words, nil
}

func readWords(reader io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanWords)
	var words []string
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return words, nil
}

func readWordFile(validatedPath types.ValidatedPath) ([]string, error) {
	if validatedPath.IsDir {
		return nil, errors.New(inputIsDirectoryMessage)
	}
	if utils.IsFileBinary(validatedPath.AbsolutePath) {
		return nil, errors.New(inputIsBinaryMessage)
	}
	fileHandle, openError := os.Open(validatedPath.AbsolutePath)
	if openError != nil {
		return nil, openError
	}
	defer func() {
		if closeError := fileHandle.Close(); closeError != nil {
			fmt.Fprintf(os.Stderr, warningCloseFileFormat, validatedPath.AbsolutePath, closeError)
		}
	}()
	return readWords(fileHandle)
}

// resolveAndValidatePaths converts input paths to absolute form, dropping
// duplicates and reporting paths that cannot be inspected. The second return
// value counts the skipped inputs.
func resolveAndValidatePaths(inputs []string) ([]types.ValidatedPath, int) {
	seen := make(map[string]struct{})
	var result []types.ValidatedPath
	skippedCount := 0
	for _, inputPath := range inputs {
		absolutePath, absolutePathError := filepath.Abs(inputPath)
		if absolutePathError != nil {
			fmt.Fprintf(os.Stderr, warningSkipPathFormat, inputPath, absolutePathError)
			skippedCount++
			continue
		}
		cleanPath := filepath.Clean(absolutePath)
		if _, exists := seen[cleanPath]; exists {
			continue
		}
		pathInfo, statError := os.Lstat(cleanPath)
		if statError != nil {
			fmt.Fprintf(os.Stderr, warningSkipPathFormat, inputPath, statError)
			skippedCount++
			continue
		}
		seen[cleanPath] = struct{}{}
		result = append(result, types.ValidatedPath{
			GivenPath:    inputPath,
			AbsolutePath: cleanPath,
			IsDir:        pathInfo.IsDir(),
		})
	}
	return result, skippedCount
}
