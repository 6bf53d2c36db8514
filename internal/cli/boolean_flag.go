package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	booleanFlagTypeName               = "bool"
	booleanFlagTrueLiteral            = "true"
	booleanFlagAcceptedValuesListing  = "true, false, yes, no, on, off, 1, 0"
	booleanFlagInvalidValueErrorLabel = "invalid boolean value"
)

// booleanFlagLiterals maps every accepted spelling of a boolean flag value to
// its meaning, paired affirmative and negative.
var booleanFlagLiterals = map[string]bool{
	"true": true, "false": false,
	"t": true, "f": false,
	"yes": true, "no": false,
	"y": true, "n": false,
	"on": true, "off": false,
	"1": true, "0": false,
}

// booleanFlagValue accepts a wider set of literals than pflag's built-in bool
// type, so toggles read naturally both bare and with a value.
type booleanFlagValue struct {
	target   *bool
	flagName string
}

func (value *booleanFlagValue) Set(input string) error {
	parsedValue, parseError := parseBooleanLiteral(input, value.flagName)
	if parseError != nil {
		return parseError
	}
	*value.target = parsedValue
	return nil
}

func (value *booleanFlagValue) String() string {
	if value.target == nil {
		return booleanFlagTrueLiteral
	}
	return strconv.FormatBool(*value.target)
}

func (value *booleanFlagValue) Type() string {
	return booleanFlagTypeName
}

// parseBooleanLiteral interprets input as a boolean flag value. The empty
// string means the flag appeared bare, which counts as true.
func parseBooleanLiteral(input, flagName string) (bool, error) {
	literal := strings.ToLower(strings.TrimSpace(input))
	if literal == "" {
		return true, nil
	}
	parsedValue, known := booleanFlagLiterals[literal]
	if !known {
		return false, fmt.Errorf("%s %q for --%s; accepted values: %s",
			booleanFlagInvalidValueErrorLabel, input, flagName, booleanFlagAcceptedValuesListing)
	}
	return parsedValue, nil
}

// registerBooleanFlag installs a boolean toggle whose bare form means true.
func registerBooleanFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	if flagSet == nil || target == nil {
		return
	}
	*target = defaultValue
	flagSet.Var(&booleanFlagValue{target: target, flagName: name}, name, usage)
	if registeredFlag := flagSet.Lookup(name); registeredFlag != nil {
		registeredFlag.DefValue = strconv.FormatBool(defaultValue)
		registeredFlag.NoOptDefVal = booleanFlagTrueLiteral
	}
}

// normalizeBooleanFlagArguments rewrites "--flag literal" into "--flag=literal"
// for registered boolean flags, so space-separated boolean values parse the
// same as the equals form. Arguments after a bare "--" pass through untouched.
func normalizeBooleanFlagArguments(command *cobra.Command, arguments []string) []string {
	if command == nil || len(arguments) == 0 {
		return arguments
	}
	booleanFlags := collectBooleanFlagNames(command)
	if len(booleanFlags) == 0 {
		return arguments
	}

	normalizedArguments := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		currentArgument := arguments[index]
		if currentArgument == "--" {
			return append(normalizedArguments, arguments[index:]...)
		}
		if literal, joinable := joinableBooleanLiteral(booleanFlags, arguments, index); joinable {
			flagName := strings.TrimPrefix(currentArgument, "--")
			normalizedArguments = append(normalizedArguments, fmt.Sprintf("--%s=%s", flagName, literal))
			index++
			continue
		}
		normalizedArguments = append(normalizedArguments, currentArgument)
	}
	return normalizedArguments
}

// joinableBooleanLiteral reports whether arguments[index] names a registered
// boolean flag followed by a standalone boolean literal, returning the literal.
func joinableBooleanLiteral(booleanFlags map[string]struct{}, arguments []string, index int) (string, bool) {
	currentArgument := arguments[index]
	if !strings.HasPrefix(currentArgument, "--") || strings.Contains(currentArgument, "=") {
		return "", false
	}
	if _, registered := booleanFlags[strings.TrimPrefix(currentArgument, "--")]; !registered {
		return "", false
	}
	if index+1 >= len(arguments) {
		return "", false
	}
	nextArgument := arguments[index+1]
	if strings.HasPrefix(nextArgument, "-") {
		return "", false
	}
	if _, valid := booleanFlagLiterals[strings.ToLower(strings.TrimSpace(nextArgument))]; !valid {
		return "", false
	}
	return nextArgument, true
}

// collectBooleanFlagNames gathers the names of boolean flags registered on the
// command and all of its descendants.
func collectBooleanFlagNames(command *cobra.Command) map[string]struct{} {
	booleanFlags := map[string]struct{}{}
	var walk func(current *cobra.Command)
	walk = func(current *cobra.Command) {
		for _, flagSet := range []*pflag.FlagSet{current.PersistentFlags(), current.Flags()} {
			flagSet.VisitAll(func(visitedFlag *pflag.Flag) {
				if visitedFlag.Value != nil && visitedFlag.Value.Type() == booleanFlagTypeName {
					booleanFlags[visitedFlag.Name] = struct{}{}
				}
			})
		}
		for _, child := range current.Commands() {
			walk(child)
		}
	}
	walk(command)
	return booleanFlags
}
