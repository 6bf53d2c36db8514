package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/olivercalder/simple-tree/internal/cli"
	"github.com/olivercalder/simple-tree/internal/utils"
)

// main wires the application logger to the simpletree command tree.
func main() {
	applicationLogger, loggerError := utils.NewApplicationLogger()
	if loggerError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerError))
	}
	defer applicationLogger.Sync()

	if executionError := cli.Execute(); executionError != nil {
		applicationLogger.Fatal(utils.ApplicationExecutionFailedMessage, zap.Error(executionError))
	}
}
