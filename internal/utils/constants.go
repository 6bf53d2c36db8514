package utils

// ConfigFileName is the name of the application configuration file.
const ConfigFileName = ".simpletree.yaml"

// GlobalConfigDirectoryName is the directory under the user home that holds global configuration.
const GlobalConfigDirectoryName = ".simpletree"

// GitDirectoryName is the name of the Git repository directory.
const GitDirectoryName = ".git"

// LoggerInitializationFailedMessageFormat reports a failure to construct the application logger.
const LoggerInitializationFailedMessageFormat = "logger initialization failed: %w"

// ApplicationExecutionFailedMessage prefixes fatal command errors.
const ApplicationExecutionFailedMessage = "application execution failed"
