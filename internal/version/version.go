package version

// Version represents the current version of the application
const Version = "1.0.0"

// AppName is used for the lock file and log file names
const AppName = "langswitch"
