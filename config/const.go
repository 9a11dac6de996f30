package config

import "strings"

// AppVersion is the version of the application, set with -ldflags at build time.
var AppVersion = "dev"

// AppName is the name of the application.
const AppName = "Desktop Overlay"

// AppID is the unique identifier used for the fyne application and its preferences.
const AppID = "io.github.jorge-trivilin.desktop-overlay"

// ServiceName is the short name used for lock files and log files.
const ServiceName = "desktop-overlay"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = ServiceName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(ServiceName)

// LogExt is the extension for the log files.
var LogExt = ".log"
