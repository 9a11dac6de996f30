// Package log wraps the standard logger with a debug level that is compiled
// out of release builds. Release builds also write to a rotating file.
package log

import (
	"fmt"
	"log"
	"os"
)

// callerDepth skips output and the exported wrapper so Lshortfile names the caller.
const callerDepth = 3

const debugPrefix = "[DEBUG] "

func output(s string) {
	log.Output(callerDepth, s)
}

// Print calls the standard log.Print()
func Print(v ...interface{}) {
	output(fmt.Sprint(v...))
}

// Printf calls the standard log.Printf()
func Printf(format string, v ...interface{}) {
	output(fmt.Sprintf(format, v...))
}

// Println calls the standard log.Println()
func Println(v ...interface{}) {
	output(fmt.Sprintln(v...))
}

// Fatal logs like Print and exits with status 1.
func Fatal(v ...interface{}) {
	output(fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf logs like Printf and exits with status 1.
func Fatalf(format string, v ...interface{}) {
	output(fmt.Sprintf(format, v...))
	os.Exit(1)
}

// Fatalln logs like Println and exits with status 1.
func Fatalln(v ...interface{}) {
	output(fmt.Sprintln(v...))
	os.Exit(1)
}

// Debug logs with a [DEBUG] prefix. No-op in release builds.
func Debug(v ...interface{}) {
	if debugEnabled {
		output(debugPrefix + fmt.Sprint(v...))
	}
}

// Debugf logs with a [DEBUG] prefix. No-op in release builds.
func Debugf(format string, v ...interface{}) {
	if debugEnabled {
		output(debugPrefix + fmt.Sprintf(format, v...))
	}
}
