//go:build release

package log

import (
	"log"
	"runtime"
)

const debugEnabled = false

func init() {
	dir, err := logDir(runtime.GOOS)
	if err != nil {
		log.Fatalf("Failed to resolve log directory: %v", err)
	}
	w, err := newFileWriter(dir)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	log.SetOutput(w)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}
