package main

import (
	"log"
	"os"
)

// InitLog redirects the standard logger to a file. The terminal is
// owned by the GUI, so nothing may log to stdout while it runs.
func InitLog(dest, prefix string) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
}
