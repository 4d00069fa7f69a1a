package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/earther/fallterm/pkg/game/ssh"
)

var (
	listenAddressSSH string
	clientBinary     string

	done = make(chan bool)
)

const LogTimeFormat = "2006-01-02 15:04:05"

func init() {
	log.SetFlags(0)

	flag.StringVar(&listenAddressSSH, "listen-ssh", ":2222", "host SSH server on network address")
	flag.StringVar(&clientBinary, "fallterm", "", "path to fallterm client")
}

// logWriter timestamps every session log line.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	_, err := os.Stderr.Write(append([]byte(time.Now().Format(LogTimeFormat)+" "), p...))
	return len(p), err
}

func main() {
	flag.Parse()
	log.SetOutput(logWriter{})

	if clientBinary == "" {
		log.Fatal("path to the fallterm client is required (--fallterm)")
	}
	if _, err := os.Stat(clientBinary); err != nil {
		log.Fatalf("failed to find fallterm client: %s", err)
	}

	server := &ssh.Server{
		ListenAddress: listenAddressSSH,
		ClientBinary:  clientBinary,
	}
	server.Host()

	color.Green("fallterm server listening on %s", listenAddressSSH)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		done <- true
	}()

	<-done

	color.Yellow("fallterm server shutting down")
}
