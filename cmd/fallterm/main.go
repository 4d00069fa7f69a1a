package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/earther/fallterm/pkg/game"
)

var (
	done = make(chan bool)

	themeFlag string
	logFile   string
	seedFlag  int64
)

func main() {
	flag.StringVar(&themeFlag, "theme", "", "color theme (dark or light)")
	flag.StringVar(&logFile, "log", "", "log to file")
	flag.Int64Var(&seedFlag, "seed", 0, "piece randomizer seed (0 = random)")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("failed to start fallterm: non-interactive terminals are not supported")
	}

	if logFile != "" {
		InitLog(logFile, "fallterm ")
	} else {
		log.SetOutput(nullWriter{})
	}

	if themeFlag != "" {
		theme = themeByName(themeFlag)
	} else {
		theme = loadTheme()
	}
	blocks = renderBlock(theme)

	activeGame = game.NewState(seedFlag, events, draw)

	app, err := initGUI()
	if err != nil {
		log.Fatalf("failed to initialize GUI: %s", err)
	}

	go func() {
		if err := app.Run(); err != nil {
			log.Fatalf("failed to run application: %s", err)
		}

		done <- true
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		done <- true
	}()

	activeGame.Start()

	<-done

	closeGUI()
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}
