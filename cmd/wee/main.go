// Command wee is a single-file modal terminal text editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/wee/internal/app"
	"github.com/dshills/wee/internal/applog"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		app.Fatal(err)
	}
	defer application.Close()

	watchSignals(application)

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "wee: %v\n", err)
		return 1
	}
	return application.Editor.QuitCode
}

// watchSignals restores the terminal and exits with 128+signo on
// SIGINT/SIGTERM/SIGHUP/SIGQUIT, per spec.md §5. The process exits from
// inside the signal goroutine rather than signaling the event loop to
// stop cooperatively: a fatal signal is meant to tear down immediately,
// the way original_source/wee.c's handler-driven model does.
func watchSignals(application *app.Application) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	go func() {
		sig := <-sigs
		application.Term.Shutdown()
		code := 128
		if signo, ok := sig.(syscall.Signal); ok {
			code += int(signo)
		}
		os.Exit(code)
	}()
}

func parseFlags() app.Options {
	var logLevel string
	var logFile string

	flag.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.StringVar(&logFile, "log-file", "", "write logs to this file (default: discard)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wee [options] [path]\n\n")
		fmt.Fprintf(os.Stderr, "With no path, start with an empty unnamed buffer.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	opts := app.Options{
		LogLevel: applog.ParseLogLevel(logLevel),
		LogFile:  logFile,
	}
	if flag.NArg() > 0 {
		opts.Path = flag.Arg(0)
	}
	return opts
}
