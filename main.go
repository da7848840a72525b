/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/prisma/engine"
	"github.com/spaghettifunk/prisma/testbed"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML configuration file, watched for changes")
	headless := flag.Bool("headless", false, "run the frame loop without a window")
	flag.Parse()

	tb, err := testbed.NewTestGame()
	if err != nil {
		panic(err)
	}
	tb.ApplicationConfig.ConfigPath = *configPath
	if *headless {
		tb.ApplicationConfig.Headless = true
	}

	eng, err := engine.New(tb.Game)
	if err != nil {
		panic(err)
	}
	tb.AttachEngine(eng)

	if err := eng.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		eng.Stop()
	}()

	// run engine
	if err := eng.Run(); err != nil {
		panic(err)
	}
}
