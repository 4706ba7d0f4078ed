package main

import (
	"log"
	"os"

	"github.com/trezcool/talanta/core"
	"github.com/trezcool/talanta/core/dashboard"
	"github.com/trezcool/talanta/services/logger"
)

func main() {
	std := log.New(os.Stderr, "CLI : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	if err != nil {
		std.Fatal(err)
	}
	logger := logsvc.NewRollbarLogger(std, conf)

	// start CLI
	cli := commandLine{
		svc: dashboard.NewServiceFromConfig(logger, conf),
		in:  os.Stdin,
		out: os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			std.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
