package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"repocloner/internal/appConfig"
	"repocloner/internal/cloneCommand"
	"repocloner/internal/color"
	"repocloner/internal/ext"
	"repocloner/internal/gitrepo"
	. "repocloner/internal/log"
	"repocloner/internal/view"
	typex "repocloner/type"
)

func main() {
	var verbose = typex.NullableBool{}
	var list = typex.NullableBool{}
	var project string
	var configFile string

	flag.StringVar(&project, "project", "", "Clone only the project with this name")
	flag.Var(&list, "list", "List the projects in the CSV file without cloning")
	flag.Var(&verbose, "verbose", "Write debug output to the log file")
	flag.StringVar(&configFile, "config", "", "Configuration file (default ./"+appConfig.DefaultConfigFileName+", then ~/"+appConfig.DefaultConfigFileName+")")
	flag.Parse()

	if !view.IsTerminal(os.Stdout) {
		color.Disable()
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "%s unexpected arguments: %v\n", color.FgRed("❌"), flag.Args())
		flag.Usage()
		os.Exit(cloneCommand.ExitFailure)
	}

	config, err := appConfig.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s Failed to load configuration: %v\n", color.FgRed("❌"), err)
		os.Exit(cloneCommand.ExitFailure)
	}
	baseDir := ext.ExecutableDir()
	config.ResolvePaths(baseDir)

	InitLogger(verbose.Val(false), config.LogFile)
	Log.Debugf("Configuration: %+v", *config)

	if list.Val(false) {
		os.Exit(cloneCommand.ExecuteListCommand(config, cloneCommand.StdOutput()))
	}

	var progress io.Writer
	if verbose.Val(false) {
		progress = os.Stdout
	}
	git, err := gitrepo.NewGit(config.Backend, progress)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.FgRed("❌"), err)
		Log.Errorf("%v", err)
		os.Exit(cloneCommand.ExitFailure)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cloneCommand.ExecuteCloneCommand(ctx, config, git, project, cloneCommand.StdOutput())
	stop()
	os.Exit(code)
}
