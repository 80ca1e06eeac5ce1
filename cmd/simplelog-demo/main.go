package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sivaosorg/simplelog"
	"github.com/sivaosorg/simplelog/registry"
)

type options struct {
	level   string
	path    string
	append  bool
	noColor bool
}

func main() {
	var opts options
	flag.StringVar(&opts.level, "level", "verbose", "minimum severity (failure, error, warning, important, info, debug, verbose)")
	flag.StringVar(&opts.path, "file", "LogFile.log", "path of the log file target")
	flag.BoolVar(&opts.append, "append", false, "keep existing log file content instead of truncating it")
	flag.BoolVar(&opts.noColor, "no-color", false, "disable ANSI colors on console targets")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Println("fatal:", err)
		os.Exit(1)
	}
}

// run drives the demo and always shuts the registry down before returning.
func run(opts options) (err error) {
	threshold, err := simplelog.ParseSeverity(opts.level)
	if err != nil {
		return err
	}

	reg := registry.New()
	if err := reg.Init(); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, reg.Shutdown())
	}()

	return demo(reg, threshold, opts)
}

func demo(reg *registry.Registry, threshold simplelog.Severity, opts options) error {
	core := reg.Core()
	core.SetVerboseLevel(-2)
	core.SetSeverityLevel(threshold)

	colors := simplelog.WithColors(!opts.noColor, true)

	// Two console targets and one file target.
	console1 := simplelog.NewConsoleSink(colors, simplelog.WithColorDetection())
	console2 := simplelog.NewConsoleSink(colors, simplelog.WithColorDetection())
	file1 := simplelog.NewFileSink(opts.path, simplelog.WithAppend(opts.append))
	core.AddTarget(console1)
	core.AddTarget(console2)
	core.AddTarget(file1)
	console1.SetPrefix("[Target 1]")
	console2.SetPrefix("[Target 2]")

	console1.Log(simplelog.Failure, "Only console target 1!")
	core.Log(simplelog.Failure, "All targets")
	if err := core.Logf(simplelog.Failure, "{1} and {0}", 1.5, "test"); err != nil {
		return err
	}
	if err := core.Logf(simplelog.Debug, "Hello {1}!", "World", "Dog"); err != nil {
		return err
	}
	if err := core.Logf(simplelog.Info, "I would rather be {1} than {0}", "right", "happy"); err != nil {
		return err
	}
	if err := reg.CoreError("{1} and {0}", 1.5, "test"); err != nil {
		return err
	}

	core.RemoveTarget(console1)
	core.RemoveTarget(console2)
	core.RemoveTarget(file1)

	// One console target and one file target appending to the same file.
	console := core.AddTarget(simplelog.NewConsoleSink(colors, simplelog.WithColorDetection()))
	file := core.AddTarget(simplelog.NewFileSink(opts.path, simplelog.WithAppend(true)))
	console.SetPrefix("[ENGINE]")
	file.SetPrefix("[ENGINE]")
	core.SetPrefix("[ENGINE]")

	core.LogUnknown("Example of an unknown log severity")
	core.Log(simplelog.Failure, "Imminent program failure")
	core.Log(simplelog.Error, "Error, but program can continue")
	core.Log(simplelog.Warning, "Warning")
	core.Log(simplelog.Important, "Important messages, more relevant than regular info messages")
	core.Log(simplelog.Info, "Default level on release builds. Used for general messages")
	core.Log(simplelog.Debug, "Default level on debug builds. Used for messages that are only relevant to the developer")
	core.Log(simplelog.Verbose, "Verbose level on debug builds. Useful when developers need more information")

	return reg.ClientInfo("client logger has {} targets", reg.Client().Len())
}
