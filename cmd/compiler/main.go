package main

import (
	"github.com/alecthomas/kong"
)

// Command is the compiler command line
type Command struct {
	Config     string `help:"YAML or TOML configuration file. Environment variables apply otherwise." type:"existingfile" placeholder:"FILE"`
	Root       string `help:"Package root directory." placeholder:"DIR"`
	Build      string `help:"Build root directory; artifacts go to <build>/apps." placeholder:"DIR"`
	DryRun     bool   `help:"Generate everything but write nothing." name:"dry-run"`
	Check      bool   `help:"Verify that every package compiles. Same as --dry-run."`
	Production bool   `help:"Skip packages with enabled=false."`
	Dev        bool   `help:"Development logging (debug level, console output)."`
	Report     string `help:"Write a JSON build report to this path." placeholder:"FILE"`
	Metrics    string `help:"Write Prometheus metrics to this textfile." placeholder:"FILE"`
	Checksum   string `help:"Artifact checksum algorithm in the build report." enum:"sha256,blake2b" default:"sha256"`

	Compile CompileCommand `cmd:"" help:"Compile the named packages."`
	All     AllCommand     `cmd:"" help:"Compile every package under the root."`
	Clean   CleanCommand   `cmd:"" help:"Remove stale artifacts from the build tree."`
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name("compiler"),
		kong.Description("Desktop package compiler"),
		kong.UsageOnError(),
	)

	app, err := NewApp(command)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(app)
	app.Close()
	ctx.FatalIfErrorf(err)
}
