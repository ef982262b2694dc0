package rootcmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// Run parses the command line into cmd and runs the selected command.
// Flags may also be set in the YAML files listed in configPaths (missing
// files are ignored) or in a file passed to a kong.ConfigFlag.
func Run(cmd any, name, description string, configPaths ...string) {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	parser, err := NewParser(ctx, cmd, name, description, configPaths...)
	if err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		parser.FatalIfErrorf(err)
	}

	err = kctx.Run()
	parser.FatalIfErrorf(err)
}

// NewParser builds the kong parser used by Run.
func NewParser(ctx context.Context, cmd any, name, description string, configPaths ...string) (*kong.Kong, error) {
	return kong.New(cmd,
		kong.Name(name),
		kong.Description(description),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Configuration(YAML, configPaths...),
		kong.ConfigureHelp(kong.HelpOptions{
			Tree: true,
		}),
		kong.UsageOnError(),
	)
}
