package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/yigit/classworks/internal/app/routes"
	"github.com/yigit/classworks/internal/bootstrap"
	"github.com/yigit/classworks/internal/config"
	"github.com/yigit/classworks/internal/pkg/helpers"
)

// ConfigEnv overrides the default configuration path
const ConfigEnv = "CLASSWORKS_CONFIG"

// allCommand runs every exercise
const allCommand = "all"

// Runner holds the state for one command line invocation.
type Runner struct {
	config *config.Config
	router *routes.Router
	logger zerolog.Logger
}

// NewRunner loads the configuration and wires every exercise by calling bootstrap functions.
func NewRunner(configPath string, now helpers.Clock) (*Runner, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, lgr, now)
	if err != nil {
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	return &Runner{
		config: cfg,
		router: bootstrap.SetupRouter(deps),
		logger: lgr,
	}, nil
}

// Run executes one exercise, or all of them when name is "all"
func (r *Runner) Run(ctx context.Context, name string, out io.Writer) error {
	start := time.Now()
	r.logger.Info().Str("exercise", name).Msg("Starting exercise...")

	var err error
	if name == allCommand {
		err = r.router.RunAll(ctx, out)
	} else {
		err = r.router.Dispatch(ctx, name, out)
	}
	if err != nil {
		r.logger.Error().Err(err).Str("exercise", name).Msg("Exercise failed")
		return err
	}

	r.logger.Info().Str("exercise", name).Dur("elapsed", time.Since(start)).Msg("Exercise finished")
	return nil
}

// NewApp builds the classworks command line. Reports go to out.
func NewApp(out io.Writer, now helpers.Clock) *cli.App {
	commands := make([]*cli.Command, 0, len(routes.Catalog)+1)
	for _, entry := range routes.Catalog {
		commands = append(commands, exerciseCommand(entry.Name, entry.Description, out, now))
	}
	commands = append(commands, exerciseCommand(allCommand, "Run every exercise in order", out, now))

	return &cli.App{
		Name:  "classworks",
		Usage: "Run the classroom exercises",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the YAML configuration file",
				Value:   config.GetEnv(ConfigEnv, config.DefaultPath),
			},
		},
		Commands:        commands,
		Writer:          out,
		HideHelpCommand: true,
	}
}

func exerciseCommand(name, usage string, out io.Writer, now helpers.Clock) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				return fmt.Errorf("%s takes no arguments, got %q", name, c.Args().Slice())
			}
			r, err := NewRunner(c.String("config"), now)
			if err != nil {
				return err
			}
			return r.Run(c.Context, name, out)
		},
	}
}
