package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.dedis.ch/rcir/ballot/csvsource"
	"go.dedis.ch/rcir/ballot/prompt"
	"go.dedis.ch/rcir/gui/httpnode"
	"go.dedis.ch/rcir/gui/httpnode/resultstore"
	"go.dedis.ch/rcir/presenter"
	"go.dedis.ch/rcir/tabulator"
	"go.dedis.ch/rcir/types"
	"golang.org/x/xerrors"
)

var modeFlag = &cli.StringFlag{
	Name:    "mode",
	Aliases: []string{"m"},
	Value:   types.CompleteMajority.String(),
	Usage:   "majority accounting: complete counts exhausted ballots, remaining does not",
	EnvVars: []string{"RCIR_MODE"},
}

var verboseFlag = &cli.BoolFlag{
	Name:  "verbose",
	Usage: "print the tally of every round",
}

// newApp builds the command line. ask drives the prompt command, nil means
// the terminal.
func newApp(stdout, stderr io.Writer, ask prompt.AskFunc) *cli.App {
	return &cli.App{
		Name:      "rcir",
		Usage:     "runs a ranked choice instant runoff election",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   zerolog.WarnLevel.String(),
				Usage:   "trace, debug, info, warn, error",
				EnvVars: []string{"RCIR_LOG_LEVEL"},
			},
		},
		Before: setupLogging,
		// exit codes are handled by main so that tests keep running
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "tabulate the ballots of a csv file, one voter per line",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{modeFlag, verboseFlag},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("expected exactly one input file", 1)
					}

					ballots, err := csvsource.ReadFile(c.Args().First())
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}

					return tabulate(c, ballots)
				},
			},
			{
				Name:  "prompt",
				Usage: "enter the candidates and ballots interactively",
				Flags: []cli.Flag{modeFlag, verboseFlag},
				Action: func(c *cli.Context) error {
					ballots, err := prompt.New(ask).Ballots()
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}

					return tabulate(c, ballots)
				},
			},
			{
				Name:  "serve",
				Usage: "serve the tabulation API over http",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Value:   ":8080",
						Usage:   "listen address",
						EnvVars: []string{"RCIR_ADDR"},
					},
				},
				Action: serve,
			},
		},
	}
}

func setupLogging(c *cli.Context) error {
	level, err := zerolog.ParseLevel(c.String("log-level"))
	if err != nil {
		return xerrors.Errorf("invalid log level: %w", err)
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        c.App.ErrWriter,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return nil
}

func tabulate(c *cli.Context, ballots [][]string) error {
	mode, err := types.ParseMajorityMode(c.String("mode"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	logger := log.With().Str("run", xid.New().String()).Logger()
	logger.Info().Int("ballots", len(ballots)).Str("mode", mode.String()).Msg("tabulating")

	var rounds []types.RoundSummary[string]
	observer := tabulator.WithRoundObserver(func(s types.RoundSummary[string]) {
		rounds = append(rounds, s)
	})

	res, err := tabulator.RunElection(ballots, mode, tabulator.WithLogger(&logger), observer)

	if c.Bool("verbose") && len(rounds) > 0 {
		err := presenter.Rounds(c.App.Writer, rounds)
		if err != nil {
			logger.Err(err).Msg("failed to render rounds")
		}
	}

	code := presenter.Present(c.App.Writer, res, err)
	if code != presenter.ExitWinner {
		return cli.Exit("", code)
	}

	return nil
}

func serve(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpnode.New(c.String("addr"), resultstore.New(), &log.Logger)

	done := make(chan error, 1)
	go func() {
		done <- srv.Start()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := srv.Stop(shutdownCtx)
	if err != nil {
		return xerrors.Errorf("failed to stop server: %w", err)
	}

	return <-done
}
