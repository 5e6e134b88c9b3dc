// SPDX-License-Identifier: MIT

// Command commeval generates planted-partition benchmarks, evaluates detected
// communities against golden ones and files the Pajek artifacts away.
//
//	commeval generate --out bench/sbm-0.10 --p-out 0.10
//	commeval evaluate --golden bench/sbm-0.10.clu --partition louvain.clu --network bench/sbm-0.10.net --parameter 0.10
//	commeval archive --dir bench
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/commeval/config"
)

// state is filled by the app's Before hook and shared by the commands.
type state struct {
	cfg   *config.Config
	log   *zap.Logger
	runID string
}

func newApp(out io.Writer) *cli.App {
	st := &state{}

	return &cli.App{
		Name:      "commeval",
		Usage:     "evaluate graph community partitions stored as Pajek files",
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				EnvVars: []string{config.EnvPrefix + "CONFIG"},
			},
		},
		Before: func(ctx *cli.Context) error {
			cfg, err := config.Load(ctx.String("config"))
			if err != nil {
				return err
			}
			log, err := cfg.Log.Build()
			if err != nil {
				return err
			}
			st.cfg, st.runID = cfg, uuid.NewString()
			st.log = log.With(zap.String("runId", st.runID))

			return nil
		},
		After: func(*cli.Context) error {
			if st.log != nil {
				_ = st.log.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			evaluateCommand(st),
			generateCommand(st),
			archiveCommand(st),
		},
	}
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "commeval:", err)
		os.Exit(1)
	}
}
