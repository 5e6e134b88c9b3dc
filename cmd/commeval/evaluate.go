// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/commeval/evaluation"
	"github.com/katalvlaran/commeval/pajek"
)

type evaluateOutput struct {
	RunID             string `json:"runId" yaml:"runId"`
	evaluation.Report `yaml:",inline"`
}

func evaluateCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "evaluate",
		Usage: "compare a detected partition with the golden one",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "golden", Usage: "golden .clu file", Required: true},
			&cli.StringFlag{Name: "partition", Usage: "detected .clu file", Required: true},
			&cli.StringFlag{Name: "network", Usage: "Pajek .net file of the graph", Required: true},
			&cli.Float64Flag{Name: "parameter", Usage: "experiment parameter echoed in the report"},
			&cli.StringFlag{Name: "format", Usage: "json or yaml (default from config)"},
		},
		Action: func(ctx *cli.Context) error {
			enc := pajek.WithEncoding(st.cfg.Pajek.Encoding)

			golden, err := pajek.ReadFile(ctx.String("golden"), enc)
			if err != nil {
				return fmt.Errorf("read golden: %w", err)
			}
			detected, err := pajek.ReadFile(ctx.String("partition"), enc)
			if err != nil {
				return fmt.Errorf("read partition: %w", err)
			}
			g, err := pajek.ReadNetwork(ctx.String("network"), enc)
			if err != nil {
				return fmt.Errorf("read network: %w", err)
			}

			r, err := evaluation.New(evaluation.WithLogger(st.log)).
				Evaluate(golden, detected, g, ctx.Float64("parameter"))
			if err != nil {
				return err
			}

			return emit(ctx.App.Writer, format(ctx.String("format"), st), evaluateOutput{RunID: st.runID, Report: r})
		},
	}
}
