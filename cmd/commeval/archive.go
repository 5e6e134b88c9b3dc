// SPDX-License-Identifier: MIT

package main

import (
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/commeval/archive"
)

type archiveOutput struct {
	RunID   string   `json:"runId" yaml:"runId"`
	Target  string   `json:"target" yaml:"target"`
	Created bool     `json:"created" yaml:"created"`
	Moved   []string `json:"moved" yaml:"moved"`
}

func archiveCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "archive",
		Usage: "move Pajek files of a directory into a subfolder",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Usage: "directory to tidy", Value: "."},
			&cli.StringFlag{Name: "into", Usage: "subfolder name (default from config)"},
			&cli.StringFlag{Name: "format", Usage: "json or yaml (default from config)"},
		},
		Action: func(ctx *cli.Context) error {
			into := st.cfg.Archive.Subfolder
			if ctx.IsSet("into") {
				into = ctx.String("into")
			}

			res, err := archive.Relocate(ctx.String("dir"), into,
				archive.WithExtensions(st.cfg.Archive.Extensions...),
				archive.WithLogger(st.log),
			)
			out := archiveOutput{RunID: st.runID, Target: res.Target, Created: res.Created, Moved: res.Moved}
			if emitErr := emit(ctx.App.Writer, format(ctx.String("format"), st), out); emitErr != nil {
				return emitErr
			}

			return err
		},
	}
}
