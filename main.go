/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/labscan/cmd"
	"github.com/humaidq/labscan/logging"
)

func main() {
	logging.Init()

	app := &cli.Command{
		Name:  "labscan",
		Usage: "labscan - blood test report analyzer",
		Commands: []*cli.Command{
			cmd.CmdStart,
			cmd.CmdAnalyze,
			cmd.CmdMigrate,
			cmd.CmdFeedback,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
