// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/palletd/keypair"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "palletd"
	app.Usage = "claims, assets and price oracle runtime daemon"
	app.Version = version

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Commands = []cli.Command{
		{
			Name:  "start",
			Usage: "run the daemon",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config-file, c",
					Value: "",
					Usage: "*configuration `FILE`",
				},
			},
			Action: runStart,
		},
		{
			Name:   "generate-key",
			Usage:  fmt.Sprintf("generate a new %q signing seed", keypair.KeyType),
			Action: runGenerateKey,
		},
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}

func runGenerateKey(c *cli.Context) error {
	seed, err := keypair.NewSeed()
	if nil != err {
		return err
	}
	keys, err := keypair.FromSeed(seed)
	if nil != err {
		return err
	}

	fmt.Fprintf(c.App.Writer, "seed:    %s\n", seed)
	fmt.Fprintf(c.App.Writer, "account: %s\n", keys.Account())
	return nil
}
