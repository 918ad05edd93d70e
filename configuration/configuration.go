// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse the daemon's Lua configuration file
//
// The file is executed as a Lua script; its final expression is the
// configuration table. Relative paths are resolved against the data
// directory, which must exist before start.
package configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "data_directory")
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file
	defaultPidFile       = "palletd.pid"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "palletd.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "palletd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultBlockInterval  = 10 // seconds
	defaultMaxClaimLength = 512
	defaultCreatePrice    = 10
	defaultFetchDeadline  = 6000 // milliseconds
)

// path expanded or calculated defaults
var defaultLogLevels = map[string]string{
	"main":            "info",
	"config":          "info",
	logger.DefaultTag: "error",
}

// DatabaseType - where the store lives
type DatabaseType struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

// RuntimeType - on-chain parameters of this deployment
type RuntimeType struct {
	BlockInterval  int `gluamapper:"block_interval"`   // seconds
	MaxClaimLength int `gluamapper:"max_claim_length"` // bytes
	CreatePrice    int `gluamapper:"create_price"`
	TokenSupply    int `gluamapper:"token_supply"` // zero disables the token ledger
}

// OracleType - price feed and local signing key
type OracleType struct {
	PriceURL      string `gluamapper:"price_url"`
	FetchDeadline int    `gluamapper:"fetch_deadline"` // milliseconds
	Seed          string `gluamapper:"seed"`           // empty on a non-authority node
}

// GenesisBalance - one pre-funded account
type GenesisBalance struct {
	Account string `gluamapper:"account"` // base58
	Amount  int    `gluamapper:"amount"`
}

// LoggerType - rotating log file settings
type LoggerType struct {
	Directory string            `gluamapper:"directory"`
	File      string            `gluamapper:"file"`
	Size      int               `gluamapper:"size"`
	Count     int               `gluamapper:"count"`
	Console   bool              `gluamapper:"console"`
	Levels    map[string]string `gluamapper:"levels"`
}

// Configuration - the full configuration tree
type Configuration struct {
	DataDirectory string           `gluamapper:"data_directory"`
	PidFile       string           `gluamapper:"pidfile"`
	Database      DatabaseType     `gluamapper:"database"`
	Runtime       RuntimeType      `gluamapper:"runtime"`
	Oracle        OracleType       `gluamapper:"oracle"`
	Genesis       []GenesisBalance `gluamapper:"genesis"`
	Logging       LoggerType       `gluamapper:"logging"`
}

// LoggerConfiguration - the logging subtree in the logger's own form
func (c *Configuration) LoggerConfiguration() logger.Configuration {
	return logger.Configuration{
		Directory: c.Logging.Directory,
		File:      c.Logging.File,
		Size:      c.Logging.Size,
		Count:     c.Logging.Count,
		Console:   c.Logging.Console,
		Levels:    c.Logging.Levels,
	}
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       defaultPidFile,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Runtime: RuntimeType{
			BlockInterval:  defaultBlockInterval,
			MaxClaimLength: defaultMaxClaimLength,
			CreatePrice:    defaultCreatePrice,
			TokenSupply:    0,
		},

		Oracle: OracleType{
			PriceURL:      "", // the worker falls back to its built-in feed
			FetchDeadline: defaultFetchDeadline,
		},

		Logging: LoggerType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if options.Runtime.BlockInterval <= 0 {
		return nil, errors.New(fmt.Sprintf("Block interval: %d is out of range", options.Runtime.BlockInterval))
	}
	if options.Runtime.MaxClaimLength <= 0 {
		return nil, errors.New(fmt.Sprintf("Max claim length: %d is out of range", options.Runtime.MaxClaimLength))
	}
	for _, item := range options.Genesis {
		if item.Amount <= 0 {
			return nil, errors.New(fmt.Sprintf("Genesis amount: %d for: %q is out of range", item.Amount, item.Account))
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, errors.New(fmt.Sprintf("Path: %q is not a valid directory", options.DataDirectory))
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, errors.New(fmt.Sprintf("Path: %q is not a directory", options.DataDirectory))
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.PidFile,
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// fail if any of these are not simple file names i.e. must not contain path separator
	// then add the correct directory prefix, file item is first and corresponding directory is second
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, &options.Logging.Directory},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			*f[0] = ensureAbsolute(*f[1], *f[0])
		default:
			return nil, errors.New(fmt.Sprintf("Files: %q is not plain name", *f[0]))
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{&options.Database.Directory, &options.Logging.Directory} {
		*d = ensureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
