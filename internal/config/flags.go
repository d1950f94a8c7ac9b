// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags in args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-server client target address (URL or host:port)
//	-d database DSN
//	-driver database driver (sqlite3 or pgx)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout for both server and client
//	-thumbnail-recycle thumbnail requests served per thumbnail store
//	-retry-attempts extra attempts for thumbnails and renders
//	-retry-delay pause between attempts
//	-keep-alive client keep-alive interval
//	-seed-demo fill an empty database with sample data
//	-log-level zerolog level name
func ParseFlags(name string, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var targetAddress string
	var databaseDSN, driver string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var thumbnailRecycle, retryAttempts int
	var retryDelay, keepAlive time.Duration
	var seedDemo bool
	var logLevel string

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&targetAddress, "server", "", "Server address used by the client")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Database driver (sqlite3, pgx)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&thumbnailRecycle, "thumbnail-recycle", 0, "Thumbnail requests served per thumbnail store")
	fs.IntVar(&retryAttempts, "retry-attempts", 0, "Extra attempts for thumbnails and renders")
	fs.DurationVar(&retryDelay, "retry-delay", 0, "Pause between attempts")
	fs.DurationVar(&keepAlive, "keep-alive", 0, "Session keep-alive interval")
	fs.BoolVar(&seedDemo, "seed-demo", false, "Seed demo data into an empty database")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{LogLevel: logLevel},
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{Driver: driver, DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			SeedDemoData:   seedDemo,
		},
		Adapter: Adapter{
			HTTPAddress:    targetAddress,
			RequestTimeout: requestTimeout,
		},
		Gateway: Gateway{
			ThumbnailRecycleThreshold: thumbnailRecycle,
			RetryAttempts:             retryAttempts,
			RetryDelay:                retryDelay,
		},
		Workers:      Workers{KeepAliveInterval: keepAlive},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
