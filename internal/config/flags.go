package config

import (
	"errors"
	"flag"
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

// String renders the address as "host:port", or an empty string when the
// address was never set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses a "[host]:[port]" value into the receiver.
func (a *NetAddress) Set(value string) error {
	host, portString, err := net.SplitHostPort(value)
	if err != nil {
		return errors.New("need address in a form host:port")
	}

	port, err := strconv.Atoi(strings.TrimSpace(portString))
	if err != nil {
		return errors.New("port must be an integer")
	}

	a.Host = host
	a.Port = port
	return nil
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-bcrypt-cost bcrypt cost factor for password hashing
//	-session-lifetime session lifetime (e.g., "168h")
//	-reset-token-lifetime reset token lifetime (e.g., "1h")
//	-reset-token-length raw reset token length in bytes
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-notifier-url mail gateway base URL
//	-notifier-timeout mail gateway call timeout
//	-front-end-url front-end base URL for reset links
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("auth-server", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var bcryptCost int
	var sessionLifetime time.Duration
	var resetTokenLifetime time.Duration
	var resetTokenLength int
	var requestTimeout time.Duration
	var notifierURL string
	var notifierTimeout time.Duration
	var frontEndURL string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt cost factor")
	fs.DurationVar(&sessionLifetime, "session-lifetime", 0, "Session lifetime (e.g., 168h)")
	fs.DurationVar(&resetTokenLifetime, "reset-token-lifetime", 0, "Reset token lifetime (e.g., 1h)")
	fs.IntVar(&resetTokenLength, "reset-token-length", 0, "Raw reset token length in bytes")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&notifierURL, "notifier-url", "", "Mail gateway base URL")
	fs.DurationVar(&notifierTimeout, "notifier-timeout", 0, "Mail gateway call timeout")
	fs.StringVar(&frontEndURL, "front-end-url", "", "Front-end base URL for reset links")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Auth: Auth{
			BcryptCost:         bcryptCost,
			SessionLifetime:    sessionLifetime,
			ResetTokenLifetime: resetTokenLifetime,
			ResetTokenLength:   resetTokenLength,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Notifier: Notifier{
			GatewayURL:  notifierURL,
			Timeout:     notifierTimeout,
			FrontEndURL: frontEndURL,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
