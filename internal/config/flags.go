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

// parseFlags parses configuration flags from args into a fresh
// [StructuredConfig]. Unset flags leave their fields zero so that other
// sources can fill them during the merge.
//
// Flags:
//
//	-a server address in format [host]:port
//	-d database DSN
//	-db-driver database driver (pgx or sqlite3)
//	-db-max-open-conns connection pool size
//	-migrate apply schema migrations at startup
//	-c/-config json file path with configs
//	-service-name service name reported by the health endpoint
//	-app-version application version
//	-log-level log level (debug, info, warn, error)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-allowed-origins comma-separated CORS origins
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var maxOpenConns int
	var autoMigrate bool
	var jsonConfigPath string
	var serviceName, appVersion, logLevel string
	var requestTimeout, shutdownTimeout time.Duration
	var allowedOrigins string

	fs := flag.NewFlagSet("resource-service", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx or sqlite3)")
	fs.IntVar(&maxOpenConns, "db-max-open-conns", 0, "Maximum open database connections")
	fs.BoolVar(&autoMigrate, "migrate", false, "Apply schema migrations at startup")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&serviceName, "service-name", "", "Service name")
	fs.StringVar(&appVersion, "app-version", "", "Application version")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&allowedOrigins, "allowed-origins", "", "Comma-separated CORS origins")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			ServiceName: serviceName,
			Version:     appVersion,
			LogLevel:    logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:       databaseDriver,
				DSN:          databaseDSN,
				MaxOpenConns: maxOpenConns,
				AutoMigrate:  autoMigrate,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
			AllowedOrigins:  splitList(allowedOrigins),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host means all interfaces; any other host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
