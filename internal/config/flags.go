package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the gateway command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:port
//	-read-timeout inbound request read timeout (e.g., "15s")
//	-soap-url upstream SOAP endpoint URL
//	-ca path to the upstream CA bundle (PEM)
//	-soap-timeout upstream call timeout (e.g., "10s")
//	-locale default locale (e.g., "pt", "en")
//	-log-level log level (e.g., "debug", "info")
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("soap-gateway", flag.ContinueOnError)

	var serverAddress NetAddress
	var readTimeout time.Duration
	var soapURL string
	var caPath string
	var soapTimeout time.Duration
	var defaultLocale string
	var logLevel string
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address [host]:port")
	fs.DurationVar(&readTimeout, "read-timeout", 0, "Inbound request read timeout (e.g., 15s)")
	fs.StringVar(&soapURL, "soap-url", "", "Upstream SOAP endpoint URL")
	fs.StringVar(&caPath, "ca", "", "Upstream CA bundle path")
	fs.DurationVar(&soapTimeout, "soap-timeout", 0, "Upstream call timeout (e.g., 10s)")
	fs.StringVar(&defaultLocale, "locale", "", "Default locale")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Server: Server{
			HTTPAddress: serverAddress.String(),
			ReadTimeout: readTimeout,
		},
		Upstream: Upstream{
			URL:     soapURL,
			CAPath:  caPath,
			Timeout: soapTimeout,
		},
		Locale: Locale{
			Default: defaultLocale,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is empty
// or "localhost".
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `[host]:port`")
	}

	port, err := strconv.Atoi(rawPort)
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
