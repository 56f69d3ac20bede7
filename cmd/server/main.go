package main

import (
	"net"

	"github.com/MKhiriev/go-soap-gateway/internal/adapter"
	"github.com/MKhiriev/go-soap-gateway/internal/config"
	myHTTP "github.com/MKhiriev/go-soap-gateway/internal/handler/http"
	"github.com/MKhiriev/go-soap-gateway/internal/locale"
	"github.com/MKhiriev/go-soap-gateway/internal/logger"
	"github.com/MKhiriev/go-soap-gateway/internal/server"
	"github.com/MKhiriev/go-soap-gateway/internal/service"
	"github.com/MKhiriev/go-soap-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	bootLog := logger.NewLogger("soap-gateway")
	bootLog.Info().Object("build", buildInfo).Msg("starting")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log, err := logger.NewLoggerWithLevel(cfg.App.ServiceName, cfg.Log.Level)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error creating logger")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("soap_url", cfg.Upstream.URL).
		Str("ca_path", cfg.Upstream.CAPath).
		Dur("soap_timeout", cfg.Upstream.Timeout).
		Str("default_locale", cfg.Locale.Default).
		Msg("received configs")

	trust, err := adapter.LoadTrustStore(cfg.Upstream.CAPath)
	if err != nil {
		log.Fatal().Err(err).Str("ca_path", cfg.Upstream.CAPath).Msg("error loading CA bundle")
	}
	if !trust.Pinned() {
		log.Warn().Str("ca_path", cfg.Upstream.CAPath).Msg("CA bundle not found, using platform roots")
	}

	signer, err := adapter.NewHTTPSignerAdapter(cfg.Upstream, trust, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating soap signer adapter")
	}

	translator, err := locale.New(cfg.Locale.Default)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating translator")
	}

	services, err := service.NewServices(signer, translator, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := myHTTP.NewHandler(services, translator, cfg.Server, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	base := baseURL(cfg.Server.HTTPAddress)
	log.Info().
		Str("gateway", base).
		Str("health", base+"/health").
		Str("sign", base+"/api/sign").
		Str("upstream", cfg.Upstream.URL).
		Msg("gateway listening")

	srv.RunServer()
}

// baseURL renders a listen address as a clickable local URL.
func baseURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
