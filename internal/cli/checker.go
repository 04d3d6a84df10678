package cli

import (
	"context"
	"log/slog"
	"os"
	"time"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/route53domains"

	"github.com/manadonis/domain-fetcher/internal/checker"
	"github.com/manadonis/domain-fetcher/internal/checker/registration"
	"github.com/manadonis/domain-fetcher/internal/checker/resolution"
	"github.com/manadonis/domain-fetcher/internal/checker/thirdparty"
	"github.com/manadonis/domain-fetcher/internal/config"
)

// newChecker wires the standard strategy chain with pacing from config.
func newChecker(ctx context.Context, cfg *config.Config, opts ...checker.Option) *checker.Checker {
	registry := checker.NewRegistry()
	registry.Register(registration.New())
	registry.Register(resolution.New())
	registry.Register(newThirdParty(ctx, cfg))

	base := []checker.Option{
		checker.WithMethodDelay(time.Duration(cfg.Pacing.MethodDelayMS) * time.Millisecond),
		checker.WithDomainDelay(time.Duration(cfg.Pacing.DomainDelayMS) * time.Millisecond),
		checker.WithSearchDelay(time.Duration(cfg.Pacing.SearchDelayMS) * time.Millisecond),
	}

	return checker.New(registry, append(base, opts...)...)
}

// newThirdParty selects the third-party strategy for the effective
// provider. route53 talks to AWS directly; every other provider goes
// through the RapidAPI client.
func newThirdParty(ctx context.Context, cfg *config.Config) checker.Strategy {
	provider := getProvider(cfg)
	if provider == thirdparty.Route53Provider {
		return thirdparty.NewRoute53(awsAvailabilityAPI(ctx))
	}
	return thirdparty.New(provider, getAPIKey(provider), thirdpartyClientOptions(cfg)...)
}

// awsAvailabilityAPI builds a route53domains client when the AWS
// credential chain is configured, nil otherwise. A nil API leaves the
// route53 strategy in place but degrades its checks to Unknown.
func awsAvailabilityAPI(ctx context.Context) thirdparty.AvailabilityAPI {
	if os.Getenv("AWS_ACCESS_KEY_ID") == "" && os.Getenv("AWS_PROFILE") == "" {
		return nil
	}

	cfg, err := awsConfig.LoadDefaultConfig(ctx)
	if err != nil {
		slog.Warn("loading AWS config", "error", err)
		return nil
	}

	// The route53domains API is only served out of us-east-1.
	cfg.Region = "us-east-1"

	return route53domains.NewFromConfig(cfg)
}

func thirdpartyClientOptions(cfg *config.Config) []thirdparty.ClientOption {
	return []thirdparty.ClientOption{
		thirdparty.WithTimeout(time.Duration(cfg.Lookup.HTTPTimeout) * time.Second),
		thirdparty.WithRequestsPerMinute(cfg.Lookup.RequestsPerMinute),
	}
}

func setupLogger(cfg *config.Config) {
	level := parseLogLevel(cfg.Logging.Level)
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Logs go to stderr so stdout stays clean for results.
	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
