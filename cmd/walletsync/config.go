package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/walletsync/internal/chainfeed"
	"github.com/gabapcia/walletsync/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "WALLETSYNC"

const (
	storeMemory     = "memory"
	storePersistent = "persistent"
)

// splitPairs parses "key=value,key=value". Values may contain colons, which
// the map syntax of envconfig does not allow.
func splitPairs(value, expected string) ([][2]string, error) {
	var pairs [][2]string
	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		k, v, ok := strings.Cut(pair, "=")
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if !ok || k == "" || v == "" {
			return nil, fmt.Errorf("invalid entry %q: expected %s", pair, expected)
		}

		pairs = append(pairs, [2]string{k, v})
	}

	return pairs, nil
}

// providerEndpoints maps a provider tag to the URL of its status endpoint,
// read as "changenow=https://...,exolix=https://...".
type providerEndpoints map[string]string

func (p *providerEndpoints) Decode(value string) error {
	pairs, err := splitPairs(value, "tag=url")
	if err != nil {
		return err
	}

	endpoints := make(providerEndpoints, len(pairs))
	for _, kv := range pairs {
		endpoints[kv[0]] = kv[1]
	}

	*p = endpoints
	return nil
}

// chainWallets lists the followed addresses, read as "w1=0xabc,w1=0xdef".
// A wallet may appear more than once.
type chainWallets []chainfeed.Wallet

func (w *chainWallets) Decode(value string) error {
	pairs, err := splitPairs(value, "walletID=address")
	if err != nil {
		return err
	}

	wallets := make(chainWallets, 0, len(pairs))
	for _, kv := range pairs {
		wallets = append(wallets, chainfeed.Wallet{ID: kv[0], Address: kv[1]})
	}

	*w = wallets
	return nil
}

type redisConfig struct {
	Addr     string `envconfig:"ADDR" default:"localhost:6379"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

// chainConfig describes the chain followed by the chain feed. The feed is
// off unless RPCURL is set.
type chainConfig struct {
	RPCURL         string       `envconfig:"RPC_URL"`
	CoinUID        string       `envconfig:"COIN_UID" default:"ethereum"`
	BlockchainType string       `envconfig:"BLOCKCHAIN_TYPE" default:"ethereum"`
	Decimals       int32        `envconfig:"DECIMALS" default:"18"`
	Wallets        chainWallets `envconfig:"WALLETS"`
	MaxBlocks      int          `envconfig:"MAX_BLOCKS" default:"100"`
}

func (c chainConfig) asset() chainfeed.Asset {
	return chainfeed.Asset{
		CoinUID:        c.CoinUID,
		BlockchainType: c.BlockchainType,
		Decimals:       c.Decimals,
	}
}

type natsConfig struct {
	URL           string `envconfig:"URL"`
	Name          string `envconfig:"NAME" default:"walletsync"`
	Token         string `envconfig:"TOKEN"`
	SubjectPrefix string `envconfig:"SUBJECT_PREFIX"`
}

// config is read from WALLETSYNC_* environment variables.
type config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"walletsync"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`

	// Store selects where pending transactions and swap orders live: "memory"
	// keeps them in process, "persistent" puts pending transactions in Redis
	// and swap orders in Postgres.
	Store       string      `envconfig:"STORE" default:"memory"`
	Redis       redisConfig `envconfig:"REDIS"`
	PostgresDSN string      `envconfig:"POSTGRES_DSN"`

	// NATS is optional; swap events are only published when URL is set.
	NATS natsConfig `envconfig:"NATS"`

	Chain chainConfig `envconfig:"CHAIN"`

	PendingTTL         time.Duration     `envconfig:"PENDING_TTL" default:"24h"`
	ReconcileBatchSize int               `envconfig:"RECONCILE_BATCH_SIZE" default:"10"`
	StatusAttempts     uint              `envconfig:"STATUS_ATTEMPTS" default:"1"`
	ProviderEndpoints  providerEndpoints `envconfig:"PROVIDER_ENDPOINTS"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"5s"`
	HTTPRetries int           `envconfig:"HTTP_RETRIES" default:"2"`
}

var (
	errUnknownStore       = errors.New("unknown store kind")
	errMissingPostgresDSN = errors.New("postgres dsn is required for the persistent store")
	errNoChainWallets     = errors.New("chain feed needs at least one wallet address")
)

func (c config) validate() error {
	switch c.Store {
	case storeMemory:
	case storePersistent:
		if c.PostgresDSN == "" {
			return errMissingPostgresDSN
		}
	default:
		return fmt.Errorf("%w: %q", errUnknownStore, c.Store)
	}

	if c.Chain.RPCURL == "" {
		return nil
	}

	if len(c.Chain.Wallets) == 0 {
		return errNoChainWallets
	}

	if err := validator.Validate(c.Chain.asset()); err != nil {
		return fmt.Errorf("chain asset: %w", err)
	}

	for _, w := range c.Chain.Wallets {
		if err := validator.Validate(w); err != nil {
			return fmt.Errorf("chain wallet: %w", err)
		}
	}

	return nil
}

// loadConfig reads an optional .env file from the working directory and then
// the environment.
func loadConfig() (config, error) {
	_ = godotenv.Load()

	var cfg config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return config{}, err
	}

	if err := cfg.validate(); err != nil {
		return config{}, err
	}

	return cfg, nil
}
