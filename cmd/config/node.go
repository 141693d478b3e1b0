package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// EnvPrefix is the prefix of the environment variables that override the node config
const EnvPrefix = "BOOSTO_"

// NodeConfig is a configuration for the node
type NodeConfig struct {
	StoreRoot        string
	StoreDriver      string
	RPCPort          int
	AdminAddress     string
	TokenName        string
	TokenSymbol      string
	LogLevel         string
	LogJSON          bool
	ReceiptCacheSize int
	GenesisBalances  map[string]string
}

// DefaultNodeConfig returns the config used for the missing values
func DefaultNodeConfig() *NodeConfig {
	return &NodeConfig{
		StoreRoot:       "./ndata",
		StoreDriver:     "leveldb",
		RPCPort:         48000,
		LogLevel:        "info",
		GenesisBalances: map[string]string{},
	}
}

// LoadEnv loads the env files into the environment and applies the BOOSTO_ variables to the config.
// Missing env files are ignored
func LoadEnv(cfg *NodeConfig, files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.WithStack(err)
		}
	}
	return ApplyEnv(cfg, os.Environ())
}

// ApplyEnv applies the BOOSTO_ variables of the KEY=VALUE list to the config
func ApplyEnv(cfg *NodeConfig, environ []string) error {
	for _, kv := range environ {
		ls := strings.SplitN(kv, "=", 2)
		if len(ls) != 2 || !strings.HasPrefix(ls[0], EnvPrefix) {
			continue
		}
		value := ls[1]
		switch strings.TrimPrefix(ls[0], EnvPrefix) {
		case "STORE_ROOT":
			cfg.StoreRoot = value
		case "STORE_DRIVER":
			cfg.StoreDriver = value
		case "RPC_PORT":
			port, err := strconv.Atoi(value)
			if err != nil {
				return errors.Wrap(ErrInvalidEnv, ls[0])
			}
			cfg.RPCPort = port
		case "ADMIN_ADDRESS":
			cfg.AdminAddress = value
		case "TOKEN_NAME":
			cfg.TokenName = value
		case "TOKEN_SYMBOL":
			cfg.TokenSymbol = value
		case "LOG_LEVEL":
			cfg.LogLevel = value
		case "LOG_JSON":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return errors.Wrap(ErrInvalidEnv, ls[0])
			}
			cfg.LogJSON = b
		case "RECEIPT_CACHE_SIZE":
			n, err := strconv.Atoi(value)
			if err != nil {
				return errors.Wrap(ErrInvalidEnv, ls[0])
			}
			cfg.ReceiptCacheSize = n
		}
	}
	return nil
}
