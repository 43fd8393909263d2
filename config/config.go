package config

import (
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/LOCKhart07/wallet-balance-tracker/tools"
)

const (
	DefaultHomeDirName   = ".wallet-balance-tracker"
	DefaultConfigDirName = "configs"
	DefaultConfigName    = "config.toml"

	DefaultMetricsAddr = ":3030"
	DefaultDailyRunAt  = "01:28"
)

// Environment variables that override the config file after decoding.
const (
	EnvRpcUrls         = "RPC_URLS"          // JSON object, chain name -> rpc url
	EnvTelegramToken   = "TELEGRAM_TOKEN"    // bot token
	EnvTelegramChatIDs = "TELEGRAM_CHAT_IDS" // JSON array of chat ids
	EnvShouldNotify    = "SHOULD_NOTIFY"     // "true" enables notifications
)

var (
	Home        string
	LocalConfig string
)

type Config struct {
	MetricsAddr string
	DailyRunAt  string
	Chains      []ChainConfig
	Wallets     []WalletConfig
	Telegram    TelegramConfig
}

type ChainConfig struct {
	ChainName string
	RpcUrl    string
}

type WalletConfig struct {
	Name      string
	ChainName string
	Address   string
	Tokens    []TokenConfig
}

// TokenConfig describes one asset to watch on a wallet. Address equal to
// the zero address selects the chain's native asset. Threshold and Topup
// are integer amounts in the token's smallest unit.
type TokenConfig struct {
	Name      string
	Address   string
	Threshold Amount
	Topup     Amount
}

type TelegramConfig struct {
	Enabled  bool
	BotToken string
	ChatIDs  []string
}

// Amount is a non-negative integer amount in a token's smallest unit,
// carried as a decimal string in the config file.
type Amount struct {
	value *big.Int
}

func NewAmount(v *big.Int) Amount {
	return Amount{value: v}
}

func (a *Amount) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		a.value = new(big.Int)
		return nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return errors.Errorf("invalid amount %q, want a base-10 integer", s)
	}
	if v.Sign() < 0 {
		return errors.Errorf("invalid amount %q, must not be negative", s)
	}
	a.value = v
	return nil
}

// BigInt returns the amount, never nil.
func (a Amount) BigInt() *big.Int {
	if a.value == nil {
		return new(big.Int)
	}
	return a.value
}

func (a Amount) String() string {
	return a.BigInt().String()
}

// LoadConfigs reads the toml config, applies environment overrides and
// validates the result. The file path is LocalConfig when set, otherwise
// Home (default ~/.wallet-balance-tracker)/configs/config.toml.
func LoadConfigs() (*Config, error) {
	configFilePath := LocalConfig
	if configFilePath == "" {
		if Home == "" {
			userDir, err := os.UserHomeDir()
			if err != nil {
				return nil, errors.Wrap(err, "resolve user home dir")
			}
			Home = filepath.Join(userDir, DefaultHomeDirName)
		}
		configFilePath = filepath.Join(Home, DefaultConfigDirName, DefaultConfigName)
	}
	cfg := &Config{}
	if err := tools.DecodeToml(configFilePath, cfg); err != nil {
		return nil, err
	}
	if cfg.MetricsAddr == "" {
		cfg.MetricsAddr = DefaultMetricsAddr
	}
	if cfg.DailyRunAt == "" {
		cfg.DailyRunAt = DefaultDailyRunAt
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validate %v", configFilePath)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if raw, ok := os.LookupEnv(EnvRpcUrls); ok {
		urls := map[string]string{}
		if err := json.Unmarshal([]byte(raw), &urls); err != nil {
			return errors.Wrapf(err, "parse %v", EnvRpcUrls)
		}
		for i := range cfg.Chains {
			if url, found := urls[cfg.Chains[i].ChainName]; found {
				cfg.Chains[i].RpcUrl = url
				delete(urls, cfg.Chains[i].ChainName)
			}
		}
		extra := make([]string, 0, len(urls))
		for chainName := range urls {
			extra = append(extra, chainName)
		}
		sort.Strings(extra)
		for _, chainName := range extra {
			cfg.Chains = append(cfg.Chains, ChainConfig{ChainName: chainName, RpcUrl: urls[chainName]})
		}
	}
	if token, ok := os.LookupEnv(EnvTelegramToken); ok {
		cfg.Telegram.BotToken = token
	}
	if raw, ok := os.LookupEnv(EnvTelegramChatIDs); ok {
		chatIDs, err := parseChatIDs(raw)
		if err != nil {
			return err
		}
		cfg.Telegram.ChatIDs = chatIDs
	}
	if raw, ok := os.LookupEnv(EnvShouldNotify); ok {
		cfg.Telegram.Enabled = strings.EqualFold(strings.TrimSpace(raw), "true")
	}
	return nil
}

// parseChatIDs accepts a JSON array of strings or of numbers, chat ids
// appear in the wild in both forms.
func parseChatIDs(raw string) ([]string, error) {
	var asStrings []string
	if err := json.Unmarshal([]byte(raw), &asStrings); err == nil {
		return asStrings, nil
	}
	var asNumbers []json.Number
	if err := json.Unmarshal([]byte(raw), &asNumbers); err != nil {
		return nil, errors.Wrapf(err, "parse %v", EnvTelegramChatIDs)
	}
	chatIDs := make([]string, 0, len(asNumbers))
	for _, n := range asNumbers {
		chatIDs = append(chatIDs, n.String())
	}
	return chatIDs, nil
}

func (c *Config) Validate() error {
	if _, err := parseDailyRunAt(c.DailyRunAt); err != nil {
		return err
	}
	seenChains := make(map[string]bool)
	for _, chain := range c.Chains {
		if chain.ChainName == "" {
			return errors.New("chain with empty ChainName")
		}
		if chain.RpcUrl == "" {
			return errors.Errorf("chain %v: empty RpcUrl", chain.ChainName)
		}
		if seenChains[chain.ChainName] {
			return errors.Errorf("duplicate chain %v", chain.ChainName)
		}
		seenChains[chain.ChainName] = true
	}
	seenWallets := make(map[string]bool)
	for _, wallet := range c.Wallets {
		if wallet.Name == "" {
			return errors.New("wallet with empty Name")
		}
		if seenWallets[wallet.Name] {
			return errors.Errorf("duplicate wallet %v", wallet.Name)
		}
		seenWallets[wallet.Name] = true
		if wallet.ChainName == "" {
			return errors.Errorf("wallet %v: empty ChainName", wallet.Name)
		}
		if !common.IsHexAddress(wallet.Address) {
			return errors.Errorf("wallet %v: invalid address %q", wallet.Name, wallet.Address)
		}
		for _, token := range wallet.Tokens {
			if token.Name == "" {
				return errors.Errorf("wallet %v: token with empty Name", wallet.Name)
			}
			if !common.IsHexAddress(token.Address) {
				return errors.Errorf("wallet %v: token %v: invalid address %q", wallet.Name, token.Name, token.Address)
			}
		}
	}
	return nil
}

func parseDailyRunAt(at string) (time.Time, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, at); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("invalid DailyRunAt %q, want HH:MM or HH:MM:SS", at)
}
