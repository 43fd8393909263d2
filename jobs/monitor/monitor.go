package monitor

import (
	"fmt"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/LOCKhart07/wallet-balance-tracker/chains"
	"github.com/LOCKhart07/wallet-balance-tracker/config"
	"github.com/LOCKhart07/wallet-balance-tracker/metrics"
)

// Notifier delivers one formatted message to every configured recipient.
type Notifier interface {
	Notify(message string)
}

type Monitor struct {
	log            *logrus.Logger
	cfg            *config.Config
	chains         map[string]chains.BlockChain
	notifier       Notifier
	metricsManager *metrics.MetricManager
}

// SweepOptions control a single monitoring pass.
type SweepOptions struct {
	// RequestFormat appends the request-format section to notifications.
	RequestFormat bool
	// NotifyAll notifies for every token regardless of threshold state.
	NotifyAll bool
}

func NewMonitor(log *logrus.Logger, cfg *config.Config, chainMap map[string]chains.BlockChain, notifier Notifier, metricsManager *metrics.MetricManager) *Monitor {
	return &Monitor{
		log:            log,
		cfg:            cfg,
		chains:         chainMap,
		notifier:       notifier,
		metricsManager: metricsManager,
	}
}

// Monitoring registers the daily sweep on the scheduler.
func (m *Monitor) Monitoring(scheduler *gocron.Scheduler) {
	_, err := scheduler.Every(1).Day().At(m.cfg.DailyRunAt).Do(func() {
		m.log.Infof("⏰ scheduled daily run at %v starting...", m.cfg.DailyRunAt)
		m.Sweep(SweepOptions{})
		m.log.Info("✅ scheduled daily run complete")
	})
	if err != nil {
		panic(fmt.Errorf("daily sweep scheduler.Every exec error:%+v", err))
	}
}

// Sweep runs one monitoring pass: a connectivity line per chain, then
// every wallet token checked and conditionally notified. Failures stay
// scoped to the item they hit, the sweep always finishes.
func (m *Monitor) Sweep(opts SweepOptions) {
	for _, chainCfg := range m.cfg.Chains {
		cli, ok := m.chains[chainCfg.ChainName]
		if !ok {
			m.log.Warnf("⚠️ no provider for chain: %v", chainCfg.ChainName)
			continue
		}
		height, err := cli.GetLatestHeight()
		if err != nil {
			m.log.Warnf("🔌 %v: connection failed: %v", chainCfg.ChainName, err)
			continue
		}
		m.log.Infof("🔌 %v: connected (height %v)", chainCfg.ChainName, height)
	}
	for _, wallet := range m.cfg.Wallets {
		m.log.Infof("💼 Wallet: %v (%v)", wallet.Name, wallet.ChainName)
		cli, ok := m.chains[wallet.ChainName]
		if !ok {
			m.log.Warnf("⚠️ skipping wallet %v, no provider for chain: %v", wallet.Name, wallet.ChainName)
			continue
		}
		for _, token := range wallet.Tokens {
			result, err := cli.FetchBalance(wallet.Address, token)
			if err != nil {
				m.log.Warnf("⚠️ %v check error:%+v", token.Name, err)
				if m.metricsManager != nil {
					m.metricsManager.Counter.With("chain_name", wallet.ChainName).
						With("option", "token-check-errors").Add(1)
				}
				continue
			}
			eval := Evaluate(result, token)
			m.log.Infof("  %v", eval.StatusLine())
			if m.metricsManager != nil {
				m.metricsManager.Gauge.With("chain_name", wallet.ChainName).
					With("option", fmt.Sprintf("%v_%v-balance", wallet.Name, eval.DisplaySymbol)).
					Set(eval.Balance.InexactFloat64())
			}
			if (m.cfg.Telegram.Enabled && eval.NeedsTopup) || opts.NotifyAll {
				m.notifier.Notify(FormatMessage(wallet, eval, opts.RequestFormat))
			}
		}
	}
}
