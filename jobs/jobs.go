package jobs

import (
	"fmt"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/LOCKhart07/wallet-balance-tracker/chains"
	"github.com/LOCKhart07/wallet-balance-tracker/config"
	"github.com/LOCKhart07/wallet-balance-tracker/jobs/monitor"
	"github.com/LOCKhart07/wallet-balance-tracker/metrics"
	"github.com/LOCKhart07/wallet-balance-tracker/telegram"
)

type MonitorService struct {
	Monitor *monitor.Monitor
	Bot     *telegram.Bot
}

// NewMonitorService wires chain clients, telegram and the monitor from
// the config. A nil scheduler skips the daily-run registration, one-shot
// sweeps use that.
func NewMonitorService(scheduler *gocron.Scheduler, cfg *config.Config) *MonitorService {
	log := logrus.New()
	chainMap := make(map[string]chains.BlockChain)
	for _, chainCfg := range cfg.Chains {
		evmChain, err := chains.NewEvmCli(chainCfg)
		if err != nil {
			panic(fmt.Errorf("chains.NewEvmCli error:%v\nchainName:%v", err, chainCfg.ChainName))
		}
		logrus.Printf("NewEvmCli %v success", chainCfg.ChainName)
		chainMap[chainCfg.ChainName] = evmChain
	}
	metricsManager := metrics.NewMetricManager()
	tgClient := telegram.NewClient(cfg.Telegram.BotToken)
	notifier := telegram.NewNotifier(log, tgClient, cfg.Telegram)
	mon := monitor.NewMonitor(log, cfg, chainMap, notifier, metricsManager)
	if scheduler != nil {
		mon.Monitoring(scheduler)
	}
	bot := telegram.NewBot(log, tgClient, []telegram.Command{
		{
			Name:        "status",
			Description: "Run the wallet monitor now",
			Run: func() error {
				mon.Sweep(monitor.SweepOptions{RequestFormat: true})
				return nil
			},
		},
		{
			Name:        "allstatus",
			Description: "Report every wallet balance now",
			Run: func() error {
				mon.Sweep(monitor.SweepOptions{NotifyAll: true})
				return nil
			},
		},
	})
	return &MonitorService{
		Monitor: mon,
		Bot:     bot,
	}
}
