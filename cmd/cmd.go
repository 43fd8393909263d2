package cmd

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/LOCKhart07/wallet-balance-tracker/config"
	"github.com/LOCKhart07/wallet-balance-tracker/jobs"
	"github.com/LOCKhart07/wallet-balance-tracker/jobs/monitor"
	"github.com/LOCKhart07/wallet-balance-tracker/version"
)

var (
	rootCmd = &cobra.Command{
		Use:   "wallet-balance-tracker",
		Short: "Multi-chain wallet balance monitor with telegram alerts.",
		Run:   func(cmd *cobra.Command, args []string) { _ = cmd.Help() },
	}
	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the balance monitor, telegram bot and daily scheduler.",
		Run:   func(cmd *cobra.Command, args []string) { Run() },
	}
	sweepCmd = &cobra.Command{
		Use:   "sweep",
		Short: "Run one balance sweep and exit.",
		Run:   func(cmd *cobra.Command, args []string) { RunSweep() },
	}
	versionCmd = version.NewVersionCommand()

	notifyAll bool
)

func init() {
	startCmd.Flags().StringVarP(&config.LocalConfig, "config", "c", "", "")
	sweepCmd.Flags().StringVarP(&config.LocalConfig, "config", "c", "", "")
	sweepCmd.Flags().BoolVar(&notifyAll, "all", false, "notify for every token regardless of threshold")
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(-1)
	}
}

func Run() {
	cfg, err := config.LoadConfigs()
	if err != nil {
		logrus.Fatalf("load config error:%+v", err)
	}
	scheduler := gocron.NewScheduler(time.UTC)
	monitorSrv := jobs.NewMonitorService(scheduler, cfg)
	scheduler.StartAsync()
	if cfg.Telegram.BotToken != "" {
		go func() {
			if err := monitorSrv.Bot.Run(context.Background()); err != nil {
				logrus.Errorf("telegram bot stopped:%+v", err)
			}
		}()
	} else {
		logrus.Info("telegram bot token not configured, command bot disabled")
	}
	metricMux := http.NewServeMux()
	metricMux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(cfg.MetricsAddr, metricMux); err != nil {
		logrus.Fatal(err)
	}
}

func RunSweep() {
	cfg, err := config.LoadConfigs()
	if err != nil {
		logrus.Fatalf("load config error:%+v", err)
	}
	monitorSrv := jobs.NewMonitorService(nil, cfg)
	monitorSrv.Monitor.Sweep(monitor.SweepOptions{NotifyAll: notifyAll})
}
