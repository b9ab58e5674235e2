package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	configs "github.com/thirdweb-dev/watcher/configs"
	"github.com/thirdweb-dev/watcher/internal/env"
	customLogger "github.com/thirdweb-dev/watcher/internal/log"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "watcher",
		Short: "Deploy a contract, watch one of its events and invoke it",
		Long:  "Deploys the configured contract, installs a log filter for the watched event signature and polls it while calling the configured method. Runs until interrupted or until the log stream fails.",
		Run: func(cmd *cobra.Command, args []string) {
			if configs.Cfg.Metrics.Enabled {
				go func() {
					RunApi(cmd, args)
				}()
			}
			RunOrchestrator(cmd, args)
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yml)")
	rootCmd.PersistentFlags().String("rpc-url", "", "RPC Url of the node to deploy to and watch")
	rootCmd.PersistentFlags().String("log-level", "", "Log level to use for the application")
	rootCmd.PersistentFlags().Bool("log-prettify", false, "Whether to prettify the log output")
	rootCmd.PersistentFlags().String("contract-bin", "", "Path to the hex encoded contract bytecode")
	rootCmd.PersistentFlags().String("contract-abi", "", "Path to the contract ABI JSON")
	rootCmd.PersistentFlags().String("contract-method", "", "Contract method to call once deployed, either a name from the ABI or a signature")
	rootCmd.PersistentFlags().String("contract-sender", "", "Node-managed account to send from, either an address or an index into eth_accounts")
	rootCmd.PersistentFlags().Uint64("deploy-gasLimit", 0, "Gas limit of the deployment transaction")
	rootCmd.PersistentFlags().Uint64("deploy-confirmations", 0, "Confirming blocks to wait for after inclusion, 0 accepts on first inclusion")
	rootCmd.PersistentFlags().Int("deploy-pollInterval", 10000, "How often to poll for the deployment receipt in milliseconds")
	rootCmd.PersistentFlags().Int("deploy-timeout", 0, "Give up waiting for the deployment after this many milliseconds, 0 waits indefinitely")
	rootCmd.PersistentFlags().String("watcher-signature", "", "Event signature hash (topic 0) to watch")
	rootCmd.PersistentFlags().String("watcher-event", "", "Event declaration to watch when no signature hash is set, e.g. Hello(string)")
	rootCmd.PersistentFlags().Int("watcher-pollInterval", 0, "How often to poll the log filter in milliseconds, 0 polls continuously")
	rootCmd.PersistentFlags().Uint64("call-gasLimit", 0, "Gas limit of the contract call, 0 lets the node estimate")
	rootCmd.PersistentFlags().Bool("call-waitReceipt", false, "Wait for the call to be mined and fail on revert")
	rootCmd.PersistentFlags().Bool("metrics-enabled", false, "Serve prometheus metrics and a health check")
	rootCmd.PersistentFlags().Int("metrics-port", 2112, "Port of the metrics server")
	rootCmd.PersistentFlags().Bool("publisher-enabled", false, "Publish every delivered log to Kafka")
	rootCmd.PersistentFlags().String("publisher-brokers", "", "Comma separated Kafka brokers")
	rootCmd.PersistentFlags().String("publisher-topic", "", "Kafka topic for delivered logs")
	rootCmd.PersistentFlags().String("publisher-username", "", "Kafka SASL username")
	rootCmd.PersistentFlags().String("publisher-password", "", "Kafka SASL password")
	viper.BindPFlag("rpc.url", rootCmd.PersistentFlags().Lookup("rpc-url"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.prettify", rootCmd.PersistentFlags().Lookup("log-prettify"))
	viper.BindPFlag("contract.bin", rootCmd.PersistentFlags().Lookup("contract-bin"))
	viper.BindPFlag("contract.abi", rootCmd.PersistentFlags().Lookup("contract-abi"))
	viper.BindPFlag("contract.method", rootCmd.PersistentFlags().Lookup("contract-method"))
	viper.BindPFlag("contract.sender", rootCmd.PersistentFlags().Lookup("contract-sender"))
	viper.BindPFlag("deploy.gasLimit", rootCmd.PersistentFlags().Lookup("deploy-gasLimit"))
	viper.BindPFlag("deploy.confirmations", rootCmd.PersistentFlags().Lookup("deploy-confirmations"))
	viper.BindPFlag("deploy.pollInterval", rootCmd.PersistentFlags().Lookup("deploy-pollInterval"))
	viper.BindPFlag("deploy.timeout", rootCmd.PersistentFlags().Lookup("deploy-timeout"))
	viper.BindPFlag("watcher.signature", rootCmd.PersistentFlags().Lookup("watcher-signature"))
	viper.BindPFlag("watcher.event", rootCmd.PersistentFlags().Lookup("watcher-event"))
	viper.BindPFlag("watcher.pollInterval", rootCmd.PersistentFlags().Lookup("watcher-pollInterval"))
	viper.BindPFlag("call.gasLimit", rootCmd.PersistentFlags().Lookup("call-gasLimit"))
	viper.BindPFlag("call.waitReceipt", rootCmd.PersistentFlags().Lookup("call-waitReceipt"))
	viper.BindPFlag("metrics.enabled", rootCmd.PersistentFlags().Lookup("metrics-enabled"))
	viper.BindPFlag("metrics.port", rootCmd.PersistentFlags().Lookup("metrics-port"))
	viper.BindPFlag("publisher.enabled", rootCmd.PersistentFlags().Lookup("publisher-enabled"))
	viper.BindPFlag("publisher.brokers", rootCmd.PersistentFlags().Lookup("publisher-brokers"))
	viper.BindPFlag("publisher.topic", rootCmd.PersistentFlags().Lookup("publisher-topic"))
	viper.BindPFlag("publisher.username", rootCmd.PersistentFlags().Lookup("publisher-username"))
	viper.BindPFlag("publisher.password", rootCmd.PersistentFlags().Lookup("publisher-password"))

	rootCmd.AddCommand(deployCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(apiCmd)
}

func initConfig() {
	env.Load()
	if err := configs.LoadConfig(cfgFile); err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	customLogger.InitLogger()
}
