package cmd

import (
	"context"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	config "github.com/thirdweb-dev/watcher/configs"
	"github.com/thirdweb-dev/watcher/internal/orchestrator"
	"github.com/thirdweb-dev/watcher/internal/rpc"
)

var (
	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Watch an already deployed contract",
		Long:  "Installs a log filter for the watched event on the contract at --address and streams matching logs until interrupted. Nothing is deployed or called.",
		Run: func(cmd *cobra.Command, args []string) {
			if config.Cfg.Metrics.Enabled {
				go func() {
					RunApi(cmd, args)
				}()
			}
			RunWatch(cmd, args)
		},
	}
)

func init() {
	watchCmd.Flags().String("address", "", "Address of the contract to watch")
	viper.BindPFlag("contract.address", watchCmd.Flags().Lookup("address"))
}

func RunWatch(cmd *cobra.Command, args []string) {
	if !gethCommon.IsHexAddress(config.Cfg.Contract.Address) {
		log.Fatal().Str("address", config.Cfg.Contract.Address).Msg("A valid contract address is required")
	}
	address := gethCommon.HexToAddress(config.Cfg.Contract.Address)

	rpc, err := rpc.Initialize()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize RPC")
	}
	defer rpc.Close()

	opts, closePublisher := publisherOptions()
	defer closePublisher()

	orchestrator, err := orchestrator.NewOrchestrator(rpc, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create orchestrator")
	}

	log.Info().Str("address", address.Hex()).Msg("Watching contract")
	if err := orchestrator.Watch(context.Background(), address); err != nil {
		log.Fatal().Err(err).Msg("Watch session failed")
	}
}
