package cmd

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/thirdweb-dev/watcher/internal/orchestrator"
	"github.com/thirdweb-dev/watcher/internal/rpc"
)

var (
	deployCmd = &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the configured contract and exit",
		Long:  "Deploys the configured contract, waits for the configured number of confirmations and prints its address. Nothing is watched or called.",
		Run: func(cmd *cobra.Command, args []string) {
			RunDeploy(cmd, args)
		},
	}
)

func RunDeploy(cmd *cobra.Command, args []string) {
	rpc, err := rpc.Initialize()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize RPC")
	}
	defer rpc.Close()

	orchestrator, err := orchestrator.NewOrchestrator(rpc)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create orchestrator")
	}

	handle, sender, err := orchestrator.Deploy(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Deployment failed")
	}
	log.Info().
		Str("address", handle.Address.Hex()).
		Str("tx", handle.TxHash.Hex()).
		Uint64("block", handle.BlockNumber).
		Str("sender", sender.Hex()).
		Msg("Deployment ready")
	cmd.Println(handle.Address.Hex())
}
