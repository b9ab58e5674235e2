package cmd

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	config "github.com/thirdweb-dev/watcher/configs"
	"github.com/thirdweb-dev/watcher/internal/orchestrator"
	"github.com/thirdweb-dev/watcher/internal/publisher"
	"github.com/thirdweb-dev/watcher/internal/rpc"
)

func RunOrchestrator(cmd *cobra.Command, args []string) {
	log.Info().Msg("Starting watcher")
	rpc, err := rpc.Initialize()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize RPC")
	}
	defer rpc.Close()
	log.Info().Str("rpc", rpc.GetURL()).Str("chain_id", rpc.GetChainID().String()).Msg("Connected to node")

	opts, closePublisher := publisherOptions()
	defer closePublisher()

	orchestrator, err := orchestrator.NewOrchestrator(rpc, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create orchestrator")
	}

	if err := orchestrator.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Watch session failed")
	}
	log.Info().Msg("Watch session ended")
}

// publisherOptions routes delivered logs to Kafka when the publisher is
// enabled.
func publisherOptions() ([]orchestrator.OrchestratorOption, func()) {
	if !config.Cfg.Publisher.Enabled {
		return nil, func() {}
	}
	p := publisher.GetInstance()
	if !p.Enabled() {
		log.Fatal().Msg("Publisher is enabled but could not connect to Kafka")
	}
	return []orchestrator.OrchestratorOption{orchestrator.WithLogHandler(p.PublishLog)}, func() {
		p.Close()
	}
}
