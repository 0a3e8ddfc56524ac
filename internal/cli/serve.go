package cli

import (
	"github.com/spf13/cobra"

	"github.com/mzakyi/viral-clip-generator/internal/domain/moments"
	"github.com/mzakyi/viral-clip-generator/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the moment detection engine over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	cmd.Flags().String("addr", ":8080", "Listen address")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	addr, _ := cmd.Flags().GetString("addr")

	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	srv := server.New(server.Options{
		Detector: moments.NewDetector(
			moments.WithMinScore(cfg.Detector.MinViralScore),
			moments.WithMergeGap(cfg.Detector.MergeGapSec),
		),
		Energy:  cfg.EnergyConfig(),
		TopN:    cfg.Detector.TopN,
		MinClip: cfg.Detector.MinClipSec,
		MaxClip: cfg.Detector.MaxClipSec,
		Log:     log,
	})

	log.Info().Str("addr", addr).Msg("starting HTTP server")
	return srv.Listen(addr)
}
