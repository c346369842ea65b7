package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"avatarhub/internal/logger"
	"avatarhub/internal/model"
	"avatarhub/internal/seed"
)

var rootCmd = &cobra.Command{
	Use:           "seed",
	Short:         "Manage the sample avatars a new dashboard session starts with",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the built-in sample avatars to a YAML file",
	Args:  cobra.NoArgs,
	RunE:  runWrite,
}

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Validate seed files for use with SEED_PATH",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	writeCmd.Flags().StringP("out", "o", "seed.yaml", "destination file")
	rootCmd.AddCommand(writeCmd, checkCmd)
}

func runWrite(cmd *cobra.Command, args []string) error {
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	records := model.SeedAvatars()
	if err := seed.Write(out, records); err != nil {
		return err
	}
	logger.Info().Str("path", out).Int("avatars", len(records)).Msg("seed written")
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	invalid := 0
	for _, path := range args {
		records, err := seed.Load(path)
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("seed file is invalid")
			invalid++
			continue
		}
		logger.Info().Str("path", path).Int("avatars", len(records)).Msg("seed file is valid")
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d seed file(s) invalid", invalid, len(args))
	}
	return nil
}

func main() {
	logger.Init("development", "info")
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("seed")
	}
}
