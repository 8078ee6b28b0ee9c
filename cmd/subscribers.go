package cmd

import (
	"context"
	"fmt"
	"os"

	"status-notifier/feature/subscribers"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// subscribersCmd groups subscriber maintenance commands.
var subscribersCmd = &cobra.Command{
	Use:   "subscribers",
	Short: "Manage notification subscribers",
}

// importSubscribersCmd bulk-registers subscribers from a YAML file.
var importSubscribersCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Register subscribers from a YAML file",
	Long: `Upserts every subscriber listed in the file, matching existing ones by email.

File layout:
  subscribers:
    - firstname: Ada
      lastname: Lovelace
      email: ada@example.com
      servers: [NA1, EU2]

Invalid entries are reported and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImportSubscribers,
}

func init() {
	subscribersCmd.AddCommand(importSubscribersCmd)
	RootCmd.AddCommand(subscribersCmd)
}

func runImportSubscribers(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	rt, err := bootstrap(false)
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	svc := subscribers.NewService(rt.subscribers, rt.logger)
	report, err := svc.ImportYAML(context.Background(), f)
	if report != nil {
		fmt.Fprint(cmd.OutOrStdout(), renderImport(report))
	}
	if err != nil {
		return err
	}

	if len(report.Rejected) > 0 {
		rt.logger.Warn("Some subscribers were rejected", zap.Int("count", len(report.Rejected)))
	}
	return nil
}
