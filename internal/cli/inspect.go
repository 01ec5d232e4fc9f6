package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"chebi-leaves/internal/app"
)

type inspectOptions struct {
	Input string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a written leaf table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Input, "input", defaultOutputPath, "Leaf table to inspect")
	_ = viper.BindPFlag("inspect.input", cmd.Flags().Lookup("input"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{
		InputPath: resolveString(cmd, opts.Input, "inspect.input", "input"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("leaves: %d\n", result.LeafCount)
	for _, summary := range result.Relations {
		relation := string(summary.Relation)
		if relation == "" {
			relation = "root"
		}
		fmt.Printf("- %s: %d\n", relation, summary.Count)
	}
	fmt.Printf("without SMILES: %d\n", result.MissingStructures)
	if len(result.MissingIDs) > 0 {
		fmt.Printf("  %s\n", strings.Join(result.MissingIDs, ", "))
	}
	return nil
}
