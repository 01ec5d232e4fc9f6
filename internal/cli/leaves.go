package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"chebi-leaves/internal/app"
)

const defaultOutputPath = "results.tsv"

type leavesOptions struct {
	ChEBIID  string
	Output   string
	Format   string
	MaxDepth int
	Workers  int
}

func newLeavesCommand() *cobra.Command {
	opts := leavesOptions{}
	cmd := &cobra.Command{
		Use:   "leaves",
		Short: "Resolve the leaf molecules of an ontology node and write them as a table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLeaves(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.ChEBIID, "chebi-id", "", "ChEBI ontology ID (CHEBI:<digits> or <digits>)")
	cmd.Flags().StringVar(&opts.Output, "output", defaultOutputPath, "Output file with columns: ChEBI ID, Type, Name, SMILES")
	cmd.Flags().StringVar(&opts.Format, "format", "tsv", "Output format (tsv or yaml)")
	cmd.Flags().IntVar(&opts.MaxDepth, "depth", 1, "Ontology levels to expand below the root (-1 = unbounded)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 1, "Concurrent structure lookups")

	_ = viper.BindPFlag("leaves.chebi_id", cmd.Flags().Lookup("chebi-id"))
	_ = viper.BindPFlag("leaves.output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("leaves.format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("leaves.depth", cmd.Flags().Lookup("depth"))
	_ = viper.BindPFlag("leaves.workers", cmd.Flags().Lookup("workers"))

	return cmd
}

func runLeaves(ctx context.Context, cmd *cobra.Command, opts leavesOptions) error {
	chebiID := resolveString(cmd, opts.ChEBIID, "leaves.chebi_id", "chebi-id")
	if strings.TrimSpace(chebiID) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("chebi id is required")
	}
	ctx = log.Logger.WithContext(ctx)
	service := newAppService()
	result, err := service.Leaves(ctx, app.LeavesRequest{
		ChEBIID:    chebiID,
		OutputPath: resolveString(cmd, opts.Output, "leaves.output", "output"),
		Format:     resolveString(cmd, opts.Format, "leaves.format", "format"),
		MaxDepth:   resolveInt(cmd, opts.MaxDepth, "leaves.depth", "depth"),
		Workers:    resolveInt(cmd, opts.Workers, "leaves.workers", "workers"),
	})
	if err != nil {
		return err
	}
	for _, dropped := range result.Dropped {
		log.Debug().
			Str("parent", dropped.ParentID).
			Str("chebi_id", dropped.ID).
			Str("type", dropped.RawRelation).
			Str("reason", string(dropped.Reason)).
			Msg("ontology child dropped")
	}
	fmt.Printf("resolved: %d leaves of %s -> %s\n", result.LeafCount, result.RootID, result.OutputPath)
	if result.MissingStructures > 0 {
		fmt.Printf("without SMILES: %d\n", result.MissingStructures)
	}
	if len(result.Dropped) > 0 {
		fmt.Printf("dropped: %d\n", len(result.Dropped))
	}
	return nil
}
