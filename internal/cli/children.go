package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"chebi-leaves/internal/app"
)

type childrenOptions struct {
	ChEBIID string
}

func newChildrenCommand() *cobra.Command {
	opts := childrenOptions{}
	cmd := &cobra.Command{
		Use:   "children",
		Short: "List the direct ontology children of a node",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChildren(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.ChEBIID, "chebi-id", "", "ChEBI ontology ID (CHEBI:<digits> or <digits>)")
	_ = viper.BindPFlag("children.chebi_id", cmd.Flags().Lookup("chebi-id"))
	return cmd
}

func runChildren(ctx context.Context, cmd *cobra.Command, opts childrenOptions) error {
	chebiID := resolveString(cmd, opts.ChEBIID, "children.chebi_id", "chebi-id")
	if strings.TrimSpace(chebiID) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("chebi id is required")
	}
	service := newAppService()
	result, err := service.Children(ctx, app.ChildrenRequest{ChEBIID: chebiID})
	if err != nil {
		return err
	}
	fmt.Printf("children of %s: %d\n", result.ID, len(result.Children))
	for _, child := range result.Children {
		fmt.Printf("- %s (%s) %s\n", child.ID, child.Relation, child.Name)
	}
	if len(result.Dropped) > 0 {
		fmt.Printf("dropped: %d\n", len(result.Dropped))
		for _, dropped := range result.Dropped {
			fmt.Printf("- %s (%s) %s [%s]\n", dropped.ID, dropped.RawRelation, dropped.Name, dropped.Reason)
		}
	}
	return nil
}
