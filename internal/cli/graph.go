package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"graphql-import/internal/app"
)

type graphOptions struct {
	Entry       string
	ModuleRoots []string
}

func newGraphCommand() *cobra.Command {
	opts := graphOptions{}
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "List the import edges reachable from an entry schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGraph(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Entry, "entry", "", "Entry schema file")
	cmd.Flags().StringSliceVar(&opts.ModuleRoots, "module-root", nil, "Module root directories for bare import targets")
	_ = viper.BindPFlag("entry", cmd.Flags().Lookup("entry"))
	_ = viper.BindPFlag("module_roots", cmd.Flags().Lookup("module-root"))
	return cmd
}

func runGraph(ctx context.Context, cmd *cobra.Command, opts graphOptions) error {
	service := newAppService()
	result, err := service.Graph(ctx, app.GraphRequest{
		EntryPath:   resolveString(cmd, opts.Entry, "entry", "entry"),
		ModuleRoots: resolveStrings(cmd, opts.ModuleRoots, "module_roots", "module-root"),
	})
	if err != nil {
		return err
	}
	for _, edge := range result.Edges {
		fmt.Printf("%s -> %s (%s)\n", edge.From, edge.To, edge.Record)
	}
	fmt.Printf("documents: %d\n", result.Documents)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || name == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
