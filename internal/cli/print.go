package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"graphql-import/internal/app"
)

type printOptions struct {
	Entry       string
	SortFields  bool
	ModuleRoots []string
	Out         string
	Project     string
}

func newPrintCommand() *cobra.Command {
	opts := printOptions{}
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Resolve imports from an entry schema and print the merged SDL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPrint(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Entry, "entry", "", "Entry schema file")
	cmd.Flags().BoolVar(&opts.SortFields, "sort-fields", false, "Sort field lists deterministically")
	cmd.Flags().StringSliceVar(&opts.ModuleRoots, "module-root", nil, "Module root directories for bare import targets")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Write merged SDL to this file instead of stdout")
	cmd.Flags().StringVar(&opts.Project, "project", "", "Project file with defaults (gqlimport.yaml)")

	_ = viper.BindPFlag("entry", cmd.Flags().Lookup("entry"))
	_ = viper.BindPFlag("sort_fields", cmd.Flags().Lookup("sort-fields"))
	_ = viper.BindPFlag("module_roots", cmd.Flags().Lookup("module-root"))
	_ = viper.BindPFlag("out", cmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("project", cmd.Flags().Lookup("project"))

	return cmd
}

func runPrint(ctx context.Context, cmd *cobra.Command, opts printOptions) error {
	service := newAppService()
	req := app.ImportRequest{
		EntryPath:   resolveString(cmd, opts.Entry, "entry", "entry"),
		SortFields:  resolveBool(cmd, opts.SortFields, "sort_fields", "sort-fields"),
		ModuleRoots: resolveStrings(cmd, opts.ModuleRoots, "module_roots", "module-root"),
		OutputPath:  resolveString(cmd, opts.Out, "out", "out"),
	}

	if projectPath := resolveString(cmd, opts.Project, "project", "project"); projectPath != "" {
		project, err := service.Projects.LoadProject(projectPath)
		if err != nil {
			return err
		}
		req = app.ApplyProjectDefaults(ctx, req, project)
	}

	result, err := service.ImportSchema(ctx, req)
	if err != nil {
		return err
	}
	if result.OutputPath != "" {
		fmt.Printf("merged: %s (%d definitions from %d documents)\n",
			result.OutputPath, result.Definitions, result.Documents)
		return nil
	}
	fmt.Print(result.SDL)
	if !strings.HasSuffix(result.SDL, "\n") {
		fmt.Println()
	}
	return nil
}
