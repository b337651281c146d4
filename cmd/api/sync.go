package main

import (
	"fmt"

	"github.com/spf13/cobra"

	appmirror "github.com/jhoicas/ilms-api/internal/application/mirror"
)

func runSync(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	if !rt.cfg.Mirror.Enabled() {
		return fmt.Errorf("MIRROR_DATABASE_URL: %w", appmirror.ErrNotConfigured)
	}
	if err := rt.connectMirror(ctx); err != nil {
		return err
	}

	report, err := rt.mirrorJob().Run(ctx)
	if err != nil {
		return err
	}
	for _, t := range report.Tables {
		fmt.Fprintf(cmd.OutOrStdout(), "%-22s %6d", t.Table, t.Rows)
		if t.Err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "  ERROR: %v", t.Err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	if report.Failed() {
		return fmt.Errorf("copia al espejo incompleta")
	}
	return nil
}
