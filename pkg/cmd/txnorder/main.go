// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"context"
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/txnsched/pkg/txn/ressched"
	"github.com/cockroachdb/txnsched/pkg/util/log"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootFlags = pflag.NewFlagSet(`txnorder`, pflag.ExitOnError)
var direction = rootFlags.String("direction", "both",
	"order to print: natural (prepare and commit), reverse (rollback) or both")
var verbosity = rootFlags.Int32("v", 0, "log verbosity")
var redactableLogs = rootFlags.Bool("redactable-logs", false,
	"keep redaction markers around unsafe values in log output")

var rootCmd = &cobra.Command{
	Use:   "txnorder [config-file]",
	Short: "print the order in which transaction resources are addressed",
	Long: `txnorder reads the resources enlisted in a transaction, each with an
optional commit ordering position, and prints the order in which a
coordinator prepares and commits them and the order in which it rolls
them back.

Examples:

  txnorder resources.yaml
  txnorder --direction=reverse resources.yaml

See testdata/resources.yaml for an example of a config file.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer log.SetVerbosity(*verbosity)()
		defer log.SetRedactable(*redactableLogs)()
		return runOrder(cmd.Context(), cmd.OutOrStdout(), args[0], *direction)
	},
}

func init() {
	rootCmd.Flags().AddFlagSet(rootFlags)
}

func runOrder(ctx context.Context, w io.Writer, configFile, dir string) error {
	var dirs []ressched.Direction
	if dir == "both" {
		dirs = []ressched.Direction{ressched.Natural, ressched.Reverse}
	} else {
		d, err := ressched.ParseDirection(dir)
		if err != nil {
			return err
		}
		dirs = []ressched.Direction{d}
	}

	f, err := os.Open(configFile)
	if err != nil {
		return err
	}
	defer f.Close()
	c, err := loadConfig(f)
	if err != nil {
		return errors.Wrapf(err, "loading %s", configFile)
	}

	ctx = logtags.AddTag(ctx, "config", configFile)
	s := c.scheduler()
	log.Infof(ctx, "loaded %s", s)
	for _, d := range dirs {
		rows, err := orderRows(ctx, s, d)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, d.String()+"\n"); err != nil {
			return err
		}
		renderRows(w, rows)
	}
	return nil
}

// orderRows returns one (step, priority, resource) row per resource in the
// traversal order of dir.
func orderRows(
	ctx context.Context, s *ressched.Scheduler[resource], dir ressched.Direction,
) ([][]string, error) {
	rows := make([][]string, 0, s.Len())
	err := s.Walk(ctx, dir, func(ctx context.Context, r resource) error {
		log.VEventf(ctx, 1, "step %d: %s", len(rows)+1, r.name)
		rows = append(rows, []string{strconv.Itoa(len(rows) + 1), r.pos.String(), r.name})
		return nil
	})
	return rows, err
}

func renderRows(w io.Writer, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"step", "priority", "resource"})
	table.AppendBulk(rows)
	table.Render()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
