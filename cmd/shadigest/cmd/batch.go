package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"massnet.org/shadigest/batch"
	"massnet.org/shadigest/errors"
	"massnet.org/shadigest/logging"
	"massnet.org/shadigest/source"
)

var batchFlagWorkers int

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <path>...",
	Short: "Print the digests of many files, hashed concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workers := config.Batch.Workers
		if batchFlagWorkers != 0 {
			workers = batchFlagWorkers
		}

		env := newEnv(true)
		defer env.close()

		hasher, err := batch.NewHasher(workers, env.digester)
		if err != nil {
			return err
		}
		defer hasher.Release()

		logging.VPrint(logging.DEBUG, "batch started", logging.LogFormat{"files": len(args), "workers": workers})
		var (
			failed   int
			firstErr error
		)
		for _, r := range hasher.HashFiles(args) {
			if r.Err != nil {
				if firstErr == nil {
					firstErr = r.Err
				}
				failed++
				fmt.Fprintf(cmd.OutOrStderr(), "Error: %v\n", r.Err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", r.Hash, r.Path)
			env.record(source.KindFile, r.Path, r.Hash, int(r.Size))
		}

		if failed > 0 {
			return errors.Errorf(errors.CodeOf(firstErr), "%d of %d files failed", failed, len(args))
		}
		return nil
	},
}
