package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"massnet.org/shadigest/errors"
	"massnet.org/shadigest/history"
	"massnet.org/shadigest/logging"
	"massnet.org/shadigest/sha256"
)

var (
	historyFlagLimit  int
	historyFlagDigest string
	historyFlagJSON   bool
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded digests, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := openLedger()
		if err != nil {
			return err
		}
		defer ledger.Close()

		var records []*history.Record
		if historyFlagDigest != "" {
			var h sha256.Hash
			if err = sha256.Decode(&h, historyFlagDigest); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidDigest, err, "invalid --digest")
			}
			records, err = ledger.FindByDigest(h)
		} else {
			records, err = ledger.Recent(historyFlagLimit)
		}
		if err != nil {
			return errors.Wrap(errors.ErrCodeHistory, err, "read history")
		}
		logging.VPrint(logging.DEBUG, "history listed",
			logging.LogFormat{"records": len(records), "total": ledger.Len()})

		if historyFlagJSON {
			return printJSON(cmd.OutOrStdout(), records)
		}
		printRecords(cmd.OutOrStdout(), records)
		return nil
	},
}

func printRecords(w io.Writer, records []*history.Record) {
	for _, r := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.Seq, r.Time.Local().Format(time.RFC3339), r.Func, r.Kind, r.Hex, r.Source)
	}
}
