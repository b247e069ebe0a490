package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"massnet.org/shadigest/errors"
	"massnet.org/shadigest/logging"
	"massnet.org/shadigest/sha256"
	"massnet.org/shadigest/source"
)

var fileFlagVerify string

// textCmd represents the text command
var textCmd = &cobra.Command{
	Use:   "text <text>",
	Short: "Print the digest of the UTF-8 bytes of text",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			logging.CPrint(logging.ERROR, "wrong argument count", logging.LogFormat{"count": len(args)})
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env := newEnv(true)
		defer env.close()

		h, err := env.digester.Text(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), h)
		env.record(source.KindText, args[0], h, len(args[0]))
		return nil
	},
}

// fileCmd represents the file command
var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Print the digest of a file",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			logging.CPrint(logging.ERROR, "wrong argument count", logging.LogFormat{"count": len(args)})
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var expected *sha256.Hash
		if fileFlagVerify != "" {
			h, err := sha256.NewHashFromStr(fileFlagVerify)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidDigest, err, "invalid --verify digest")
			}
			expected = h
		}

		env := newEnv(true)
		defer env.close()

		fd, err := env.digester.File(args[0])
		if err != nil {
			return err
		}
		logging.VPrint(logging.DEBUG, "file digested",
			logging.LogFormat{"path": fd.Path, "size": fd.Size, "cached": fd.Cached})
		fmt.Fprintln(cmd.OutOrStdout(), fd.Hash)
		env.record(source.KindFile, fd.Path, fd.Hash, int(fd.Size))

		if expected != nil && !expected.IsEqual(&fd.Hash) {
			return errors.Errorf(errors.ErrCodeDigestMismatch,
				"digest mismatch for %s: expected %s, got %s", fd.Path, expected, fd.Hash)
		}
		return nil
	},
}
