package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"massnet.org/shadigest/logging"
	"massnet.org/shadigest/shell"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   filepath.Base(os.Args[0]),
	Short: `Compute SHA-256 digests of text and files`,
	Long: `Compute SHA-256 digests of text and files.

Without a subcommand an interactive prompt reads lines of the form
'text: <your_text>' or 'file: <file_path>' until 'exit' or end of input.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configErr
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env := newEnv(true)
		defer env.close()

		logging.VPrint(logging.DEBUG, "interactive shell started", logging.LogFormat{"func": env.digester.Name()})
		return shell.New(env.digester, env.ledger, cmd.InOrStdin(), cmd.OutOrStdout()).Run(context.Background())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		reportError(RootCmd.ErrOrStderr(), err)
		logging.VPrint(logging.FATAL, "fail on RootCmd.Execute", logging.LogFormat{"err": err})
	}
}

// reportError prints err for the user. Console logging may be disabled, so
// this does not go through the loggers.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnInitialize(initLogger)
	cobra.OnInitialize(logBasicInfo)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.shadigest.json)")
	RootCmd.PersistentFlags().StringVar(&flagLogDir, "log_dir", "", "directory for log files (default is console only)")
	RootCmd.PersistentFlags().StringVar(&flagLogLevel, "log_level", "", "level of logs (trace, debug, info, warn, error, fatal, panic)")
	RootCmd.PersistentFlags().BoolVar(&flagDouble, "double", false, "compute SHA-256d, the SHA-256 of the SHA-256 digest")

	viper.BindPFlag("log_dir", RootCmd.PersistentFlags().Lookup("log_dir"))
	viper.BindPFlag("log_level", RootCmd.PersistentFlags().Lookup("log_level"))
	viper.BindPFlag("double", RootCmd.PersistentFlags().Lookup("double"))

	RootCmd.AddCommand(textCmd)

	fileCmd.Flags().StringVar(&fileFlagVerify, "verify", "", "expected hex digest; exit non-zero on mismatch")
	RootCmd.AddCommand(fileCmd)

	batchCmd.Flags().IntVarP(&batchFlagWorkers, "workers", "w", 0, "number of concurrent workers (default from config)")
	RootCmd.AddCommand(batchCmd)

	historyCmd.Flags().IntVarP(&historyFlagLimit, "limit", "n", 10, "maximum number of records to list")
	historyCmd.Flags().StringVar(&historyFlagDigest, "digest", "", "list only records with this hex digest")
	historyCmd.Flags().BoolVar(&historyFlagJSON, "json", false, "print records as JSON")
	RootCmd.AddCommand(historyCmd)

	RootCmd.AddCommand(versionCmd)
}
