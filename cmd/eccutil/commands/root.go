// Package commands holds the cobra commands of eccutil.
package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	verboseFlag    = "verbose"
	testnetFlag    = "testnet"
	compressedFlag = "compressed"
)

func GetRootCmd() *cobra.Command {
	var verbose bool

	var rootCmd = &cobra.Command{
		Use:           "eccutil",
		Short:         "secp256k1 key, signature and address tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, verboseFlag, false, "enable debug logging")

	rootCmd.AddCommand(getKeygenCommand())
	rootCmd.AddCommand(getPubkeyCommand())
	rootCmd.AddCommand(getSignCommand())
	rootCmd.AddCommand(getVerifyCommand())
	rootCmd.AddCommand(getAddressCommand())
	rootCmd.AddCommand(getDeriveCommand())
	rootCmd.AddCommand(getVersionCommand())
	return rootCmd
}
