package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func getPubkeyCommand() *cobra.Command {
	var testnet, compressed bool

	cmd := &cobra.Command{
		Use:   "pubkey <secret-hex|wif>",
		Short: "Show the public key, WIF and address of a private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parsePrivateKey(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), keyReport(key, compressed, testnet))
			return nil
		},
	}
	cmd.Flags().BoolVar(&testnet, testnetFlag, false, "use testnet version bytes")
	cmd.Flags().BoolVar(&compressed, compressedFlag, true, "use the compressed public key format")
	return cmd
}
