package commands

import (
	"fmt"

	"github.com/ModChain/ecc/secp256k1"
	"github.com/spf13/cobra"
)

func getAddressCommand() *cobra.Command {
	var testnet, compressed bool

	cmd := &cobra.Command{
		Use:   "address <sec-hex>",
		Short: "Show the P2PKH address of a SEC encoded public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseHex("public key", args[0])
			if err != nil {
				return err
			}
			pub, err := secp256k1.ParsePubKey(b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pub.Address(compressed, testnet))
			return nil
		},
	}
	cmd.Flags().BoolVar(&testnet, testnetFlag, false, "use the testnet version byte")
	cmd.Flags().BoolVar(&compressed, compressedFlag, true, "hash the compressed public key format")
	return cmd
}
