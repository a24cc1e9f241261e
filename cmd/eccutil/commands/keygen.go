package commands

import (
	"fmt"

	"github.com/ModChain/ecc/secp256k1"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func getKeygenCommand() *cobra.Command {
	var testnet, compressed bool

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := secp256k1.GeneratePrivateKey()
			if err != nil {
				return err
			}
			log.Debug("generated private key")
			fmt.Fprintln(cmd.OutOrStdout(), keyReport(key, compressed, testnet))
			return nil
		},
	}
	cmd.Flags().BoolVar(&testnet, testnetFlag, false, "use testnet version bytes")
	cmd.Flags().BoolVar(&compressed, compressedFlag, true, "use the compressed public key format")
	return cmd
}

// keyReport lists the encodings of key.
func keyReport(key *secp256k1.PrivateKey, compressed, testnet bool) string {
	pub := key.PubKey()
	sec := pub.SerializeUncompressed()
	if compressed {
		sec = pub.SerializeCompressed()
	}
	return FormatKV([]string{
		fmt.Sprintf("Secret|%s", key.Hex()),
		fmt.Sprintf("WIF|%s", key.WIF(compressed, testnet)),
		fmt.Sprintf("Public Key|%x", sec),
		fmt.Sprintf("Address|%s", pub.Address(compressed, testnet)),
	})
}
