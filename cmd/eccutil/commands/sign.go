package commands

import (
	"fmt"
	"math/big"

	"github.com/ModChain/ecc/secp256k1"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	keyFlag    = "key"
	nonceFlag  = "nonce"
	randomFlag = "random"
)

func getSignCommand() *cobra.Command {
	var keyStr, nonceStr string
	var random bool

	cmd := &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign the double SHA-256 of a message and print the DER signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parsePrivateKey(keyStr)
			if err != nil {
				return err
			}
			hash := chainhash.DoubleHashB([]byte(args[0]))
			log.Debugf("signing digest %x", hash)

			var sig *secp256k1.Signature
			switch {
			case nonceStr != "":
				nonce, ok := new(big.Int).SetString(nonceStr, 0)
				if !ok {
					return fmt.Errorf("invalid nonce %q", nonceStr)
				}
				sig, err = secp256k1.Sign(key, new(big.Int).SetBytes(hash), nonce)
			case random:
				sig, err = secp256k1.Sign(key, new(big.Int).SetBytes(hash), nil)
			default:
				sig = secp256k1.SignRFC6979(key, hash)
			}
			if err != nil {
				return err
			}
			log.Debugf("signature %v", sig)
			fmt.Fprintf(cmd.OutOrStdout(), "%x\n", sig.Serialize())
			return nil
		},
	}
	cmd.Flags().StringVar(&keyStr, keyFlag, "", "the private key as hex or WIF")
	cmd.Flags().StringVar(&nonceStr, nonceFlag, "", "a fixed nonce (0x prefix for hex), for test vectors only")
	cmd.Flags().BoolVar(&random, randomFlag, false, "use a random nonce instead of RFC6979")
	_ = cmd.MarkFlagRequired(keyFlag)
	return cmd
}
