package commands

import (
	"errors"
	"fmt"

	"github.com/ModChain/ecc/secp256k1"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	pubkeyFlag = "pubkey"
	sigFlag    = "sig"
)

var errInvalidSignature = errors.New("signature is invalid")

func getVerifyCommand() *cobra.Command {
	var pubStr, sigStr string

	cmd := &cobra.Command{
		Use:   "verify <message>",
		Short: "Verify a DER signature of the double SHA-256 of a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pubBytes, err := parseHex("public key", pubStr)
			if err != nil {
				return err
			}
			pub, err := secp256k1.ParsePubKey(pubBytes)
			if err != nil {
				return err
			}
			sigBytes, err := parseHex("signature", sigStr)
			if err != nil {
				return err
			}
			sig, err := secp256k1.ParseDERSignature(sigBytes)
			if err != nil {
				return err
			}

			z := secp256k1.HashMessage([]byte(args[0]))
			log.Debugf("verifying digest %x", z)
			if !secp256k1.Verify(pub, z, sig) {
				return errInvalidSignature
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signature is valid")
			return nil
		},
	}
	cmd.Flags().StringVar(&pubStr, pubkeyFlag, "", "the SEC encoded public key in hex")
	cmd.Flags().StringVar(&sigStr, sigFlag, "", "the DER signature in hex")
	_ = cmd.MarkFlagRequired(pubkeyFlag)
	_ = cmd.MarkFlagRequired(sigFlag)
	return cmd
}
