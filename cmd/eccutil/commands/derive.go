package commands

import (
	"fmt"

	"github.com/ModChain/ecc/ecckd"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	seedFlag = "seed"
	pathFlag = "path"
)

func getDeriveCommand() *cobra.Command {
	var seedStr, path string
	var testnet bool

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive a BIP32 key from a hex seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := parseHex("seed", seedStr)
			if err != nil {
				return err
			}
			indexes, err := ecckd.ParsePath(path)
			if err != nil {
				return err
			}
			master, err := ecckd.FromBitcoinSeed(seed)
			if err != nil {
				return err
			}
			if testnet {
				master.Version = master.Version.ToTestnet()
			}
			log.Debugf("deriving %s (%d levels)", path, len(indexes))
			key, err := master.Derive(indexes)
			if err != nil {
				return err
			}
			pub, err := key.Public()
			if err != nil {
				return err
			}
			addr, err := key.Address()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), FormatKV([]string{
				fmt.Sprintf("Path|%s", path),
				fmt.Sprintf("Extended Private Key|%s", key),
				fmt.Sprintf("Extended Public Key|%s", pub),
				fmt.Sprintf("Address|%s", addr),
			}))
			return nil
		},
	}
	cmd.Flags().StringVar(&seedStr, seedFlag, "", "the seed in hex, 16 to 64 bytes")
	cmd.Flags().StringVar(&path, pathFlag, "m", "the derivation path, for example m/44'/0'/0'/0/0")
	cmd.Flags().BoolVar(&testnet, testnetFlag, false, "use testnet versions")
	_ = cmd.MarkFlagRequired(seedFlag)
	return cmd
}
