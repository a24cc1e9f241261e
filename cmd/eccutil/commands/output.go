package commands

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ModChain/ecc/secp256k1"
	"github.com/ryanuber/columnize"
	log "github.com/sirupsen/logrus"
)

func FormatKV(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = ""
	columnConf.Glue = " = "

	return columnize.Format(in, columnConf)
}

// parsePrivateKey accepts a WIF string or a hex encoded secret.
func parsePrivateKey(s string) (*secp256k1.PrivateKey, error) {
	s = strings.TrimSpace(s)
	if key, _, _, err := secp256k1.ParseWIF(s); err == nil {
		log.Debug("private key parsed as WIF")
		return key, nil
	}
	secret, ok := new(big.Int).SetString(strings.TrimPrefix(s, "0x"), 16)
	if !ok {
		return nil, fmt.Errorf("private key %q is neither WIF nor hex", s)
	}
	return secp256k1.NewPrivateKey(secret)
}

// parseHex decodes a hex argument, with or without a 0x prefix.
func parseHex(name, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return b, nil
}
