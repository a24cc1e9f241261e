package ecckd

type KeyVersion [4]byte

var (
	BitcoinMainnetPublic  = KeyVersion{0x04, 0x88, 0xb2, 0x1e} // xpub
	BitcoinMainnetPrivate = KeyVersion{0x04, 0x88, 0xad, 0xe4} // xprv
	BitcoinTestnetPublic  = KeyVersion{0x04, 0x35, 0x87, 0xcf} // tpub
	BitcoinTestnetPrivate = KeyVersion{0x04, 0x35, 0x83, 0x94} // tprv
)

// IsKnown returns true for the four bitcoin versions
func (kv KeyVersion) IsKnown() bool {
	switch kv {
	case BitcoinMainnetPublic, BitcoinMainnetPrivate, BitcoinTestnetPublic, BitcoinTestnetPrivate:
		return true
	}
	return false
}

// IsPrivate returns true if the version is for a private key
func (kv KeyVersion) IsPrivate() bool {
	switch kv {
	case BitcoinMainnetPrivate, BitcoinTestnetPrivate:
		return true
	}
	return false
}

// IsTestnet returns true if the version is for a testnet key
func (kv KeyVersion) IsTestnet() bool {
	switch kv {
	case BitcoinTestnetPublic, BitcoinTestnetPrivate:
		return true
	}
	return false
}

func (kv KeyVersion) ToPublic() KeyVersion {
	switch kv {
	case BitcoinMainnetPrivate:
		return BitcoinMainnetPublic
	case BitcoinTestnetPrivate:
		return BitcoinTestnetPublic
	}
	return kv
}

func (kv KeyVersion) ToTestnet() KeyVersion {
	switch kv {
	case BitcoinMainnetPrivate:
		return BitcoinTestnetPrivate
	case BitcoinMainnetPublic:
		return BitcoinTestnetPublic
	}
	return kv
}
