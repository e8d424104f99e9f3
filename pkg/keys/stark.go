// Package keys parses and validates the L1 (secp256k1) and L2 (STARK curve)
// signing keys used by the deposit tool.
package keys

import (
	"fmt"
	"math/big"
	"strings"

	starkcurve "github.com/consensys/gnark-crypto/ecc/stark-curve"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fr"
)

// StarkKeyPair is the L2 key pair registered with the exchange.
// PublicKey is the x coordinate, which is what StarkEx calls the stark key.
type StarkKeyPair struct {
	PublicKey  *big.Int
	PublicKeyY *big.Int
	privateKey *big.Int
}

// ParseStarkKeyPair parses hex encoded STARK keys and checks that the
// public point is the one derived from the private key.
func ParseStarkKeyPair(publicKey, publicKeyY, privateKey string) (*StarkKeyPair, error) {
	priv, err := parseHexBig(privateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid stark private key: %w", err)
	}
	pubX, err := parseHexBig(publicKey)
	if err != nil {
		return nil, fmt.Errorf("invalid stark public key: %w", err)
	}
	pubY, err := parseHexBig(publicKeyY)
	if err != nil {
		return nil, fmt.Errorf("invalid stark public key y coordinate: %w", err)
	}

	x, y, err := deriveStarkPoint(priv)
	if err != nil {
		return nil, err
	}
	if x.Cmp(pubX) != 0 {
		return nil, fmt.Errorf("stark public key does not match private key")
	}
	if y.Cmp(pubY) != 0 {
		return nil, fmt.Errorf("stark public key y coordinate does not match private key")
	}

	return &StarkKeyPair{
		PublicKey:  pubX,
		PublicKeyY: pubY,
		privateKey: priv,
	}, nil
}

// DeriveStarkPublicKey returns the hex encoded public point for a private key.
func DeriveStarkPublicKey(privateKey string) (x string, y string, err error) {
	priv, err := parseHexBig(privateKey)
	if err != nil {
		return "", "", fmt.Errorf("invalid stark private key: %w", err)
	}
	px, py, err := deriveStarkPoint(priv)
	if err != nil {
		return "", "", err
	}
	return "0x" + px.Text(16), "0x" + py.Text(16), nil
}

// PublicKeyHex returns the stark key as a 0x prefixed hex string (for display/logging)
func (kp *StarkKeyPair) PublicKeyHex() string {
	return "0x" + kp.PublicKey.Text(16)
}

// String never includes the private key
func (kp *StarkKeyPair) String() string {
	return fmt.Sprintf("StarkKeyPair{public_key=%s}", kp.PublicKeyHex())
}

func deriveStarkPoint(priv *big.Int) (*big.Int, *big.Int, error) {
	if priv.Sign() <= 0 || priv.Cmp(fr.Modulus()) >= 0 {
		return nil, nil, fmt.Errorf("stark private key out of range")
	}

	_, g := starkcurve.Generators()
	var p starkcurve.G1Affine
	p.ScalarMultiplication(&g, priv)

	var x, y big.Int
	p.X.BigInt(&x)
	p.Y.BigInt(&y)
	return &x, &y, nil
}

func parseHexBig(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, fmt.Errorf("empty value")
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("not a hex number")
	}
	return v, nil
}
