// File: dh.go
// Title: Diffie-Hellman Key Exchange Helpers
// Description: Implements classic finite-field Diffie-Hellman over the
//              RFC 3526 2048-bit MODP group (group 14): key pair
//              generation, validation of received public keys, shared
//              secret computation, and SHA-256 key derivation. No network
//              I/O is performed; exchanging the public values is the
//              caller's concern.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with DH helpers

package securityx

import (
	"crypto/rand"
	"math/big"

	ferror "github.com/msto63/foundation/core/error"
)

// modp2048Hex is the prime of the RFC 3526 2048-bit MODP group (group 14)
const modp2048Hex = "FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD1" +
	"29024E088A67CC74020BBEA63B139B22514A08798E3404DD" +
	"EF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245" +
	"E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7ED" +
	"EE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3D" +
	"C2007CB8A163BF0598DA48361C55D39A69163FA8FD24CF5F" +
	"83655D23DCA3AD961C62F356208552BB9ED529077096966D" +
	"670C354E4ABC9804F1746C08CA18217C32905E462E36CE3B" +
	"E39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9" +
	"DE2BCBF6955817183995497CEA956AE515D2261898FA0510" +
	"15728E5A8AACAA68FFFFFFFFFFFFFFFF"

var (
	modp2048P, _ = new(big.Int).SetString(modp2048Hex, 16)
	modp2048G    = big.NewInt(2)
	bigOne       = big.NewInt(1)
	bigTwo       = big.NewInt(2)
)

// DHGroup is a finite-field Diffie-Hellman group (prime modulus and
// generator)
type DHGroup struct {
	p *big.Int
	g *big.Int
}

// Group14 returns the RFC 3526 2048-bit MODP group
func Group14() *DHGroup {
	return &DHGroup{p: modp2048P, g: modp2048G}
}

// P returns a copy of the group's prime modulus
func (g *DHGroup) P() *big.Int {
	return new(big.Int).Set(g.p)
}

// G returns a copy of the group's generator
func (g *DHGroup) G() *big.Int {
	return new(big.Int).Set(g.g)
}

// DHKeyPair is one party's key pair for an exchange
type DHKeyPair struct {
	group   *DHGroup
	private *big.Int
	// Public is the value to hand to the other party
	Public *big.Int
}

// GenerateKeyPair draws a random private exponent in [2, p-2] and derives
// the public value g^x mod p
func (g *DHGroup) GenerateKeyPair() (*DHKeyPair, error) {
	// draw from [0, p-4) and shift into [2, p-2)
	limit := new(big.Int).Sub(g.p, big.NewInt(4))
	x, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return nil, ferror.Wrap(err, "generating private exponent").
			WithCode(ferror.CodeInternal).
			WithSeverity(ferror.SeverityHigh)
	}
	x.Add(x, bigTwo)
	return &DHKeyPair{
		group:   g,
		private: x,
		Public:  new(big.Int).Exp(g.g, x, g.p),
	}, nil
}

// SharedSecret combines this key pair with the other party's public value
// into the raw shared secret. The public value is validated first: it
// must lie in [2, p-2], which rejects the degenerate values 0, 1, and p-1
// an attacker could inject to force a predictable secret.
func (kp *DHKeyPair) SharedSecret(otherPublic *big.Int) ([]byte, error) {
	if otherPublic == nil {
		return nil, ferror.New("argument \"otherPublic\" must not be nil").
			WithCode(ferror.CodeNilArgument)
	}
	pMinusOne := new(big.Int).Sub(kp.group.p, bigOne)
	if otherPublic.Cmp(bigTwo) < 0 || otherPublic.Cmp(pMinusOne) >= 0 {
		return nil, ferror.New("public value outside [2, p-2]").
			WithCode(ferror.CodeOutOfRange)
	}
	secret := new(big.Int).Exp(otherPublic, kp.private, kp.group.p)
	return secret.Bytes(), nil
}

// DeriveKey computes the shared secret and hashes it with SHA-256,
// yielding a fixed-size symmetric key
func (kp *DHKeyPair) DeriveKey(otherPublic *big.Int) ([]byte, error) {
	secret, err := kp.SharedSecret(otherPublic)
	if err != nil {
		return nil, err
	}
	return SHA256(secret), nil
}
