// Package allowlist verifies allow-list membership claims against a Merkle
// root committed in a phase.
//
// Leaves commit to (wallet, price, max claims) and are domain separated
// from internal nodes:
//
//	leaf = sha256(wallet ‖ price_le64 ‖ max_claims_le64)
//	node = sha256(0x00 ‖ leaf)
//
// Internal nodes hash the sorted pair of their children:
//
//	parent = sha256(0x01 ‖ min(a, b) ‖ max(a, b))
//
// where min/max compare the 32-byte hashes lexicographically. Sorting makes
// proofs position independent, so a proof is just the ordered list of
// siblings from the leaf level up to the root.
package allowlist

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cometbft/cometbft/crypto/tmhash"
	hex "github.com/tmthrgd/go-hex"
)

const (
	// HashSize is the width of every leaf, node and root.
	HashSize = tmhash.Size

	// LeafPrefix is prepended to a leaf commitment before it enters the tree.
	LeafPrefix byte = 0x00
	// IntermediatePrefix is prepended to a sorted child pair.
	IntermediatePrefix byte = 0x01
)

// Hash is a 32-byte tree hash.
type Hash [HashSize]byte

func (h Hash) Bytes() []byte { return h[:] }

func (h Hash) String() string { return hex.EncodeToString(h[:]) }

func (h Hash) IsZero() bool { return h == Hash{} }

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := ParseHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// ParseHash decodes a hex string, with or without a 0x prefix.
func ParseHash(s string) (Hash, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	bz, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, fmt.Errorf("invalid hash hex: %w", err)
	}
	return HashFromBytes(bz)
}

func HashFromBytes(bz []byte) (Hash, error) {
	var h Hash
	if len(bz) != HashSize {
		return h, fmt.Errorf("invalid hash length %d, expected %d", len(bz), HashSize)
	}
	copy(h[:], bz)
	return h, nil
}

func sum(parts ...[]byte) Hash {
	hasher := tmhash.New()
	for _, p := range parts {
		hasher.Write(p)
	}
	var h Hash
	copy(h[:], hasher.Sum(nil))
	return h
}

// LeafHash is the raw commitment to one allow-list entry.
func LeafHash(wallet []byte, price, maxClaims uint64) Hash {
	var priceLE, claimsLE [8]byte
	binary.LittleEndian.PutUint64(priceLE[:], price)
	binary.LittleEndian.PutUint64(claimsLE[:], maxClaims)
	return sum(wallet, priceLE[:], claimsLE[:])
}

// LeafNode domain separates a leaf commitment so it can never collide with
// an internal node.
func LeafNode(leaf Hash) Hash {
	return sum([]byte{LeafPrefix}, leaf[:])
}

// EntryNode is LeafNode(LeafHash(...)).
func EntryNode(wallet []byte, price, maxClaims uint64) Hash {
	return LeafNode(LeafHash(wallet, price, maxClaims))
}

// HashPair combines two children into their parent.
func HashPair(a, b Hash) Hash {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return sum([]byte{IntermediatePrefix}, a[:], b[:])
	}
	return sum([]byte{IntermediatePrefix}, b[:], a[:])
}

// ComputeRoot folds the proof siblings into node and returns the result.
func ComputeRoot(proof []Hash, node Hash) Hash {
	computed := node
	for _, sibling := range proof {
		computed = HashPair(computed, sibling)
	}
	return computed
}

// Verify reports whether node is included under root according to proof.
func Verify(proof []Hash, root, node Hash) bool {
	return ComputeRoot(proof, node) == root
}
