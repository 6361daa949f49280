package types

import (
	"encoding/binary"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
	json "github.com/goccy/go-json"

	"editions/x/editions/allowlist"
)

// PhaseRecordSize is the encoded width of every phase:
//
//	price_amount 8 | price_token 1+64 | start_time 8 | end_time 8 | active 1 |
//	max_mints_per_wallet 8 | max_mints_total 8 | current_mints 8 |
//	is_private 1 | merkle_root 1+32 | padding 200
const PhaseRecordSize = 8 + 1 + PriceTokenMaxLen + 8 + 8 + 1 + 8 + 8 + 8 + 1 + 1 + allowlist.HashSize + PhasePaddingLen

// PhaseValueCodec persists phases as fixed-size little endian records so
// the phase collection grows without rewriting existing entries.
var PhaseValueCodec collcodec.ValueCodec[Phase] = phaseValueCodec{}

type phaseValueCodec struct{}

func (phaseValueCodec) Encode(p Phase) ([]byte, error) {
	if len(p.PriceToken) > PriceTokenMaxLen {
		return nil, fmt.Errorf("price_token exceeds %d bytes", PriceTokenMaxLen)
	}
	bz := make([]byte, PhaseRecordSize)
	w := bz
	binary.LittleEndian.PutUint64(w, p.PriceAmount)
	w = w[8:]
	w[0] = byte(len(p.PriceToken))
	copy(w[1:], p.PriceToken)
	w = w[1+PriceTokenMaxLen:]
	binary.LittleEndian.PutUint64(w, uint64(p.StartTime))
	w = w[8:]
	binary.LittleEndian.PutUint64(w, uint64(p.EndTime))
	w = w[8:]
	w[0] = boolByte(p.Active)
	w = w[1:]
	binary.LittleEndian.PutUint64(w, p.MaxMintsPerWallet)
	w = w[8:]
	binary.LittleEndian.PutUint64(w, p.MaxMintsTotal)
	w = w[8:]
	binary.LittleEndian.PutUint64(w, p.CurrentMints)
	w = w[8:]
	w[0] = boolByte(p.IsPrivate)
	w = w[1:]
	if p.MerkleRoot != nil {
		w[0] = 1
		copy(w[1:], p.MerkleRoot[:])
	}
	return bz, nil
}

func (phaseValueCodec) Decode(bz []byte) (Phase, error) {
	var p Phase
	if len(bz) != PhaseRecordSize {
		return p, fmt.Errorf("invalid phase record length %d, expected %d", len(bz), PhaseRecordSize)
	}
	r := bz
	p.PriceAmount = binary.LittleEndian.Uint64(r)
	r = r[8:]
	n := int(r[0])
	if n > PriceTokenMaxLen {
		return p, fmt.Errorf("invalid price_token length %d", n)
	}
	p.PriceToken = string(r[1 : 1+n])
	r = r[1+PriceTokenMaxLen:]
	p.StartTime = int64(binary.LittleEndian.Uint64(r))
	r = r[8:]
	p.EndTime = int64(binary.LittleEndian.Uint64(r))
	r = r[8:]
	active, err := byteBool(r[0])
	if err != nil {
		return p, fmt.Errorf("active: %w", err)
	}
	p.Active = active
	r = r[1:]
	p.MaxMintsPerWallet = binary.LittleEndian.Uint64(r)
	r = r[8:]
	p.MaxMintsTotal = binary.LittleEndian.Uint64(r)
	r = r[8:]
	p.CurrentMints = binary.LittleEndian.Uint64(r)
	r = r[8:]
	private, err := byteBool(r[0])
	if err != nil {
		return p, fmt.Errorf("is_private: %w", err)
	}
	p.IsPrivate = private
	r = r[1:]
	hasRoot, err := byteBool(r[0])
	if err != nil {
		return p, fmt.Errorf("merkle_root tag: %w", err)
	}
	if hasRoot {
		var root allowlist.Hash
		copy(root[:], r[1:1+allowlist.HashSize])
		p.MerkleRoot = &root
	}
	return p, nil
}

func (phaseValueCodec) EncodeJSON(p Phase) ([]byte, error) { return json.Marshal(p) }

func (phaseValueCodec) DecodeJSON(bz []byte) (Phase, error) {
	var p Phase
	err := json.Unmarshal(bz, &p)
	return p, err
}

func (phaseValueCodec) Stringify(p Phase) string {
	root := "none"
	if p.MerkleRoot != nil {
		root = p.MerkleRoot.String()
	}
	return fmt.Sprintf("Phase{price=%d%s window=[%d,%d) active=%t mints=%d/%d per_wallet=%d private=%t root=%s}",
		p.PriceAmount, p.PriceToken, p.StartTime, p.EndTime, p.Active,
		p.CurrentMints, p.MaxMintsTotal, p.MaxMintsPerWallet, p.IsPrivate, root)
}

func (phaseValueCodec) ValueType() string { return "editions.Phase" }

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func byteBool(b byte) (bool, error) {
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("invalid bool byte %d", b)
	}
}
