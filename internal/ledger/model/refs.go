// Package model defines the domain types shared by the ledger components.
package model

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Depth is the height of a block in the chain, genesis is 0.
type Depth = uint32

// RefSize is the encoded size of an output or input reference.
const RefSize = chainhash.HashSize + 4

// OutputRef identifies a spendable output: transaction hash plus output index.
type OutputRef struct {
	Hash  chainhash.Hash
	Index uint32
}

// InputRef identifies the spender of an output: transaction hash plus input index.
type InputRef struct {
	Hash  chainhash.Hash
	Index uint32
}

// OutputRefFromOutPoint converts a wire outpoint.
func OutputRefFromOutPoint(op wire.OutPoint) OutputRef {
	return OutputRef{Hash: op.Hash, Index: op.Index}
}

func (r OutputRef) String() string {
	return fmt.Sprintf("%s:%d", r.Hash, r.Index)
}

func (r InputRef) String() string {
	return fmt.Sprintf("%s:%d", r.Hash, r.Index)
}

// Bytes returns the 36-byte layout: hash followed by a little-endian index.
func (r OutputRef) Bytes() []byte {
	return encodeRef(r.Hash, r.Index)
}

// Bytes returns the 36-byte layout: hash followed by a little-endian index.
func (r InputRef) Bytes() []byte {
	return encodeRef(r.Hash, r.Index)
}

// DecodeOutputRef decodes exactly one 36-byte reference.
func DecodeOutputRef(b []byte) (OutputRef, error) {
	hash, index, err := decodeRef(b)
	if err != nil {
		return OutputRef{}, err
	}
	return OutputRef{Hash: hash, Index: index}, nil
}

// DecodeInputRef decodes exactly one 36-byte reference.
func DecodeInputRef(b []byte) (InputRef, error) {
	hash, index, err := decodeRef(b)
	if err != nil {
		return InputRef{}, err
	}
	return InputRef{Hash: hash, Index: index}, nil
}

// DecodeOutputRefs decodes a tightly packed sequence of references. The
// length must be an exact multiple of RefSize.
func DecodeOutputRefs(b []byte) ([]OutputRef, error) {
	if len(b)%RefSize != 0 {
		return nil, fmt.Errorf("%w: output list length %d is not a multiple of %d", ErrCorruptRecord, len(b), RefSize)
	}
	refs := make([]OutputRef, 0, len(b)/RefSize)
	for off := 0; off < len(b); off += RefSize {
		ref, err := DecodeOutputRef(b[off : off+RefSize])
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// EncodeOutputRefs packs references back to back.
func EncodeOutputRefs(refs []OutputRef) []byte {
	out := make([]byte, 0, len(refs)*RefSize)
	for _, ref := range refs {
		out = append(out, ref.Bytes()...)
	}
	return out
}

func encodeRef(hash chainhash.Hash, index uint32) []byte {
	b := make([]byte, RefSize)
	copy(b, hash[:])
	binary.LittleEndian.PutUint32(b[chainhash.HashSize:], index)
	return b
}

func decodeRef(b []byte) (chainhash.Hash, uint32, error) {
	if len(b) != RefSize {
		return chainhash.Hash{}, 0, fmt.Errorf("%w: reference length %d, want %d", ErrCorruptRecord, len(b), RefSize)
	}
	var hash chainhash.Hash
	copy(hash[:], b[:chainhash.HashSize])
	return hash, binary.LittleEndian.Uint32(b[chainhash.HashSize:]), nil
}
