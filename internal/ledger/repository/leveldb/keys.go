package leveldb

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

const (
	prefixBlock     byte = 'b' // depth -> header + tx hashes
	prefixBlockHash byte = 'h' // block hash -> depth
	prefixTx        byte = 't' // tx hash -> parent depth, index, body
	prefixSpend     byte = 's' // output ref -> input ref
	prefixAddress   byte = 'a' // version + hash160 -> packed output refs
	prefixMeta      byte = 'm'

	headerSize = wire.MaxBlockHeaderPayload
	depthSize  = 4
	// version byte plus a 20 byte short hash
	addressKeySize = 1 + 20
)

var (
	tipKey        = []byte{prefixMeta, 't', 'i', 'p'}
	checkpointKey = []byte{prefixMeta, 'c', 'k', 'p'}
)

func blockKey(depth model.Depth) []byte {
	key := make([]byte, 1+depthSize)
	key[0] = prefixBlock
	binary.LittleEndian.PutUint32(key[1:], depth)
	return key
}

func blockHashKey(hash chainhash.Hash) []byte {
	return append([]byte{prefixBlockHash}, hash[:]...)
}

func txKey(hash chainhash.Hash) []byte {
	return append([]byte{prefixTx}, hash[:]...)
}

func spendKey(ref model.OutputRef) []byte {
	return append([]byte{prefixSpend}, ref.Bytes()...)
}

func addressKey(version byte, hash160 []byte) []byte {
	key := make([]byte, 0, 1+addressKeySize)
	key = append(key, prefixAddress, version)
	return append(key, hash160...)
}

func encodeDepth(depth model.Depth) []byte {
	b := make([]byte, depthSize)
	binary.LittleEndian.PutUint32(b, depth)
	return b
}

func decodeDepth(b []byte) (model.Depth, error) {
	if len(b) != depthSize {
		return 0, fmt.Errorf("%w: depth length %d, want %d", model.ErrCorruptRecord, len(b), depthSize)
	}
	return binary.LittleEndian.Uint32(b), nil
}

func encodeTip(tip model.ChainTip) []byte {
	return append(encodeDepth(tip.Depth), tip.Hash[:]...)
}

func decodeTip(b []byte) (model.ChainTip, error) {
	if len(b) != depthSize+chainhash.HashSize {
		return model.ChainTip{}, fmt.Errorf("%w: chain tip length %d", model.ErrCorruptRecord, len(b))
	}
	var tip model.ChainTip
	tip.Depth = binary.LittleEndian.Uint32(b[:depthSize])
	copy(tip.Hash[:], b[depthSize:])
	return tip, nil
}

// encodeBlockRecord lays out header, tx count and the tx hashes.
func encodeBlockRecord(block *wire.MsgBlock) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(headerSize + 4 + len(block.Transactions)*chainhash.HashSize)
	if err := block.Header.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("serialize header: %w", err)
	}
	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(len(block.Transactions)))
	buf.Write(count[:])
	for _, tx := range block.Transactions {
		hash := tx.TxHash()
		buf.Write(hash[:])
	}
	return buf.Bytes(), nil
}

func decodeBlockRecord(depth model.Depth, b []byte) (model.BlockRecord, error) {
	if len(b) < headerSize+4 {
		return model.BlockRecord{}, fmt.Errorf("%w: block record length %d", model.ErrCorruptRecord, len(b))
	}
	var record model.BlockRecord
	if err := record.Header.Deserialize(bytes.NewReader(b[:headerSize])); err != nil {
		return model.BlockRecord{}, fmt.Errorf("%w: header: %w", model.ErrCorruptRecord, err)
	}
	count := binary.LittleEndian.Uint32(b[headerSize : headerSize+4])
	hashes := b[headerSize+4:]
	if uint64(len(hashes)) != uint64(count)*chainhash.HashSize {
		return model.BlockRecord{}, fmt.Errorf("%w: block record holds %d hash bytes for %d transactions",
			model.ErrCorruptRecord, len(hashes), count)
	}
	record.Depth = depth
	record.Hash = record.Header.BlockHash()
	record.TxHashes = make([]chainhash.Hash, count)
	for i := range record.TxHashes {
		copy(record.TxHashes[i][:], hashes[i*chainhash.HashSize:])
	}
	return record, nil
}

func encodeTxRecord(index model.TransactionIndex, tx *wire.MsgTx) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(2*depthSize + tx.SerializeSize())
	buf.Write(encodeDepth(index.Depth))
	buf.Write(encodeDepth(index.Index))
	if err := tx.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("serialize tx: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeTxIndex(b []byte) (model.TransactionIndex, error) {
	if len(b) < 2*depthSize {
		return model.TransactionIndex{}, fmt.Errorf("%w: transaction record length %d", model.ErrCorruptRecord, len(b))
	}
	return model.TransactionIndex{
		Depth: binary.LittleEndian.Uint32(b[:depthSize]),
		Index: binary.LittleEndian.Uint32(b[depthSize : 2*depthSize]),
	}, nil
}

func decodeTxRecord(b []byte) (model.TransactionIndex, *wire.MsgTx, error) {
	index, err := decodeTxIndex(b)
	if err != nil {
		return model.TransactionIndex{}, nil, err
	}
	reader := bytes.NewReader(b[2*depthSize:])
	tx := &wire.MsgTx{}
	if err := tx.Deserialize(reader); err != nil {
		return model.TransactionIndex{}, nil, fmt.Errorf("%w: transaction body: %w", model.ErrCorruptRecord, err)
	}
	if reader.Len() != 0 {
		return model.TransactionIndex{}, nil, fmt.Errorf("%w: %d trailing bytes after transaction", model.ErrCorruptRecord, reader.Len())
	}
	return index, tx, nil
}
