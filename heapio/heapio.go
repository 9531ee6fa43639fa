package heapio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/davidvella/heap"
)

var (
	Uint64Size = int64(binary.Size(uint64(0)))
	// MagicBytes identify a flattened heap stream (HPQ).
	MagicBytes = []byte{0x48, 0x50, 0x51}

	ErrInvalidMagicBytes  = errors.New("heapio: invalid magic bytes - not a flattened heap")
	ErrUnsupportedVersion = errors.New("heapio: unsupported format version")
)

const formatVersion = uint64(1)

// BinaryWriter handles writing binary data with error handling.
type BinaryWriter struct {
	w io.Writer
}

func NewBinaryWriter(w io.Writer) BinaryWriter {
	return BinaryWriter{w: w}
}

func (bw BinaryWriter) WriteUint64(v uint64) (int64, error) {
	if err := binary.Write(bw.w, binary.LittleEndian, v); err != nil {
		return 0, err
	}
	return Uint64Size, nil
}

func (bw BinaryWriter) WriteBytes(b []byte) (int64, error) {
	// Write bytes length (uint64)
	if err := binary.Write(bw.w, binary.LittleEndian, uint64(len(b))); err != nil {
		return 0, fmt.Errorf("error writing bytes length: %w", err)
	}

	// Write bytes content
	n, err := bw.w.Write(b)
	if err != nil {
		return Uint64Size, fmt.Errorf("error writing bytes content: %w", err)
	}

	return Uint64Size + int64(n), nil
}

// BinaryReader handles reading binary data with error handling.
type BinaryReader struct {
	r io.Reader
}

func NewBinaryReader(r io.Reader) BinaryReader {
	return BinaryReader{r: r}
}

func (br BinaryReader) ReadUint64() (uint64, error) {
	var v uint64
	err := binary.Read(br.r, binary.LittleEndian, &v)
	return v, err
}

func (br BinaryReader) ReadBytes() ([]byte, error) {
	var length uint64
	if err := binary.Read(br.r, binary.LittleEndian, &length); err != nil {
		return nil, fmt.Errorf("error reading bytes length: %w", err)
	}

	b := make([]byte, length)
	if _, err := io.ReadFull(br.r, b); err != nil {
		return nil, fmt.Errorf("error reading bytes content: %w", err)
	}
	return b, nil
}

// Write flattens h to w and returns the number of bytes written. Entries
// are streamed in iteration order, so a structural modification of h made
// while the write is in progress is detected and aborts with an error
// wrapping heap.ErrConcurrentModification.
func Write[K, V any](w io.Writer, h heap.Heap[K, V], keys Serializer[K], values Serializer[V]) (int64, error) {
	var total int64

	mn, err := w.Write(MagicBytes)
	total += int64(mn)
	if err != nil {
		return total, fmt.Errorf("heapio: failed to write magic bytes: %w", err)
	}

	bw := NewBinaryWriter(w)

	n, err := bw.WriteUint64(formatVersion)
	total += n
	if err != nil {
		return total, fmt.Errorf("heapio: error writing version: %w", err)
	}

	n, err = bw.WriteUint64(uint64(h.Len()))
	total += n
	if err != nil {
		return total, fmt.Errorf("heapio: error writing entry count: %w", err)
	}

	it := h.Iter()
	for it.Next() {
		e := it.Entry()

		kb, err := keys.Marshal(e.Key())
		if err != nil {
			return total, fmt.Errorf("heapio: error marshaling key: %w", err)
		}
		vb, err := values.Marshal(e.Value())
		if err != nil {
			return total, fmt.Errorf("heapio: error marshaling value: %w", err)
		}

		n, err = bw.WriteBytes(kb)
		total += n
		if err != nil {
			return total, fmt.Errorf("heapio: error writing key: %w", err)
		}

		n, err = bw.WriteBytes(vb)
		total += n
		if err != nil {
			return total, fmt.Errorf("heapio: error writing value: %w", err)
		}
	}
	if err := it.Err(); err != nil {
		return total, fmt.Errorf("heapio: heap structure changed during write: %w", err)
	}

	return total, nil
}

// Read rebuilds a flattened heap by inserting every stored pair into h.
// The target heap supplies the key ordering and is not cleared first, so
// reading into a non-empty heap merges the stream into it.
func Read[K, V any](r io.Reader, h heap.Heap[K, V], keys Serializer[K], values Serializer[V]) error {
	magic := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(r, magic); err != nil {
		return fmt.Errorf("heapio: failed to read magic bytes: %w", err)
	}
	if !bytes.Equal(magic, MagicBytes) {
		return ErrInvalidMagicBytes
	}

	br := NewBinaryReader(r)

	version, err := br.ReadUint64()
	if err != nil {
		return fmt.Errorf("heapio: error reading version: %w", err)
	}
	if version != formatVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	count, err := br.ReadUint64()
	if err != nil {
		return fmt.Errorf("heapio: error reading entry count: %w", err)
	}

	for i := uint64(0); i < count; i++ {
		kb, err := br.ReadBytes()
		if err != nil {
			return fmt.Errorf("heapio: error reading key: %w", err)
		}
		key, err := keys.Unmarshal(kb)
		if err != nil {
			return fmt.Errorf("heapio: error unmarshaling key: %w", err)
		}

		vb, err := br.ReadBytes()
		if err != nil {
			return fmt.Errorf("heapio: error reading value: %w", err)
		}
		value, err := values.Unmarshal(vb)
		if err != nil {
			return fmt.Errorf("heapio: error unmarshaling value: %w", err)
		}

		h.Insert(key, value)
	}
	return nil
}

// Size returns the number of bytes Write will produce for h, assuming the
// serializers are deterministic.
func Size[K, V any](h heap.Heap[K, V], keys Serializer[K], values Serializer[V]) (int64, error) {
	var cw countingWriter
	if _, err := Write(&cw, h, keys, values); err != nil {
		return int64(cw), err
	}
	return int64(cw), nil
}

type countingWriter int64

func (cw *countingWriter) Write(p []byte) (int, error) {
	*cw += countingWriter(len(p))
	return len(p), nil
}
