package heapio

import (
	"bytes"
	"encoding/gob"
)

// Serializer converts values of one type to and from bytes.
type Serializer[T any] interface {
	Marshal(value T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}

// GobSerializer implements Serializer using encoding/gob. It works for any
// type gob can encode and is the default choice for keys and values.
type GobSerializer[T any] struct{}

func (GobSerializer[T]) Marshal(value T) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (GobSerializer[T]) Unmarshal(data []byte) (T, error) {
	var value T
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&value); err != nil {
		return value, err
	}
	return value, nil
}
