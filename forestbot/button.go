package forestbot

import (
	"bytes"
	"encoding/base64"
	"encoding/gob"
	"fmt"
	"reflect"
)

type buttonDescriptor struct {
	name        string
	payloadType reflect.Type
}

// ButtonSet is the machine-wide, stably-ordered registry of button
// descriptors a callback's wire payload addresses by position.
type ButtonSet struct {
	descriptors []buttonDescriptor
}

func NewButtonSet() *ButtonSet { return &ButtonSet{} }

// RegisterButton assigns the next stable index to a button named name,
// whose callback payload decodes to type P.
func RegisterButton[P any](set *ButtonSet, name string) int64 {
	idx := int64(len(set.descriptors))
	set.descriptors = append(set.descriptors, buttonDescriptor{name: name, payloadType: reflect.TypeFor[P]()})
	return idx
}

// Name returns the button registered at index, or ok=false if index is
// out of range.
func (set *ButtonSet) Name(index int64) (name string, ok bool) {
	if index < 0 || int(index) >= len(set.descriptors) {
		return "", false
	}
	return set.descriptors[index].name, true
}

type buttonWire struct {
	Index   int64
	Payload []byte
}

// EncodeButton produces the opaque callback_data payload for pressing
// the button at index with the given concrete payload: base64 over a
// compact binary serialization of (i64 index, payload_bytes).
func EncodeButton[P any](index int64, payload P) (string, error) {
	var payloadBuf bytes.Buffer
	if err := gob.NewEncoder(&payloadBuf).Encode(payload); err != nil {
		return "", fmt.Errorf("forestbot: encode button payload: %w", err)
	}
	var envelopeBuf bytes.Buffer
	w := buttonWire{Index: index, Payload: payloadBuf.Bytes()}
	if err := gob.NewEncoder(&envelopeBuf).Encode(w); err != nil {
		return "", fmt.Errorf("forestbot: encode button envelope: %w", err)
	}
	return base64.StdEncoding.EncodeToString(envelopeBuf.Bytes()), nil
}

// DecodeButtonEnvelope recovers the index and still-encoded payload
// bytes from callback_data. ok is false for any malformed input, which
// the caller must treat as "emit nothing".
func DecodeButtonEnvelope(data string) (index int64, payload []byte, ok bool) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return 0, nil, false
	}
	var w buttonWire
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&w); err != nil {
		return 0, nil, false
	}
	return w.Index, w.Payload, true
}

// DecodePayload decodes raw button payload bytes, as returned by
// DecodeButtonEnvelope, into the concrete payload type P.
func DecodePayload[P any](raw []byte) (P, error) {
	var payload P
	err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&payload)
	return payload, err
}

// ProjectButton decodes a callback update's opaque data into the
// registered button's name and its still-encoded payload bytes. ok is
// false when decoding fails or the index falls outside the registered
// set. Turning the raw bytes into a typed event is left to the
// caller, which knows from name which P to pass to DecodePayload —
// Go has no way to select a generic instantiation at runtime from a
// value alone.
func ProjectButton(data string, set *ButtonSet) (name string, raw []byte, ok bool) {
	index, payload, ok := DecodeButtonEnvelope(data)
	if !ok {
		return "", nil, false
	}
	name, ok = set.Name(index)
	if !ok {
		return "", nil, false
	}
	return name, payload, true
}
