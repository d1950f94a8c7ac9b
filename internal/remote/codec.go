// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

import (
	"encoding/json"
	"fmt"
)

// Envelope is the wire form of an object whose type is not known statically.
type Envelope struct {
	Type Kind            `json:"@type"`
	Data json.RawMessage `json:"data"`
}

// Encode wraps o into an envelope.
func Encode(o Object) (Envelope, error) {
	if o == nil {
		return Envelope{}, fmt.Errorf("%w: nil object", ErrUnknownKind)
	}
	data, err := json.Marshal(o)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s: %w", o.Kind(), err)
	}
	return Envelope{Type: o.Kind(), Data: data}, nil
}

// Decode allocates the object named by env.Type and fills it from env.Data.
func Decode(env Envelope) (Object, error) {
	o, err := New(env.Type)
	if err != nil {
		return nil, err
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, o); err != nil {
			return nil, fmt.Errorf("decode %s: %w", env.Type, err)
		}
	}
	return o, nil
}

// EncodeAll encodes every object of objs.
func EncodeAll[T Object](objs []T) ([]Envelope, error) {
	out := make([]Envelope, 0, len(objs))
	for _, o := range objs {
		env, err := Encode(o)
		if err != nil {
			return nil, err
		}
		out = append(out, env)
	}
	return out, nil
}

// DecodeAll decodes every envelope of envs.
func DecodeAll(envs []Envelope) ([]Object, error) {
	out := make([]Object, 0, len(envs))
	for _, env := range envs {
		o, err := Decode(env)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// DecodeAs decodes env and asserts the result to T.
func DecodeAs[T Object](env Envelope) (T, error) {
	var zero T
	o, err := Decode(env)
	if err != nil {
		return zero, err
	}
	t, ok := o.(T)
	if !ok {
		return zero, fmt.Errorf("%w: unexpected %s", ErrUnknownKind, o.Kind())
	}
	return t, nil
}
