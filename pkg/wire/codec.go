// Package wire is the remote schema of the payments backend.
//
// Every object travels as a JSON object whose first field is "@type" holding the object's
// type name. Requests are objects too; their type name is the remote method.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

const typeKey = "@type"

// Object is any value of the remote schema.
type Object interface {
	TypeName() string
}

// Request is an Object that can be sent to the backend as a method call.
type Request interface {
	Object
	isRequest()
}

var registry = map[string]func() Object{}

func register(fns ...func() Object) {
	for _, fn := range fns {
		name := fn().TypeName()
		if _, ok := registry[name]; ok {
			panic(fmt.Sprintf("wire: type %q registered twice", name))
		}
		registry[name] = fn
	}
}

// Marshal encodes obj with its type tag.
func Marshal(obj Object) ([]byte, error) {
	body, err := json.Marshal(obj)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %s", obj.TypeName())
	}
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart(typeKey)
	e.Str(obj.TypeName())
	err = jx.DecodeBytes(body).ObjBytes(func(d *jx.Decoder, key []byte) error {
		raw, err := d.Raw()
		if err != nil {
			return err
		}
		e.FieldStart(string(key))
		e.Raw(raw)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "splice %s", obj.TypeName())
	}
	e.ObjEnd()
	return e.Bytes(), nil
}

// TypeOf returns the type tag of an encoded object without decoding the rest of it.
func TypeOf(data []byte) (string, error) {
	var name string
	found := false
	err := jx.DecodeBytes(data).ObjBytes(func(d *jx.Decoder, key []byte) error {
		if found || string(key) != typeKey {
			return d.Skip()
		}
		v, err := d.Str()
		if err != nil {
			return errors.Wrap(err, "type tag")
		}
		name, found = v, true
		return nil
	})
	if err != nil {
		return "", err
	}
	if !found {
		return "", errors.New("missing type tag")
	}
	return name, nil
}

// Decode decodes an object of any registered type.
func Decode(data []byte) (Object, error) {
	name, err := TypeOf(data)
	if err != nil {
		return nil, err
	}
	fn, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("unknown type %q", name)
	}
	obj := fn()
	if err := json.Unmarshal(data, obj); err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	return obj, nil
}

// DecodeAs decodes data and checks that the result is a T.
func DecodeAs[T Object](data []byte) (T, error) {
	var zero T
	obj, err := Decode(data)
	if err != nil {
		return zero, err
	}
	v, ok := obj.(T)
	if !ok {
		return zero, errors.Errorf("unexpected type %q", obj.TypeName())
	}
	return v, nil
}
