package dbusmock

import (
	"fmt"
	"reflect"

	"github.com/godbus/dbus/v5"
)

var basicTypes = map[byte]reflect.Type{
	'y': reflect.TypeFor[byte](),
	'b': reflect.TypeFor[bool](),
	'n': reflect.TypeFor[int16](),
	'q': reflect.TypeFor[uint16](),
	'i': reflect.TypeFor[int32](),
	'u': reflect.TypeFor[uint32](),
	'x': reflect.TypeFor[int64](),
	't': reflect.TypeFor[uint64](),
	'd': reflect.TypeFor[float64](),
	's': reflect.TypeFor[string](),
	'o': reflect.TypeFor[dbus.ObjectPath](),
	'g': reflect.TypeFor[dbus.Signature](),
	'v': reflect.TypeFor[dbus.Variant](),
	'h': reflect.TypeFor[dbus.UnixFDIndex](),
}

// splitSignature splits a concatenated signature into single complete types.
func splitSignature(sig string) ([]string, error) {
	if sig == "" {
		return nil, nil
	}
	if _, err := dbus.ParseSignature(sig); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	var types []string
	for rest := sig; rest != ""; {
		n := completeTypeLen(rest)
		types = append(types, rest[:n])
		rest = rest[n:]
	}
	return types, nil
}

// completeTypeLen returns the length of the first complete type in an
// already validated signature.
func completeTypeLen(sig string) int {
	switch sig[0] {
	case 'a':
		return 1 + completeTypeLen(sig[1:])
	case '(', '{':
		depth := 0
		for i := 0; i < len(sig); i++ {
			switch sig[i] {
			case '(', '{':
				depth++
			case ')', '}':
				depth--
				if depth == 0 {
					return i + 1
				}
			}
		}
		return len(sig)
	default:
		return 1
	}
}

func typeOf(sig string) (reflect.Type, error) {
	if t, ok := basicTypes[sig[0]]; ok && len(sig) == 1 {
		return t, nil
	}
	switch sig[0] {
	case 'a':
		if sig[1] == '{' {
			parts, err := splitSignature(sig[2 : len(sig)-1])
			if err != nil {
				return nil, err
			}
			key, err := typeOf(parts[0])
			if err != nil {
				return nil, err
			}
			elem, err := typeOf(parts[1])
			if err != nil {
				return nil, err
			}
			return reflect.MapOf(key, elem), nil
		}
		elem, err := typeOf(sig[1:])
		if err != nil {
			return nil, err
		}
		return reflect.SliceOf(elem), nil
	case '(':
		parts, err := splitSignature(sig[1 : len(sig)-1])
		if err != nil {
			return nil, err
		}
		fields := make([]reflect.StructField, 0, len(parts))
		for i, part := range parts {
			t, err := typeOf(part)
			if err != nil {
				return nil, err
			}
			fields = append(fields, reflect.StructField{Name: fmt.Sprintf("Field%d", i), Type: t})
		}
		return reflect.StructOf(fields), nil
	}
	return nil, fmt.Errorf("%w: unsupported signature %q", ErrInvalidArgs, sig)
}

// zeroValue returns the value a stub answers with for a single complete type.
// Object paths default to "/" and variants to an empty string so the reply
// always marshals.
func zeroValue(sig string) (any, error) {
	v, err := zeroValueOf(sig)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

func zeroValueOf(sig string) (reflect.Value, error) {
	switch sig {
	case "o":
		return reflect.ValueOf(dbus.ObjectPath("/")), nil
	case "v":
		return reflect.ValueOf(dbus.MakeVariant("")), nil
	}
	if t, ok := basicTypes[sig[0]]; ok && len(sig) == 1 {
		return reflect.Zero(t), nil
	}
	t, err := typeOf(sig)
	if err != nil {
		return reflect.Value{}, err
	}
	switch t.Kind() {
	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0), nil
	case reflect.Map:
		return reflect.MakeMap(t), nil
	case reflect.Struct:
		parts, err := splitSignature(sig[1 : len(sig)-1])
		if err != nil {
			return reflect.Value{}, err
		}
		v := reflect.New(t).Elem()
		for i, part := range parts {
			field, err := zeroValueOf(part)
			if err != nil {
				return reflect.Value{}, err
			}
			v.Field(i).Set(field)
		}
		return v, nil
	}
	return reflect.Zero(t), nil
}

// zeroValues returns one zero value per complete type in sig.
func zeroValues(sig string) ([]any, error) {
	types, err := splitSignature(sig)
	if err != nil {
		return nil, err
	}
	values := make([]any, 0, len(types))
	for _, t := range types {
		v, err := zeroValue(t)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
