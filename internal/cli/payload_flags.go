package cli

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/MKhiriev/go-arr-keeper/internal/action"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// payloadBinder fills one payload value from the flags of one command.
// Payload fields declare their flag through struct tags:
//
//	arg      flag name
//	usage    help text
//	default  default value
//	required "true" when the flag is mandatory
//
// Pointer fields are set only when their flag was given.
type payloadBinder struct {
	value    reflect.Value
	optional []func(fs *pflag.FlagSet)
}

func bindPayload(cmd *cobra.Command, spec action.Spec) (*payloadBinder, error) {
	t := spec.PayloadType()
	b := &payloadBinder{value: reflect.New(t)}
	fs := cmd.Flags()

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name := sf.Tag.Get("arg")
		if name == "" {
			continue
		}
		usage := sf.Tag.Get("usage")
		def := sf.Tag.Get("default")
		field := b.value.Elem().Field(i)

		if err := b.bindField(fs, field, name, usage, def); err != nil {
			return nil, fmt.Errorf("%s: field %s: %w", spec.Operation, sf.Name, err)
		}

		if sf.Tag.Get("required") == "true" {
			if err := cmd.MarkFlagRequired(name); err != nil {
				return nil, err
			}
		}
	}

	return b, nil
}

func (b *payloadBinder) bindField(fs *pflag.FlagSet, field reflect.Value, name, usage, def string) error {
	switch field.Kind() {
	case reflect.Int64:
		d, err := parseDefault(def, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) })
		if err != nil {
			return err
		}
		fs.Int64Var(field.Addr().Interface().(*int64), name, d, usage)
	case reflect.Int:
		d, err := parseDefault(def, strconv.Atoi)
		if err != nil {
			return err
		}
		fs.IntVar(field.Addr().Interface().(*int), name, d, usage)
	case reflect.String:
		fs.StringVar(field.Addr().Interface().(*string), name, def, usage)
	case reflect.Bool:
		d, err := parseDefault(def, strconv.ParseBool)
		if err != nil {
			return err
		}
		fs.BoolVar(field.Addr().Interface().(*bool), name, d, usage)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.Int64 {
			return fmt.Errorf("unsupported slice type %s", field.Type())
		}
		fs.Int64SliceVar(field.Addr().Interface().(*[]int64), name, nil, usage)
	case reflect.Pointer:
		return b.bindOptional(fs, field, name, usage)
	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}
	return nil
}

// bindOptional registers a flag for a pointer field. The flag writes into a
// holder; the field points at the holder only if the flag was given.
func (b *payloadBinder) bindOptional(fs *pflag.FlagSet, field reflect.Value, name, usage string) error {
	holder := reflect.New(field.Type().Elem())

	switch field.Type().Elem().Kind() {
	case reflect.Bool:
		fs.BoolVar(holder.Interface().(*bool), name, false, usage)
	case reflect.Int64:
		fs.Int64Var(holder.Interface().(*int64), name, 0, usage)
	case reflect.String:
		fs.StringVar(holder.Interface().(*string), name, "", usage)
	default:
		return fmt.Errorf("unsupported optional type %s", field.Type())
	}

	b.optional = append(b.optional, func(fs *pflag.FlagSet) {
		if fs.Changed(name) {
			field.Set(holder)
		}
	})
	return nil
}

// payload returns the parsed payload value.
func (b *payloadBinder) payload(fs *pflag.FlagSet) action.Payload {
	for _, apply := range b.optional {
		apply(fs)
	}
	return b.value.Elem().Interface().(action.Payload)
}

func parseDefault[T any](def string, parse func(string) (T, error)) (T, error) {
	var zero T
	if def == "" {
		return zero, nil
	}
	v, err := parse(def)
	if err != nil {
		return zero, fmt.Errorf("bad default %q: %w", def, err)
	}
	return v, nil
}
