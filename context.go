package runif

import (
	"fmt"
	"reflect"
)

// ContextTag is the struct tag marking the field holding the precondition context.
const ContextTag = "runif"

const contextTagValue = "context"

// resolveContext returns the context of the given instance, or nil.
func resolveContext(c *Class, d Description, instance interface{}) (interface{}, error) {

	if c.Context == nil {
		return nil, nil
	}

	ctx, err := protectValue(func() (interface{}, error) { return c.Context(instance) })
	if err != nil {
		return nil, newConfigurationError(d, err, "unable to resolve precondition context")
	}

	return ctx, nil
}

// FieldContext is a ContextFunction returning the value of the single field
// of the instance tagged `runif:"context"`. Only the fields declared by the
// struct itself are considered: fields of embedded structs are ignored.
// The tagged field must be exported. Use an explicit ContextFunction to
// hand out an unexported value.
// It returns nil if no field is tagged or if the field holds a nil value.
func FieldContext(instance interface{}) (interface{}, error) {

	v := reflect.ValueOf(instance)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, fmt.Errorf("cannot read context from nil instance of type %T", instance)
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot read context from instance of type %T: not a struct", instance)
	}

	t := v.Type()
	found := -1

	for i := 0; i < t.NumField(); i++ {

		f := t.Field(i)
		if f.Anonymous || f.Tag.Get(ContextTag) != contextTagValue {
			continue
		}

		if found != -1 {
			return nil, fmt.Errorf("%s declares more than one context field: %s and %s", t, t.Field(found).Name, f.Name)
		}

		if !f.IsExported() {
			return nil, fmt.Errorf("%s context field %s must be exported", t, f.Name)
		}

		found = i
	}

	if found == -1 {
		return nil, nil
	}

	fv := v.Field(found)
	switch fv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if fv.IsNil() {
			return nil, nil
		}
	}

	return fv.Interface(), nil
}
