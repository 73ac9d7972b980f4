package validation

import (
	"fmt"
	"reflect"
	"runtime"

	libErr "github.com/LerianStudio/lib-shutdown-go/error"
)

// Bind validates that callback is invocable with the given arguments and
// returns a closure that performs the call. Validation happens here, at
// registration time, never at invocation time: deferred callbacks run during
// process teardown where a bad target is hard to surface or recover from.
func Bind(callback any, args []any) (func(), error) {
	if callback == nil {
		return nil, &libErr.InvalidCallbackError{
			Target: "<nil>",
			Reason: "callback is nil",
		}
	}

	// Fast path for the common case of a plain niladic function
	if fn, ok := callback.(func()); ok && fn != nil && len(args) == 0 {
		return fn, nil
	}

	v := reflect.ValueOf(callback)
	if v.Kind() != reflect.Func {
		return nil, &libErr.InvalidCallbackError{
			Target: v.Type().String(),
			Reason: fmt.Sprintf("target of kind %s is not a function", v.Kind()),
		}
	}

	if v.IsNil() {
		return nil, &libErr.InvalidCallbackError{
			Target: v.Type().String(),
			Reason: "nil function value",
		}
	}

	in, err := bindArguments(v, args)
	if err != nil {
		return nil, err
	}

	return func() {
		v.Call(in)
	}, nil
}

// bindArguments checks arity and assignability and materializes the argument
// list for reflect.Value.Call.
func bindArguments(v reflect.Value, args []any) ([]reflect.Value, error) {
	t := v.Type()

	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--

		if len(args) < fixed {
			return nil, &libErr.InvalidCallbackError{
				Target: targetName(v),
				Reason: fmt.Sprintf("expects at least %d arguments, got %d", fixed, len(args)),
			}
		}
	} else if len(args) != fixed {
		return nil, &libErr.InvalidCallbackError{
			Target: targetName(v),
			Reason: fmt.Sprintf("expects %d arguments, got %d", fixed, len(args)),
		}
	}

	in := make([]reflect.Value, 0, len(args))

	for i, arg := range args {
		param := paramType(t, i)

		if arg == nil {
			if !isNilable(param) {
				return nil, &libErr.InvalidCallbackError{
					Target: targetName(v),
					Reason: fmt.Sprintf("argument %d is nil but parameter type %s is not nilable", i, param),
				}
			}

			in = append(in, reflect.Zero(param))

			continue
		}

		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(param) {
			return nil, &libErr.InvalidCallbackError{
				Target: targetName(v),
				Reason: fmt.Sprintf("argument %d of type %s is not assignable to parameter type %s", i, av.Type(), param),
			}
		}

		in = append(in, av)
	}

	return in, nil
}

// paramType returns the effective parameter type for argument i, unwrapping
// the slice element type for variadic tails.
func paramType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}

	return t.In(i)
}

func isNilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// targetName resolves the best available name for the offending function so
// validation errors point at a concrete target.
func targetName(v reflect.Value) string {
	if fn := runtime.FuncForPC(v.Pointer()); fn != nil && fn.Name() != "" {
		return fn.Name()
	}

	return v.Type().String()
}
