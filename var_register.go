package typedflags

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// fieldAssigner copies the parsed value of the flag to the field it was created for
type fieldAssigner func(res Results, flagName string)

func getFieldAssigner(fieldValue reflect.Value) (FlagType, fieldAssigner, error) {
	valueType := fieldValue.Type()

	if valueType.Kind() == reflect.Ptr {
		flagType, err := getPrimitiveFlagType(valueType.Elem())
		if err != nil {
			return 0, nil, err
		}
		return flagType, func(res Results, flagName string) {
			valueToSetPtr := reflect.New(valueType.Elem())
			setPrimitive(valueToSetPtr.Elem(), flagType, res, flagName)
			fieldValue.Set(valueToSetPtr)
		}, nil
	}

	flagType, err := getPrimitiveFlagType(valueType)
	if err != nil {
		return 0, nil, err
	}
	return flagType, func(res Results, flagName string) {
		setPrimitive(fieldValue, flagType, res, flagName)
	}, nil
}

func getPrimitiveFlagType(valueType reflect.Type) (FlagType, error) {
	switch valueType.Kind() {
	case reflect.Bool:
		return Bool, nil
	case reflect.Int32:
		return Int32, nil
	case reflect.String:
		return String, nil
	default:
		return 0, errors.Newf("unsupported field type %s, expected bool, int32, string or a pointer to them", valueType)
	}
}

func setPrimitive(value reflect.Value, flagType FlagType, res Results, flagName string) {
	switch flagType {
	case Bool:
		value.SetBool(res.Bool(flagName))
	case Int32:
		value.SetInt(int64(res.Int32(flagName)))
	case String:
		value.SetString(res.String(flagName))
	}
}
