package typedflags

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// fieldInfo contains info about a struct field bound to a flag
type fieldInfo struct {
	fieldName  string
	flagName   string
	flagType   FlagType
	isRequired bool
	assign     fieldAssigner
}

// collectFieldsInfoRecursive collects info about all flag fields of the given struct including nested
// structs. It validates the types of the fields and their tags and returns an error if any of them
// is invalid.
func collectFieldsInfoRecursive(
	structValue reflect.Value,
	parentFlagPrefix string,
	parentFieldName string,
) (res []fieldInfo, err error) {
	sValType := structValue.Type()
	for i := 0; i < structValue.NumField(); i++ {
		field := sValType.Field(i)
		fieldName := getFieldName(parentFieldName, field.Name)
		fieldRole, err := getFieldRole(field)
		if err != nil {
			return nil, errors.Wrapf(err, `field "%s"`, fieldName)
		}
		if fieldRole == nil {
			continue
		}
		if !field.IsExported() {
			return nil, errors.Newf(`field "%s": unexported field can't be tagged`, fieldName)
		}
		fieldsInfo, err := collectFieldInfo(
			field,
			structValue.Field(i),
			fieldName,
			parentFlagPrefix,
			fieldRole,
		)
		if err != nil {
			return nil, err
		}
		res = append(res, fieldsInfo...)
	}
	return res, nil
}

func collectFieldInfo(
	field reflect.StructField,
	fieldValue reflect.Value,
	fieldName string,
	parentFlagPrefix string,
	fieldRole fieldRole,
) (res []fieldInfo, err error) {
	defer func() {
		if err != nil {
			err = errors.Wrapf(err, `field "%s" tagged with "%s"`, fieldName, fieldRole.getRoleTagName())
		}
	}()

	switch role := fieldRole.(type) {
	case nestedStructRole:
		if field.Type.Kind() != reflect.Struct {
			return nil, errors.Newf("struct expected, got %s", field.Type)
		}
		return collectFieldsInfoRecursive(fieldValue, parentFlagPrefix+role.flagPrefix, fieldName)
	case namedFlagRole:
		role = role.withPrefix(parentFlagPrefix)
		flagType, assign, err := getFieldAssigner(fieldValue)
		if err != nil {
			return nil, err
		}
		return []fieldInfo{{
			fieldName:  fieldName,
			flagName:   role.flagName,
			flagType:   flagType,
			isRequired: role.isRequired,
			assign:     assign,
		}}, nil
	}
	return nil, nil
}

func schemaOfFields(fieldsInfo []fieldInfo) (Schema, error) {
	schema := make(Schema, len(fieldsInfo))
	for _, info := range fieldsInfo {
		if _, has := schema[info.flagName]; has {
			return nil, errors.Wrapf(ErrFlagRedefined, `"%s" (field "%s")`, info.flagName, info.fieldName)
		}
		schema[info.flagName] = info.flagType
	}
	return schema, nil
}

func getStructPointerElem(p any) (res reflect.Value, err error) {
	val := reflect.ValueOf(p)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return reflect.Value{}, errors.Newf("expected pointer to struct, got %T", p)
	}
	res = val.Elem()
	if res.Kind() != reflect.Struct {
		return reflect.Value{}, errors.Newf("expected pointer to struct, got %T", p)
	}
	return res, nil
}

func getFieldName(parentFieldName, fieldName string) string {
	if parentFieldName == "" {
		return fieldName
	}
	return parentFieldName + "." + fieldName
}
