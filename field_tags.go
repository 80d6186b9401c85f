package typedflags

import (
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

const (
	flagNameTag     = "flag"
	flagRequiredTag = "flagRequired"
	flagPrefixTag   = "flagPrefix"
)

type fieldRole interface {
	getRoleTagName() string
}

type namedFlagRole struct {
	flagName   string
	isRequired bool
}

func (r namedFlagRole) getRoleTagName() string {
	return flagNameTag
}

func (r namedFlagRole) withPrefix(namePrefix string) namedFlagRole {
	r.flagName = namePrefix + r.flagName
	return r
}

type nestedStructRole struct {
	flagPrefix string
}

func (r nestedStructRole) getRoleTagName() string {
	return flagPrefixTag
}

// getFieldRole returns nil role for fields that are not related to flags
func getFieldRole(field reflect.StructField) (fieldRole, error) {
	tags := field.Tag

	flagName := tags.Get(flagNameTag)
	if flagName == "-" {
		flagName = ""
	}
	flagRequired, hasFlagRequired, err := getBoolTag(tags, flagRequiredTag)
	if err != nil {
		return nil, err
	}
	flagPrefix, hasFlagPrefix := tags.Lookup(flagPrefixTag)
	hasFlagName := flagName != ""

	switch {
	case hasFlagName && hasFlagPrefix:
		return nil, errors.Newf(`only one of "%s", "%s" tags can be used`, flagNameTag, flagPrefixTag)
	case hasFlagName:
		if strings.HasPrefix(flagName, "-") || strings.IndexFunc(flagName, unicode.IsSpace) >= 0 {
			return nil, errors.Newf(`invalid "%s" tag value: "%s"`, flagNameTag, flagName)
		}
		return namedFlagRole{
			flagName:   flagName,
			isRequired: flagRequired,
		}, nil
	case hasFlagRequired:
		return nil, errors.Newf(`"%s" tag can be used only with "%s" tag`, flagRequiredTag, flagNameTag)
	case hasFlagPrefix:
		return nestedStructRole{
			flagPrefix: flagPrefix,
		}, nil
	default:
		return nil, nil
	}
}

func getBoolTag(tags reflect.StructTag, tagName string) (val bool, exists bool, err error) {
	var strVal string
	if strVal, exists = tags.Lookup(tagName); strVal != "" {
		if val, err = strconv.ParseBool(strVal); err != nil {
			return false, exists,
				errors.Newf(`invalid "%s" tag bool value: "%s"`, tagName, strVal)
		}
	}
	return val, exists, nil
}
