// Package schema describes screen records as JSON Schema documents.
package schema

import (
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/shopspring/decimal"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// DecimalPattern matches the string form decimals are encoded with.
const DecimalPattern = `^-?[0-9]+(\.[0-9]+)?$`

// Reflect builds an inline schema for v. Decimal amounts are described as
// numeric strings, matching how they are encoded.
func Reflect(v any) *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Mapper:                    mapDecimal,
	}
	return r.Reflect(v)
}

func mapDecimal(t reflect.Type) *jsonschema.Schema {
	if t != decimalType {
		return nil
	}
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     DecimalPattern,
		Description: "decimal amount",
	}
}
