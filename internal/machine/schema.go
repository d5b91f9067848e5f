package machine

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/go-viper/mapstructure/v2"

	"github.com/rocketscienceinc/ninja-strike/internal/apperror"
)

// FieldType - primitive input types understood by the rollup action schemas.
type FieldType string

const (
	TypeUint   FieldType = "uint"
	TypeString FieldType = "string"
)

type Field struct {
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Optional bool      `json:"optional,omitempty"`
}

// Schema - the input shape of one action kind.
type Schema struct {
	Action string  `json:"action"`
	Fields []Field `json:"fields"`
}

// Validate - checks presence and primitive type of every declared field.
// Undeclared fields are ignored.
func (that Schema) Validate(inputs map[string]any) error {
	for _, field := range that.Fields {
		value, ok := inputs[field.Name]
		if !ok || value == nil {
			if field.Optional {
				continue
			}
			return fmt.Errorf("%w: %s.%s is required", apperror.ErrInvalidInput, that.Action, field.Name)
		}

		if !field.Type.accepts(value) {
			return fmt.Errorf("%w: %s.%s must be %s", apperror.ErrInvalidInput, that.Action, field.Name, field.Type)
		}
	}

	return nil
}

func (that Schema) clone() Schema {
	fields := make([]Field, len(that.Fields))
	copy(fields, that.Fields)

	return Schema{Action: that.Action, Fields: fields}
}

func (that FieldType) accepts(value any) bool {
	switch that {
	case TypeString:
		_, ok := value.(string)
		return ok
	case TypeUint:
		return isUint(value)
	default:
		return false
	}
}

func isUint(value any) bool {
	switch v := value.(type) {
	case json.Number:
		_, err := strconv.ParseUint(v.String(), 10, 64)
		return err == nil
	case float64:
		return isWholeUint64(v)
	case float32:
		return isWholeUint64(float64(v))
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() >= 0
	default:
		return false
	}
}

// 1<<64 is exactly representable as a float64, math.MaxUint64 is not.
func isWholeUint64(v float64) bool {
	return v >= 0 && v < 1<<64 && v == math.Trunc(v)
}

// decodeInputs - maps validated raw inputs onto a typed input struct.
func decodeInputs[T any](inputs map[string]any) (T, error) {
	var out T

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &out,
	})
	if err != nil {
		return out, fmt.Errorf("failed to build input decoder: %w", err)
	}

	if err = decoder.Decode(inputs); err != nil {
		return out, fmt.Errorf("%w: %s", apperror.ErrInvalidInput, err.Error())
	}

	return out, nil
}
