package codec

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cast"

	"github.com/jsonapi-tools/wiremap/internal/schema"
)

// coerce converts a generic decoded JSON value to the attribute's declared
// kind. Wire nulls pass through as nil for every kind.
func coerce(kind schema.Kind, value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	switch kind {
	case schema.KindString:
		return cast.ToStringE(value)
	case schema.KindInt:
		// JSON numbers decode as float64; a fractional value must not be
		// silently truncated into an int attribute.
		if f, ok := value.(float64); ok && f != math.Trunc(f) {
			return nil, fmt.Errorf("cannot coerce non-integer value %v to an int attribute", f)
		}
		return cast.ToInt64E(value)
	case schema.KindFloat:
		return cast.ToFloat64E(value)
	case schema.KindBool:
		return cast.ToBoolE(value)
	case schema.KindTime:
		return cast.ToTimeE(value)
	default:
		// KindRaw: passed through untouched.
		return value, nil
	}
}

// wireValue converts an attribute value to its canonical wire form. Times
// marshal as RFC 3339; everything else is emitted as stored.
func wireValue(kind schema.Kind, value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	if kind != schema.KindTime {
		return value, nil
	}

	switch t := value.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339), nil
	case *time.Time:
		if t == nil {
			return nil, nil
		}
		return t.UTC().Format(time.RFC3339), nil
	case string:
		return t, nil
	default:
		return nil, fmt.Errorf("cannot serialize %T as a time attribute", value)
	}
}
