package common

import (
	gomath "math"

	"github.com/GriffinCanCode/mathkit/internal/shared/types"
)

// MathOps provides common math helpers
type MathOps struct{}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// FromError turns err into a failed result. The error is returned alongside
// the result so the caller can classify it.
func FromError(err error) (*types.Result, error) {
	result, _ := Failure(err.Error())
	return result, err
}

// GetNumber extracts float64 from params with validation
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	return toFloat(val)
}

// GetInteger extracts an integral number from params.
// Floats are accepted only when they carry no fractional part.
func GetInteger(params map[string]interface{}, key string) (int, bool) {
	x, ok := GetNumber(params, key)
	if !ok || x != x || gomath.IsInf(x, 0) || x != gomath.Trunc(x) {
		return 0, false
	}
	if x >= gomath.MaxInt64 || x < gomath.MinInt64 {
		return 0, false
	}
	return int(x), true
}

// GetNumbers extracts array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	switch arr := params[key].(type) {
	case []float64:
		return arr, true
	case []int:
		numbers := make([]float64, len(arr))
		for i, n := range arr {
			numbers[i] = float64(n)
		}
		return numbers, true
	case []interface{}:
		numbers := make([]float64, 0, len(arr))
		for _, v := range arr {
			num, ok := toFloat(v)
			if !ok {
				return nil, false
			}
			numbers = append(numbers, num)
		}
		return numbers, true
	default:
		return nil, false
	}
}

func toFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// Number extracts a required number, rejecting missing or non-numeric values
func Number(op string, params map[string]interface{}, key string) (float64, error) {
	if _, present := params[key]; !present {
		return 0, InvalidArgument(op, key, "is required")
	}
	x, ok := GetNumber(params, key)
	if !ok {
		return 0, InvalidArgument(op, key, "must be a number")
	}
	return x, nil
}

// Integer extracts a required integer, rejecting fractional or non-numeric values
func Integer(op string, params map[string]interface{}, key string) (int, error) {
	if _, present := params[key]; !present {
		return 0, InvalidArgument(op, key, "is required")
	}
	n, ok := GetInteger(params, key)
	if !ok {
		return 0, InvalidArgument(op, key, "must be an integer")
	}
	return n, nil
}

// Numbers extracts a required array of numbers
func Numbers(op string, params map[string]interface{}, key string) ([]float64, error) {
	if _, present := params[key]; !present {
		return nil, InvalidArgument(op, key, "is required")
	}
	numbers, ok := GetNumbers(params, key)
	if !ok {
		return nil, InvalidArgument(op, key, "must be an array of numbers")
	}
	return numbers, nil
}
