// Package common holds the pieces every math module shares: the InvalidArgument
// error, parameter extraction for tool calls, and argument validation.
//
// Library functions validate before they compute and return an error matching
// ErrInvalidArgument when a precondition fails:
//
//	if _, err := operations.Factorial(-1); errors.Is(err, common.ErrInvalidArgument) {
//	    // rejected before any work was done
//	}
//
// Tool handlers pull typed values out of a params map and convert errors into
// failed results. A missing or wrongly typed parameter is an InvalidArgument too:
//
//	n, err := common.Integer("factorial", params, "n")
//	if err != nil {
//	    return common.FromError(err)
//	}
//	value, err := operations.Factorial(n)
//	if err != nil {
//	    return common.FromError(err)
//	}
//	return common.Success(map[string]interface{}{"result": value})
package common
