// Package types provides shared data structures for the math service.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Parameter: Tool parameter description
//   - Context: Execution context for a call
//   - Result: Standard operation result
//
// Example Usage:
//
//	result := &types.Result{
//	    Success: true,
//	    Data:    map[string]interface{}{"result": 120.0},
//	}
package types
