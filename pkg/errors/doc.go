// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeCaptureFailed,
//	    "failed to capture help listing",
//	    execErr,
//	    map[string]interface{}{
//	        "program": "dns-controller-manager",
//	    },
//	)
package errors
