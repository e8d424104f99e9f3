// Package app defines common runtime contracts shared by different
// executable entrypoints (e.g., deposit tool, balance report).
//
// It provides minimal abstractions that allow cmd/* binaries to start
// application components without depending on their concrete implementations.
package app

import "context"

// Runner represents a runnable application component.
// Run returns when the work is done or ctx is cancelled.
type Runner interface {
	Run(ctx context.Context) error
}
