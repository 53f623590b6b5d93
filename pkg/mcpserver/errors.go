package mcpserver

import "fmt"

// StartupError means the invocation transport could not be brought up.
type StartupError struct {
	Err error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("start MCP transport: %v", e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}
