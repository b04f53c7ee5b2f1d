package launcher

import "fmt"

// BindError reports that the listening socket could not be created.
// It is fatal: the launcher never retries a failed bind.
type BindError struct {
	// Addr is the address the bind was attempted on.
	Addr string
	// Err is the underlying OS-level reason.
	Err error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}
