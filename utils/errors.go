package utils

import "fmt"

// WrapReadError returns a wrapped read error
func WrapReadError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("read error: %w", err)
}

// WrapSeekError returns a wrapped seek error
func WrapSeekError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("seek error: %w", err)
}

// WrapCloseError returns a wrapped close error
func WrapCloseError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("close error: %w", err)
}
