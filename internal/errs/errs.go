package errs

import (
	"fmt"
)

func Wrap(sentinel, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

func WrapMsg(sentinel error, msg string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}
	return fmt.Errorf("%w: %s: %w", sentinel, msg, err)
}

// WrapMsgErr is WrapMsg for call sites that always have a cause.
// A nil err yields nil.
func WrapMsgErr(sentinel error, msg string, err error) error {
	if err == nil {
		return nil
	}
	return WrapMsg(sentinel, msg, err)
}
