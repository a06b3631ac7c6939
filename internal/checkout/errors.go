package checkout

import "errors"

var (
	ErrEmptyCart          = errors.New("cart is empty, nothing to checkout")
	ErrPaymentDeclined    = errors.New("payment was declined")
	ErrCheckoutInProgress = errors.New("a checkout attempt is already in flight")
	ErrIllegalTransition  = errors.New("illegal transition of checkout status")
)

// ValidationError reports the first failing checkout rule. The attempt
// stays open for correction, nothing has been charged or persisted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
