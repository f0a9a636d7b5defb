package errors

import "errors"

var (
	// ErrNotFound indicates that the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates that a unique constraint was violated
	ErrDuplicate = errors.New("duplicate record")

	// ErrInvalidReference indicates that a referenced record does not exist
	ErrInvalidReference = errors.New("referenced record does not exist")

	// ErrConflict indicates a write that lost a concurrent transaction and may be retried
	ErrConflict = errors.New("concurrent update conflict")

	// ErrInvalidCredentials indicates a failed admin login
	ErrInvalidCredentials = errors.New("invalid admin credentials")

	// ErrAdminLimitReached indicates that no more admin accounts may be created
	ErrAdminLimitReached = errors.New("maximum number of admins reached")

	// ErrInvalidProfile indicates a customer profile the matching engine cannot evaluate
	ErrInvalidProfile = errors.New("invalid customer profile")

	// ErrNoValidPincode indicates that a pincode lookup carried no well-formed pincode
	ErrNoValidPincode = errors.New("no valid pincode supplied")

	// ErrBlobStoreDisabled indicates that image uploads are not configured
	ErrBlobStoreDisabled = errors.New("image storage is not configured")
)
