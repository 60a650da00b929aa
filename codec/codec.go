// Package codec implements strategies for converting structured values into
// byte sequences sent over a transport and back.
package codec

import "errors"

// Codec converts between structured values and byte sequences. Codecs hold
// no per call state and a single codec can be shared by any number of
// channels and goroutines.
type Codec interface {
	// Encode converts a value into bytes.
	Encode(v interface{}) ([]byte, error)

	// Decode reads bytes produced by Encode into the value pointed to by
	// v.
	Decode(data []byte, v interface{}) error
}

// Error is returned by codecs when a value can not be encoded or the
// provided bytes can not be decoded. It lets the callers tell apart a frame
// which arrived intact but held unexpected content from a failure of the
// connection itself.
type Error struct {
	Err error
}

func NewError(err error) error {
	return &Error{Err: err}
}

func (e *Error) Error() string {
	return "codec error: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsCodecError reports whether err was caused by an encode or decode failure
// rather than a transport failure.
func IsCodecError(err error) bool {
	var codecErr *Error
	return errors.As(err, &codecErr)
}
