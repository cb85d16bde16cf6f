package parse

type parseOpts struct {
	filename   string
	rejectDups bool
}

type ParseOption func(*parseOpts)

// WithFilename names the input in errors.
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// RejectDuplicateKeys makes a key defined twice in one mapping an
// ErrDuplicateKey.  By default the last definition wins.
func RejectDuplicateKeys() ParseOption {
	return func(o *parseOpts) { o.rejectDups = true }
}
