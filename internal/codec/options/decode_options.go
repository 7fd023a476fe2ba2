// Package options carries the immutable configuration for encode and decode
// calls, applied through functional options.
package options

type DecodeOption func(*DecodeOptions) error

// DecodeOptions configures a single decode pass.
type DecodeOptions struct {
	// MapOntoFirstResource merges the primary resource's fields onto the
	// first instance already present in the supplied store instead of
	// keying it fresh. Used when the server echoes back an updated version
	// of a single known resource without guaranteeing a matching id.
	MapOntoFirstResource bool
}

func defaultDecodeOptions() DecodeOptions {
	return DecodeOptions{}
}

// NewDecodeOptions applies the given options over the defaults.
func NewDecodeOptions(opt ...DecodeOption) (DecodeOptions, error) {
	opts := defaultDecodeOptions()

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return DecodeOptions{}, err
		}
	}
	return opts, nil
}

// WithMapOntoFirstResource enables merging the primary resource onto the
// first instance of the supplied store.
func WithMapOntoFirstResource() DecodeOption {
	return func(o *DecodeOptions) error {
		o.MapOntoFirstResource = true
		return nil
	}
}
