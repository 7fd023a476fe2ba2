package printer

type ResourcePrinterOption func(*ResourcePrinterOptions) error

// ResourcePrinterOptions configures resource rendering.
type ResourcePrinterOptions struct {
	showLinkage   bool
	showDirty     bool
	showSeparator bool
}

func defaultResourcePrinterOptions() ResourcePrinterOptions {
	return ResourcePrinterOptions{
		showLinkage: true,
	}
}

// NewResourcePrinterOptions applies the given options over the defaults.
func NewResourcePrinterOptions(opt ...ResourcePrinterOption) (ResourcePrinterOptions, error) {
	opts := defaultResourcePrinterOptions()

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return ResourcePrinterOptions{}, err
		}
	}
	return opts, nil
}

// WithLinkage controls printing of relationship linkage lines.
func WithLinkage(show bool) ResourcePrinterOption {
	return func(o *ResourcePrinterOptions) error {
		o.showLinkage = show
		return nil
	}
}

// WithDirtyMarkers marks dirty attributes with an asterisk.
func WithDirtyMarkers(show bool) ResourcePrinterOption {
	return func(o *ResourcePrinterOptions) error {
		o.showDirty = show
		return nil
	}
}

// WithSeparator prints a separator line after each resource.
func WithSeparator(show bool) ResourcePrinterOption {
	return func(o *ResourcePrinterOptions) error {
		o.showSeparator = show
		return nil
	}
}
