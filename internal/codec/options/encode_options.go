package options

type EncodeOption func(*EncodeOptions) error

// EncodeOptions configures a single encode pass.
type EncodeOptions struct {
	// DirtyOnly limits emitted attributes to those whose dirty flag is
	// set. Untracked attributes are skipped entirely in this mode.
	DirtyOnly bool

	// IncludeToOne embeds to-one relationship linkage (type+id only).
	IncludeToOne bool

	// IncludeToMany embeds to-many relationship linkage (type+id only).
	IncludeToMany bool
}

func defaultEncodeOptions() EncodeOptions {
	return EncodeOptions{}
}

// NewEncodeOptions applies the given options over the defaults.
func NewEncodeOptions(opt ...EncodeOption) (EncodeOptions, error) {
	opts := defaultEncodeOptions()

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return EncodeOptions{}, err
		}
	}
	return opts, nil
}

// WithDirtyOnly limits emitted attributes to dirty ones.
func WithDirtyOnly() EncodeOption {
	return func(o *EncodeOptions) error {
		o.DirtyOnly = true
		return nil
	}
}

// WithToOneLinkage embeds to-one relationship linkage.
func WithToOneLinkage() EncodeOption {
	return func(o *EncodeOptions) error {
		o.IncludeToOne = true
		return nil
	}
}

// WithToManyLinkage embeds to-many relationship linkage.
func WithToManyLinkage() EncodeOption {
	return func(o *EncodeOptions) error {
		o.IncludeToMany = true
		return nil
	}
}
