package options

// NewFileSystemOption is a functional option applied to a storage client of type T at construction time.
// Example:
// ```
//
//	type keyOpt struct{ key string }
//	func (o *keyOpt) Apply(s *ftp.Storage) { s.key = o.key }
//	func (o *keyOpt) NewFileSystemOptionName() string { return "key" }
//
// ```
type NewFileSystemOption[T any] interface {
	Apply(*T)
	NewFileSystemOptionName() string
}

// ApplyOptions applies every non-nil option to target, in order.
func ApplyOptions[T any](target *T, opts ...NewFileSystemOption[T]) {
	for _, o := range opts {
		if o != nil {
			o.Apply(target)
		}
	}
}

// OptionNames returns the names of the given options, in order. Nil options are skipped.
func OptionNames[T any](opts ...NewFileSystemOption[T]) []string {
	names := make([]string, 0, len(opts))
	for _, o := range opts {
		if o != nil {
			names = append(names, o.NewFileSystemOptionName())
		}
	}
	return names
}
