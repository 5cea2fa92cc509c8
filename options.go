package gdal

type openOptions struct {
	update  bool
	shared  bool
	drivers []string
	options []string
}

// OpenOption configures Open behavior.
type OpenOption func(*openOptions)

// WithUpdate opens the dataset with write access instead of read-only.
func WithUpdate() OpenOption {
	return func(o *openOptions) {
		o.update = true
	}
}

// WithShared opens the dataset in shared mode: repeated opens of the same
// identifier on the same thread return the same native handle.
func WithShared() OpenOption {
	return func(o *openOptions) {
		o.shared = true
	}
}

// WithAllowedDrivers restricts the drivers the engine may try when
// identifying the source. By default all registered drivers are candidates.
func WithAllowedDrivers(drivers ...string) OpenOption {
	return func(o *openOptions) {
		o.drivers = append(o.drivers, drivers...)
	}
}

// WithOpenArgs passes KEY=VALUE open options through to the selected
// driver.
func WithOpenArgs(kv ...string) OpenOption {
	return func(o *openOptions) {
		o.options = append(o.options, kv...)
	}
}
