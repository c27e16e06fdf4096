package corefs

// Options configure an Env before any files are opened.
type Options struct {
	// WorkDir is the directory all file names are resolved against.
	WorkDir string
	// MmapLimit caps how many files may be served from a read-only
	// mapping at once. Opens past the cap transparently fall back to
	// positioned reads. Fixed once the env is open.
	MmapLimit int32
}

// NewDefaultOptions 返回默认选项
func NewDefaultOptions() *Options {
	return &Options{
		WorkDir:   "./work_test",
		MmapLimit: DefaultMmapLimit,
	}
}
