package main

// Options controls what gets listed and how each entry is rendered.
type Options struct {
	All      bool
	Long     bool
	Oneline  bool
	Bytes    bool
	Group    bool
	Modified bool
	Reverse  bool
	Sort     string
}

// hidden reports whether dotfiles are listed. The long form always
// includes them.
func (o Options) hidden() bool {
	return o.All || o.Long
}

func (o Options) oneEntryPerLine() bool {
	return o.Long || o.Oneline
}
