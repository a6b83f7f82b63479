package terminal

// Host is the set of callbacks the core calls out to when configured
//. None are required: a nil Host silently drops every
// notification. Avoid holding a callback table as global mutable state —
// inject a Host value at construction and plumb it through.
type Host interface {
	// SetTitle is called on OSC 0/1/2. nil means "restore default". The
	// legacy ESC k title form is not recognized by the parser.
	SetTitle(title *string)

	// SetColorName is called on OSC 4/104. nil name means "reset to
	// palette default". The return value reports success; the core logs
	// on false and leaves the prior color in place.
	SetColorName(index int, name *string) bool

	// SetUrgent is called on BEL (control code 0x07).
	SetUrgent(on bool)
}

// NopHost implements Host with no-op methods that always report success,
// useful for tests and for embedding a core with no window to notify.
type NopHost struct{}

func (NopHost) SetTitle(*string)               {}
func (NopHost) SetColorName(int, *string) bool { return true }
func (NopHost) SetUrgent(bool)                 {}
