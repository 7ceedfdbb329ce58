package layout

// FilterSnapshot blanks the fields named in hide. Unknown names are ignored.
// A blank field still occupies its cell; only its text disappears.
func FilterSnapshot(s Snapshot, hide []string) Snapshot {
	if len(hide) == 0 {
		return s
	}
	for _, name := range hide {
		if p := s.field(name); p != nil {
			*p = ""
		}
	}
	return s
}

// IsField reports whether name is a known field name
func IsField(name string) bool {
	var s Snapshot
	return s.field(name) != nil
}
