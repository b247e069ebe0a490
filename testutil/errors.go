package testutil

// SameErrorString reports whether err and target are both nil or both carry
// the same message, regardless of how they were wrapped.
func SameErrorString(err, target error) bool {
	if err == nil || target == nil {
		return err == target
	}
	return err.Error() == target.Error()
}
