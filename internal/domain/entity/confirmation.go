package entity

// Confirmation is the text an operator types to unlock a destructive action.
type Confirmation string

// IsConfirmed reports whether the text is exactly "Delete" or "DELETE".
func (c Confirmation) IsConfirmed() bool {
	return c == "Delete" || c == "DELETE"
}
