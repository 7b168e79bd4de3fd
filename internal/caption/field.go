package caption

// Field holds the caption input state between keystrokes: the normalized
// text shown in the input and the current inline error.
type Field struct {
	value string
	err   error
}

// Input records a keystroke. The stored value is always the upper-cased raw
// text; the error is set while the text contains a disallowed script and
// cleared as soon as it no longer does.
func (f *Field) Input(raw string) {
	f.value, f.err = CheckKeystroke(raw)
}

// Submit clears the current error, re-validates the accumulated value and
// returns the caption to send onward. On failure the error is kept for display.
func (f *Field) Submit() (string, error) {
	f.err = nil
	normalized, err := Validate(f.value)
	if err != nil {
		f.err = err
		return "", err
	}
	f.value = normalized
	return normalized, nil
}

// Value returns the text to display in the input.
func (f *Field) Value() string {
	return f.value
}

// Err returns the current validation error, if any.
func (f *Field) Err() error {
	return f.err
}

// Message returns the inline message to display, or "".
func (f *Field) Message() string {
	return Message(f.err)
}
