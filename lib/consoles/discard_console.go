package consoles

type discardConsole struct{}

// NewDiscardConsole creates a console that drops everything.
func NewDiscardConsole() Console {
	return discardConsole{}
}

func (discardConsole) Printf(string, ...any)     {}
func (discardConsole) PushPrefix(string, ...any) {}
func (discardConsole) PopPrefix()                {}

func (discardConsole) Prepare(string, ...any) string {
	return ""
}
