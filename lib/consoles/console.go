package consoles

type Console interface {
	Printf(format string, a ...any)

	PushPrefix(format string, a ...any)
	PopPrefix()

	// Prepare returns the text Printf would write, including timestamp and
	// prefixes.
	Prepare(format string, a ...any) string
}
