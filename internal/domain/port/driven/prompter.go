package driven

// Prompter defines the driven port for interactive console input. The
// credential resolution flow depends on this interface rather than the
// terminal directly so that tests can substitute a scripted implementation.
type Prompter interface {
	// Line prints the prompt and reads one line of visible input.
	Line(prompt string) (string, error)

	// Secret prints the prompt and reads one line without echoing it.
	Secret(prompt string) (string, error)
}
