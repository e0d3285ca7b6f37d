package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter handles the line-oriented conversation with the operator. Prompts
// end with ": " and the answer on the next line is trimmed of surrounding
// whitespace.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Prompt prints the prompt text and reads one trimmed line. Read failures are
// fatal to the session and are returned to the caller.
func (p *Prompter) Prompt(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptYesNo asks until it gets an uppercase-normalised Y or N answer.
// Anything else re-prompts without a state change.
func (p *Prompter) PromptYesNo(prompt string) (bool, error) {
	for {
		answer, err := p.Prompt(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToUpper(answer) {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		default:
			p.Println("Only accepting a [Y]es or [N]o answer!")
			p.Println()
		}
	}
}

// PrintChoices renders a 1-based menu of titles.
func (p *Prompter) PrintChoices(titles []string) {
	for i, title := range titles {
		fmt.Fprintf(p.out, "[%d] %s\n", i+1, title)
	}
}

func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}
