package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter collects interactive answers, re-prompting until the input
// parses. Only a closed input stream surfaces as an error.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Int asks for an integer no smaller than min.
func (p *Prompter) Int(prompt string, min int) (int, error) {
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(line)
		if err != nil || value < min {
			fmt.Fprintf(p.out, "Invalid input: please enter an integer of at least %d.\n", min)
			continue
		}

		return value, nil
	}
}

// Choice asks until valid accepts the (uppercased) answer.
func (p *Prompter) Choice(prompt string, valid func(string) bool) (string, error) {
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return "", err
		}

		answer := strings.ToUpper(line)
		if !valid(answer) {
			fmt.Fprintln(p.out, "Invalid choice. Please try again.")
			continue
		}

		return answer, nil
	}
}

// YesNo asks until the answer is yes or no, case-insensitive.
func (p *Prompter) YesNo(prompt string) (bool, error) {
	for {
		line, err := p.ask(prompt)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}

		fmt.Fprintln(p.out, "Invalid response. Please answer with 'yes' or 'no'.")
	}
}

func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", fmt.Errorf("read input: %w", io.EOF)
	}

	return strings.TrimSpace(p.in.Text()), nil
}
