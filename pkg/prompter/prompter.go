package prompter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var (
	// In and Out are the prompt streams. Tests replace them.
	In  io.Reader = os.Stdin
	Out io.Writer = os.Stdout

	reader   *bufio.Reader
	readerOf io.Reader
)

// lineReader keeps one buffered reader per input so consecutive prompts
// do not lose buffered bytes.
func lineReader() *bufio.Reader {
	if reader == nil || readerOf != In {
		reader = bufio.NewReader(In)
		readerOf = In
	}
	return reader
}

func readLine() (string, error) {
	line, err := lineReader().ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PromptString prompts user for a string input
func PromptString(label string) (string, error) {
	fmt.Fprint(Out, label)
	input, err := readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// PromptStringDefault prompts with a prefilled value kept on empty input
func PromptStringDefault(label, current string) (string, error) {
	if current != "" {
		label = fmt.Sprintf("%s[%s] ", label, current)
	}
	v, err := PromptString(label)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// PromptPassword prompts user for a password (hidden input)
func PromptPassword(label string) (string, error) {
	fmt.Fprint(Out, label)

	if f, ok := In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytepw, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		fmt.Fprintln(Out) // New line after password input
		return string(bytepw), nil
	}

	// Piped input has nothing to hide.
	return readLine()
}

// PromptConfirm prompts user for yes/no confirmation
func PromptConfirm(label string) (bool, error) {
	fmt.Fprint(Out, label+" (y/n) ")
	input, err := readLine()
	if err != nil {
		return false, err
	}

	response := strings.TrimSpace(strings.ToLower(input))
	return response == "y" || response == "yes", nil
}

// PromptSelect prompts user to select from options
func PromptSelect(label string, options []string) (int, error) {
	fmt.Fprintln(Out, label)
	for i, opt := range options {
		fmt.Fprintf(Out, "%d) %s\n", i+1, opt)
	}

	fmt.Fprint(Out, "Select option: ")
	input, err := readLine()
	if err != nil {
		return -1, err
	}

	var selection int
	if _, err := fmt.Sscanf(strings.TrimSpace(input), "%d", &selection); err != nil {
		return -1, err
	}

	if selection < 1 || selection > len(options) {
		return -1, fmt.Errorf("invalid selection")
	}

	return selection - 1, nil
}

// PromptMultilineString reads lines until an empty one or maxLines
func PromptMultilineString(label string, maxLines int) (string, error) {
	fmt.Fprintf(Out, "%s (finish with an empty line):\n", label)

	var lines []string
	for i := 0; i < maxLines; i++ {
		line, err := readLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}
