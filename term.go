package sshkit

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// TerminalAuth returns an [AuthCallback] that prompts on the
// controlling terminal.  Secrets (echo off) are read with the
// terminal in no-echo mode; plain prompts read a line from stdin.
// When verify is set the secret is requested twice and must match.
func TerminalAuth() AuthCallback {
	return func(prompt string, echo, verify bool, _ any) (string, error) {
		first, err := promptOnce(prompt, echo)
		if err != nil {
			return "", err
		}
		if !verify {
			return first, nil
		}
		second, err := promptOnce("Verify: ", echo)
		if err != nil {
			return "", err
		}
		if first != second {
			return "", fmt.Errorf("verification mismatch")
		}
		return first, nil
	}
}

func promptOnce(prompt string, echo bool) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	if !echo {
		pass, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading secret: %w", err)
		}
		return string(pass), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
