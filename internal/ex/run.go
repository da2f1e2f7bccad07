package ex

import (
	"bytes"
	"os/exec"
)

// runStdout runs cmd through the user's shell and captures stdout,
// discarding stderr and reading from an empty stdin — the Go analogue
// of the original's fork/exec/pipe dance, minus the fork. It waits for
// the command to complete with no timeout, matching cmdexec's
// unconditional fork-and-wait.
func runStdout(cmd string) ([]byte, error) {
	shell, args := shellCommand(cmd)
	c := exec.Command(shell, args...)
	c.Stdin = bytes.NewReader(nil)
	var out bytes.Buffer
	c.Stdout = &out
	c.Stderr = nil

	if err := c.Run(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func shellCommand(cmd string) (string, []string) {
	if path, err := exec.LookPath("bash"); err == nil {
		return path, []string{"-c", cmd}
	}
	return "/bin/sh", []string{"-c", cmd}
}
