// Package prompt reads the oracle length interactively.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Prompt messages.
const (
	LengthPrompt  = "Enter the number of qubits:"
	InvalidInput  = "Invalid input!"
	InvalidLength = "Invalid number of qubits!"
)

// ReadLength prompts until a line holds an integer in [min, max]. It only
// gives up when in is exhausted.
func ReadLength(in io.Reader, out io.Writer, min, max int) (int, error) {
	reader := bufio.NewReader(in)
	for {
		if _, err := fmt.Fprint(out, LengthPrompt); err != nil {
			return 0, errors.Wrap(err, "write prompt")
		}
		line, readErr := reader.ReadString('\n')
		text := strings.TrimSpace(line)
		if text == "" && readErr != nil {
			if readErr == io.EOF {
				return 0, errors.Wrap(io.ErrUnexpectedEOF, "no qubit count entered")
			}
			return 0, errors.Wrap(readErr, "read qubit count")
		}
		num, err := strconv.Atoi(text)
		switch {
		case err != nil:
			fmt.Fprintln(out, InvalidInput)
		case num < min || num > max:
			fmt.Fprintln(out, InvalidLength)
		default:
			return num, nil
		}
		if readErr != nil {
			return 0, errors.Wrap(io.ErrUnexpectedEOF, "no valid qubit count entered")
		}
	}
}
