package generator

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompt is shown before the process count is read.
const Prompt = "Please enter the number of processes you want to generate: "

// ReadCount prints the prompt and parses the first line of in as a process
// count. Negative counts are clamped to zero.
func ReadCount(in io.Reader, prompt io.Writer) (int, error) {
	if prompt != nil {
		if _, err := io.WriteString(prompt, Prompt); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrIO, err)
		}
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w: read count: %v", ErrInput, err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return 0, fmt.Errorf("%w: no process count given", ErrInput)
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInput, line)
	}
	return max(n, 0), nil
}
