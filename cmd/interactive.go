package cmd

import (
	"bufio"
	"fmt"
	"strings"
)

// ask prints a prompt and reads one trimmed line from the reader.
func ask(in *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// yes reports whether an answer is an agreement.
func yes(answer string) bool {
	return strings.EqualFold(answer, "yes") || strings.EqualFold(answer, "y")
}

// renderRow formats one raw row, one indexed cell per line.
func renderRow(row []string) string {
	var b strings.Builder
	for i, cell := range row {
		fmt.Fprintf(&b, "  [%d] %s\n", i, cell)
	}
	return b.String()
}
