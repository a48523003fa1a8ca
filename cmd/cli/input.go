package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sevigo/code-critic/internal/llm"
)

// readCode reads the code from path, or from stdin when path is "" or "-".
// The returned language is detected from the file name.
func readCode(path string, stdin io.Reader) (code, language string, err error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read code from stdin: %w", err)
		}
		return string(data), "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), llm.LanguageForFile(path), nil
}
