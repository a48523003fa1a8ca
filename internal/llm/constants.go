package llm

import (
	"path/filepath"
	"strings"
)

const (
	extensionGo    = ".go"
	extensionJS    = ".js"
	extensionTS    = ".ts"
	extensionTSX   = ".tsx"
	extensionJSX   = ".jsx"
	extensionPy    = ".py"
	extensionJava  = ".java"
	extensionC     = ".c"
	extensionCpp   = ".cpp"
	extensionH     = ".h"
	extensionHPP   = ".hpp"
	extensionRS    = ".rs"
	extensionRB    = ".rb"
	extensionPHP   = ".php"
	extensionCS    = ".cs"
	extensionSwift = ".swift"
	extensionKT    = ".kt"
	extensionScala = ".scala"
)

var fenceLanguages = map[string]string{
	extensionGo:    "go",
	extensionJS:    "javascript",
	extensionTS:    "typescript",
	extensionTSX:   "tsx",
	extensionJSX:   "jsx",
	extensionPy:    "python",
	extensionJava:  "java",
	extensionC:     "c",
	extensionCpp:   "cpp",
	extensionH:     "c",
	extensionHPP:   "cpp",
	extensionRS:    "rust",
	extensionRB:    "ruby",
	extensionPHP:   "php",
	extensionCS:    "csharp",
	extensionSwift: "swift",
	extensionKT:    "kotlin",
	extensionScala: "scala",
}

// LanguageForFile returns the code fence language for a file name, or "" when
// the extension is not a known source extension.
func LanguageForFile(name string) string {
	return fenceLanguages[strings.ToLower(filepath.Ext(name))]
}
