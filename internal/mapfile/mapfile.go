// Package mapfile loads a namespace mapping from a Java-properties-style
// key=value resource and feeds it into a mapping.Builder. This mirrors
// how the upstream tool's Main.getTransformer loaded its /default.mapping
// classpath resource via java.util.Properties.
package mapfile

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/wildjak/clsmap/internal/classfile/mapping"
)

//go:embed default.mapping
var defaultMapping []byte

// LoadDefault builds a MappingTable from the embedded default mapping
// (javax/* -> jakarta/* namespace moves), used when the CLI is invoked
// without an explicit --map or --map-file flag.
func LoadDefault() (*mapping.Table, error) {
	return Load(strings.NewReader(string(defaultMapping)))
}

// Load parses key=value pairs from r and builds a MappingTable from
// them. Blank lines and lines whose first non-space character is '#' or
// '!' are ignored, matching java.util.Properties comment syntax. Each
// key is split from its value at the first '='; backslash escapes are
// not interpreted.
func Load(r io.Reader) (*mapping.Table, error) {
	b := mapping.NewBuilder()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}

		key, value, ok := splitKeyValue(line)
		if !ok {
			return nil, fmt.Errorf("mapfile: line %d: missing '=': %q", lineNo, line)
		}

		if err := b.Add(key, value); err != nil {
			return nil, fmt.Errorf("mapfile: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mapfile: reading input: %w", err)
	}

	return b.Build()
}

func splitKeyValue(line string) (key, value string, ok bool) {
	idx := strings.IndexByte(line, '=')
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}
