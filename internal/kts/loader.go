package kts

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/vk/projectgrid/internal/config"
	"github.com/vk/projectgrid/internal/ctxlog"
)

// stringLiteral matches a double-quoted Kotlin string with backslash escapes.
const stringLiteral = `"((?:[^"\\]|\\.)*)"`

var (
	rootNameRegex   = regexp.MustCompile(`^rootProject\.name\s*=\s*` + stringLiteral + `$`)
	includeRegex    = regexp.MustCompile(`^include\s*\((.*)\)$`)
	includeArgRegex = regexp.MustCompile(`^\s*` + stringLiteral + `\s*$`)
	projectDirRegex = regexp.MustCompile(`^project\s*\(\s*` + stringLiteral + `\s*\)\.projectDir\s*=\s*file\s*\(\s*` + stringLiteral + `\s*\)$`)

	unescaper = strings.NewReplacer(`\\`, `\`, `\"`, `"`, `\$`, `$`)
)

// Loader is the Kotlin-DSL implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new Kotlin-DSL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and translates the settings file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Settings, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read Kotlin settings %s: %w", path, err)
	}
	return l.Parse(ctx, src, path)
}

// Parse translates Kotlin-DSL source into the settings model.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Kotlin settings loader started.", "file", filename)

	settings := &config.Settings{Source: filename}
	scanner := bufio.NewScanner(bytes.NewReader(src))
	inComment := false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		var line string
		line, inComment = stripComments(scanner.Text(), inComment)
		line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ";"))
		if line == "" {
			continue
		}

		pos := config.Position{File: filename, Line: lineNo}
		if err := parseStatement(settings, line, pos); err != nil {
			return nil, fmt.Errorf("%s: %w", pos, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read Kotlin settings %s: %w", filename, err)
	}
	if inComment {
		return nil, fmt.Errorf("%s: unterminated block comment", filename)
	}

	logger.Debug("Kotlin settings loading complete.", "file", filename, "statements", len(settings.Statements))
	return settings, nil
}

func parseStatement(settings *config.Settings, line string, pos config.Position) error {
	if m := rootNameRegex.FindStringSubmatch(line); m != nil {
		settings.AddRootName(unescaper.Replace(m[1]), pos)
		return nil
	}
	if m := projectDirRegex.FindStringSubmatch(line); m != nil {
		settings.AddSetDirectory(unescaper.Replace(m[1]), unescaper.Replace(m[2]), pos)
		return nil
	}
	if m := includeRegex.FindStringSubmatch(line); m != nil {
		args := strings.Split(m[1], ",")
		ids := make([]string, 0, len(args))
		for _, arg := range args {
			am := includeArgRegex.FindStringSubmatch(arg)
			if am == nil || am[1] == "" {
				return fmt.Errorf("include arguments must be string literals, got %q", strings.TrimSpace(arg))
			}
			ids = append(ids, unescaper.Replace(am[1]))
		}
		for _, id := range ids {
			settings.AddInclude(id, pos)
		}
		return nil
	}
	return fmt.Errorf("unsupported settings statement %q", line)
}

// stripComments removes `//` and `/* */` comments that are not inside a
// string literal. inComment tells whether a block comment is open at the start
// of the line; the returned flag tells whether one is still open at its end.
func stripComments(line string, inComment bool) (string, bool) {
	var sb strings.Builder
	inString := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		next := byte(0)
		if i+1 < len(line) {
			next = line[i+1]
		}
		switch {
		case inComment:
			if c == '*' && next == '/' {
				inComment = false
				i++
			}
		case inString:
			sb.WriteByte(c)
			if c == '\\' && next != 0 {
				sb.WriteByte(next)
				i++
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
			sb.WriteByte(c)
		case c == '/' && next == '/':
			return sb.String(), false
		case c == '/' && next == '*':
			inComment = true
			i++
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), inComment
}
