package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/kballard/go-shellquote"
	"github.com/magiconair/properties"
	"github.com/mebigfatguy/vcsversion/internal/domain"
	"github.com/mebigfatguy/vcsversion/internal/utils"
	"gopkg.in/yaml.v3"
)

// Format selects how properties are rendered
type Format string

const (
	FormatProperties Format = "properties"
	FormatJSON       Format = "json"
	FormatYAML       Format = "yaml"
	FormatEnv        Format = "env"
)

// Formats lists every supported format
var Formats = []Format{FormatProperties, FormatJSON, FormatYAML, FormatEnv}

// ParseFormat validates a format name, ignoring case
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatProperties, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, s)
}

// Writer renders properties to a file or to stdout
type Writer struct {
	format Format
	path   string
	dryRun bool
	stdout io.Writer
	logger *utils.Logger
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	Format Format
	// Path is the output file; empty writes to Stdout
	Path   string
	DryRun bool
	Stdout io.Writer
	Logger *utils.Logger
}

// NewWriter creates a new output writer
func NewWriter(opts WriterOptions) (*Writer, error) {
	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return nil, err
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Writer{
		format: format,
		path:   opts.Path,
		dryRun: opts.DryRun,
		stdout: stdout,
		logger: logger.WithComponent("output"),
	}, nil
}

// Write renders props. With a path set the file is created or truncated;
// in dry-run mode the file is left alone and only logged.
func (w *Writer) Write(props *Properties) error {
	if w.format == FormatEnv {
		w.warnEnvCollisions(props)
	}

	if w.path == "" {
		return Render(w.stdout, w.format, props)
	}

	if w.dryRun {
		w.logger.Info().
			Str("path", w.path).
			Str("format", string(w.format)).
			Int("properties", props.Len()).
			Msg("Dry run, not writing properties")
		return nil
	}

	var buf bytes.Buffer
	if err := Render(&buf, w.format, props); err != nil {
		return err
	}
	if err := utils.EnsureDir(w.path); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}
	if err := os.WriteFile(w.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}

	w.logger.Debug().Str("path", w.path).Int("properties", props.Len()).Msg("Properties written")
	return nil
}

// warnEnvCollisions logs every environment name shared by several
// properties; the last one rendered wins in the shell
func (w *Writer) warnEnvCollisions(props *Properties) {
	for _, c := range EnvCollisions(props) {
		w.logger.Warn().
			Str("variable", c.Variable).
			Strs("properties", c.Properties).
			Msg("Properties map to the same environment variable")
	}
}

// EnvCollision names an environment variable claimed by more than one property
type EnvCollision struct {
	Variable   string
	Properties []string
}

// EnvCollisions lists the environment names shared by several properties, in
// the order the names first appear
func EnvCollisions(props *Properties) []EnvCollision {
	var order []string
	byName := make(map[string][]string)
	for _, key := range props.Keys() {
		name := EnvName(key)
		if _, seen := byName[name]; !seen {
			order = append(order, name)
		}
		byName[name] = append(byName[name], key)
	}

	var collisions []EnvCollision
	for _, name := range order {
		if keys := byName[name]; len(keys) > 1 {
			collisions = append(collisions, EnvCollision{Variable: name, Properties: keys})
		}
	}
	return collisions
}

// Render writes props to out in format f
func Render(out io.Writer, f Format, props *Properties) error {
	var err error
	switch f {
	case FormatProperties, "":
		_, err = props.props.Write(out, properties.UTF8)
	case FormatJSON:
		err = renderJSON(out, props)
	case FormatYAML:
		err = renderYAML(out, props)
	case FormatEnv:
		err = renderEnv(out, props)
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}
	return nil
}

func renderJSON(out io.Writer, props *Properties) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(props.Map())
}

func renderYAML(out io.Writer, props *Properties) error {
	if props.Len() == 0 {
		_, err := io.WriteString(out, "{}\n")
		return err
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(props.Map()); err != nil {
		return err
	}
	return enc.Close()
}

func renderEnv(out io.Writer, props *Properties) error {
	for _, key := range props.Keys() {
		value, _ := props.Get(key)
		if _, err := fmt.Fprintf(out, "%s=%s\n", EnvName(key), shellquote.Join(value)); err != nil {
			return err
		}
	}
	return nil
}

// EnvName turns a property name into an environment variable name:
// upper case with every other character replaced by '_'
func EnvName(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if i == 0 && unicode.IsDigit(r) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
