package wordtree

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const maxLineLength = 1 << 20

// Encoding names the text encoding of a word source.
type Encoding string

const (
	EncodingUTF8    Encoding = "utf-8"
	EncodingUTF16LE Encoding = "utf-16le"
	EncodingUTF16BE Encoding = "utf-16be"
)

var (
	// ErrSourceUnavailable is reported when a word source cannot be opened or read.
	ErrSourceUnavailable = errors.New("word source unavailable")
	// ErrUndecodableEntry is reported when a line of a word source is not valid text.
	ErrUndecodableEntry = errors.New("undecodable word entry")
	// ErrUnknownEncoding is returned for an Encoding this package cannot decode.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// SourceError describes a failure while reading a word source. errors.Is matches
// it against ErrSourceUnavailable or ErrUndecodableEntry depending on Kind.
type SourceError struct {
	Name string
	// Line is the 1-based line number, zero when the source could not be opened.
	Line int
	Kind error
	Err  error
}

func (e *SourceError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v: %v", e.Name, e.Line, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v: %v", e.Name, e.Kind, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

func (e *SourceError) Is(target error) bool { return target == e.Kind }

type sourceOptions struct {
	name            string
	encoding        Encoding
	skipUndecodable bool
	logger          zerolog.Logger
}

// SourceOption configures how a word source is read.
type SourceOption func(*sourceOptions)

// WithEncoding sets the text encoding of the source. The default is EncodingUTF8.
func WithEncoding(enc Encoding) SourceOption {
	return func(o *sourceOptions) {
		o.encoding = enc
	}
}

// WithName sets the name used for the source in errors and logs.
func WithName(name string) SourceOption {
	return func(o *sourceOptions) {
		o.name = name
	}
}

// WithLogger sets the logger progress is reported to. Nothing is logged by default.
func WithLogger(logger zerolog.Logger) SourceOption {
	return func(o *sourceOptions) {
		o.logger = logger
	}
}

// SkipUndecodable makes undecodable lines be logged and skipped instead of ending
// the read.
func SkipUndecodable() SourceOption {
	return func(o *sourceOptions) {
		o.skipUndecodable = true
	}
}

func newSourceOptions(opts []SourceOption) sourceOptions {
	o := sourceOptions{
		name:     "<reader>",
		encoding: EncodingUTF8,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (enc Encoding) decoder() (transform.Transformer, error) {
	switch Encoding(strings.ToLower(string(enc))) {
	case EncodingUTF8, "utf8", "":
		// raw bytes pass through so invalid sequences can be reported per line
		return unicode.BOMOverride(transform.Nop), nil
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder(), nil
	}
	return nil, errors.Wrapf(ErrUnknownEncoding, "%q", string(enc))
}

// ValidEncoding reports whether enc names an encoding word sources can be read in.
func ValidEncoding(enc Encoding) bool {
	_, err := enc.decoder()
	return err == nil
}

// BuildFromReader creates a tree holding every line of r.
//
// On a read or decode failure the tree built so far is returned together with a
// *SourceError, so the caller can decide whether a partial tree is good enough.
func BuildFromReader(r io.Reader, opts ...SourceOption) (*WordTree, error) {
	t := New()
	_, err := t.InsertFrom(r, opts...)
	return t, err
}

// BuildFromFile creates a tree holding every line of the file at path.
func BuildFromFile(path string, opts ...SourceOption) (*WordTree, error) {
	t := New()
	_, err := t.InsertFile(path, opts...)
	return t, err
}

// InsertFile inserts every line of the file at path. See InsertFrom.
func (t *WordTree) InsertFile(path string, opts ...SourceOption) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, &SourceError{Name: path, Kind: ErrSourceUnavailable, Err: err}
	}
	defer f.Close()

	return t.InsertFrom(f, append([]SourceOption{WithName(path)}, opts...)...)
}

// InsertFrom inserts every line of r, one word per line with the line terminator
// removed, and returns the number of lines inserted.
func (t *WordTree) InsertFrom(r io.Reader, opts ...SourceOption) (int, error) {
	o := newSourceOptions(opts)
	sourceLogger := o.logger.With().Str("source", o.name).Logger()

	decoder, err := o.encoding.decoder()
	if err != nil {
		return 0, err
	}

	sourceLogger.Info().Str("encoding", string(o.encoding)).Msg("Started loading")

	scanner := bufio.NewScanner(transform.NewReader(r, decoder))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	lineNum, inserted, skipped := 0, 0, 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if !utf8.Valid(line) {
			entryErr := &SourceError{
				Name: o.name,
				Line: lineNum,
				Kind: ErrUndecodableEntry,
				Err:  errors.Errorf("invalid %s sequence", o.encoding),
			}
			if !o.skipUndecodable {
				sourceLogger.Error().Err(entryErr).Msg("Stopped loading")
				return inserted, entryErr
			}
			sourceLogger.Warn().Err(entryErr).Msg("Skipping entry")
			skipped++
			continue
		}
		t.insert(string(line))
		inserted++
	}
	if err := scanner.Err(); err != nil {
		readErr := &SourceError{
			Name: o.name,
			Line: lineNum + 1,
			Kind: ErrSourceUnavailable,
			Err:  errors.Wrap(err, "read failed"),
		}
		sourceLogger.Error().Err(readErr).Msg("Stopped loading")
		return inserted, readErr
	}

	sourceLogger.Info().
		Int("skipped", skipped).
		Int("words", t.Len()).
		Msgf("%d words were loaded", inserted)
	return inserted, nil
}
