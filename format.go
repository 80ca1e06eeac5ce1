package simplelog

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrBadFormat is matched by every error returned from Interpolate.
var ErrBadFormat = errors.New("simplelog: bad format")

// FormatError reports a malformed format string or a reference to a missing
// argument.
type FormatError struct {
	Format string // The format string as given.
	Pos    int    // Byte offset of the offending field.
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("simplelog: bad format %q at offset %d: %s", e.Format, e.Pos, e.Reason)
}

// Is makes errors.Is(err, ErrBadFormat) hold.
func (e *FormatError) Is(target error) bool {
	return target == ErrBadFormat
}

type numbering int

const (
	numberingUnset numbering = iota
	numberingAuto
	numberingManual
)

// Interpolate replaces the replacement fields of format with args.
//
//   - "{}" takes the next argument, left to right.
//   - "{N}" takes argument N; a format uses either automatic or explicit
//     indexes, not both.
//   - "{N:spec}" or "{:spec}" renders with the fmt verb "%spec"; a spec
//     without a trailing verb letter gets "v", so "{:8}" is "%8v".
//   - A spec may start with "[fill]align", where align is '<', '>' or '^'
//     and the following width pads with fill: "{:*^7}" centers in 7 runes.
//   - A spec fmt cannot apply to the argument, such as "{:d}" for a
//     string, is an error.
//   - "{{" and "}}" are literal braces.
//
// Surplus arguments are ignored.
//
// Example:
//
//	Interpolate("{1} and {0}", 1.5, "test") // "test and 1.5"
func Interpolate(format string, args ...any) (string, error) {
	var b strings.Builder
	b.Grow(len(format) + 8*len(args))

	mode := numberingUnset
	next := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		switch c {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(format[i+1:], '}')
			if end < 0 {
				return "", badFormat(format, i, "unmatched '{'")
			}
			field := format[i+1 : i+1+end]
			index, spec, _ := strings.Cut(field, ":")

			var n int
			if index == "" {
				if mode == numberingManual {
					return "", badFormat(format, i, "cannot switch from explicit to automatic argument indexing")
				}
				mode = numberingAuto
				n = next
				next++
			} else {
				if mode == numberingAuto {
					return "", badFormat(format, i, "cannot switch from automatic to explicit argument indexing")
				}
				mode = numberingManual
				v, err := strconv.Atoi(index)
				if err != nil || v < 0 {
					return "", badFormat(format, i, fmt.Sprintf("invalid argument index %q", index))
				}
				n = v
			}
			if n >= len(args) {
				return "", badFormat(format, i, fmt.Sprintf("argument index %d out of range (%d arguments)", n, len(args)))
			}
			if err := writeArg(&b, args[n], spec); err != nil {
				return "", badFormat(format, i, err.Error())
			}
			i += end + 1
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", badFormat(format, i, "unmatched '}'")
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

func writeArg(b *strings.Builder, arg any, spec string) error {
	if spec == "" {
		if s, ok := arg.(string); ok {
			b.WriteString(s)
			return nil
		}
		fmt.Fprint(b, arg)
		return nil
	}

	fill, align, rest := splitAlign(spec)
	width := 0
	if align != 0 {
		// The width becomes padding; fmt only sees flags, precision and verb.
		flags := len(rest) - len(strings.TrimLeft(rest, "+-# 0"))
		digits := len(rest[flags:]) - len(strings.TrimLeft(rest[flags:], "0123456789"))
		if digits > 0 {
			width, _ = strconv.Atoi(rest[flags : flags+digits])
		}
		rest = rest[:flags] + rest[flags+digits:]
	}

	verb := "%" + rest
	if rest == "" || !isLetter(rest[len(rest)-1]) {
		verb += "v"
	}
	out := fmt.Sprintf(verb, arg)
	if strings.Contains(out, "%!") && !strings.Contains(fmt.Sprint(arg), "%!") {
		return errors.Errorf("cannot apply %q to %T", spec, arg)
	}

	pad := width - utf8.RuneCountInString(out)
	if pad <= 0 {
		b.WriteString(out)
		return nil
	}
	left := 0
	switch align {
	case '>':
		left = pad
	case '^':
		left = pad / 2
	}
	b.WriteString(strings.Repeat(string(fill), left))
	b.WriteString(out)
	b.WriteString(strings.Repeat(string(fill), pad-left))
	return nil
}

// splitAlign strips an optional "[fill]align" head ('<', '>' or '^') from spec.
// The fill defaults to a space; align is zero when absent.
func splitAlign(spec string) (fill rune, align byte, rest string) {
	r, size := utf8.DecodeRuneInString(spec)
	if size < len(spec) && isAlign(spec[size]) {
		return r, spec[size], spec[size+1:]
	}
	if isAlign(spec[0]) {
		return ' ', spec[0], spec[1:]
	}
	return ' ', 0, spec
}

func isAlign(c byte) bool {
	return c == '<' || c == '>' || c == '^'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func badFormat(format string, pos int, reason string) error {
	return &FormatError{Format: format, Pos: pos, Reason: reason}
}
