package dataTree

import (
	"strings"
	"unicode/utf8"
)

const hex = "0123456789abcdef"

// DefaultTabWidth is the indentation Pretty uses.
var DefaultTabWidth = 2

// EncodeToByte is slow because it allocates new byte buffer on every call
// use Encode to reuse already created buffer and gain more performance
func (n *Node) EncodeToByte() []byte {
	return n.Encode([]byte{})
}

// EncodeToString is slow because it allocates new string on every call
// use Encode to reuse already created buffer and gain more performance
func (n *Node) EncodeToString() string {
	return string(n.Encode([]byte{}))
}

/*
Encode renders the subtree as compact text into out, reusing its memory,
so allocations may occur only if out isn't long enough.
Object keys come sorted, which makes the output stable:
	{"a":[1,2.5,"x"],"b":{"c":null}}
It's a display format for debugging and logs, there is no way to read it back.
*/
func (n *Node) Encode(out []byte) []byte {
	return n.encode(out[:0])
}

func (n *Node) encode(out []byte) []byte {
	switch n.tag {
	case TagArray:
		out = append(out, '[')
		for i, child := range n.array.All() {
			if i > 0 {
				out = append(out, ',')
			}
			out = child.encode(out)
		}
		return append(out, ']')
	case TagValue:
		return n.value.appendTo(out)
	default:
		out = append(out, '{')
		first := true
		for key, child := range n.object.Sorted() {
			if !first {
				out = append(out, ',')
			}
			first = false
			out = appendQuoted(out, key)
			out = append(out, ':')
			out = child.encode(out)
		}
		return append(out, '}')
	}
}

func (n *Node) String() string {
	return n.EncodeToString()
}

// Pretty is Encode followed by Prettify with DefaultTabWidth.
func (n *Node) Pretty() string {
	return Prettify(n.EncodeToString(), DefaultTabWidth)
}

/*
Prettify indents compact text: a line break follows every '{', '[' and ',',
and precedes every '}' and ']'. It doesn't parse anything, so brackets and commas
inside strings are indented too and empty containers come out as
	{

	}
A negative tabWidth is treated as zero.
*/
func Prettify(json string, tabWidth int) string {
	if tabWidth < 0 {
		tabWidth = 0
	}

	b := strings.Builder{}
	b.Grow(len(json) * 2)
	indent := 0
	newLine := func() {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", indent*tabWidth))
	}

	for i := 0; i < len(json); i++ {
		c := json[i]
		switch c {
		case '{', '[':
			indent++
			b.WriteByte(c)
			newLine()
		case '}', ']':
			if indent > 0 {
				indent--
			}
			newLine()
			b.WriteByte(c)
		case ',':
			b.WriteByte(c)
			newLine()
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// escapes maps every ASCII byte that can't appear inside quotes as is to its escape sequence.
var escapes = func() (t [utf8.RuneSelf]string) {
	for c := 0; c < 0x20; c++ {
		t[c] = "\\u00" + hex[c>>4:c>>4+1] + hex[c&0xf:c&0xf+1]
	}
	t['\n'] = `\n`
	t['\r'] = `\r`
	t['\t'] = `\t`
	t['"'] = `\"`
	t['\\'] = `\\`
	return t
}()

// appendQuoted appends s as a quoted string. Invalid UTF-8 turns into \ufffd,
// line and paragraph separators are escaped, everything else non-ASCII is kept.
func appendQuoted(out []byte, s string) []byte {
	out = append(out, '"')
	done := 0
	for i := 0; i < len(s); {
		seq, width := "", 1
		if c := s[i]; c < utf8.RuneSelf {
			seq = escapes[c]
		} else {
			var r rune
			r, width = utf8.DecodeRuneInString(s[i:])
			switch {
			case r == utf8.RuneError && width == 1:
				seq = `\ufffd`
			case r == '\u2028':
				seq = `\u2028`
			case r == '\u2029':
				seq = `\u2029`
			}
		}

		if seq != "" {
			out = append(out, s[done:i]...)
			out = append(out, seq...)
			done = i + width
		}
		i += width
	}
	out = append(out, s[done:]...)

	return append(out, '"')
}
