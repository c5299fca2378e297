// ABOUTME: Conservative escape sequence recognition, stripping, and extraction
// ABOUTME: Handles CSI, OSC, string sequences and short ESC forms; malformed input stays literal

package width

import "strings"

const esc = '\x1b'

// StripSequences removes every well-formed terminal control sequence from s.
// Malformed or unterminated sequences are kept as literal characters, so a
// broken sequence overcounts width instead of eating text. The scan is a
// single pass: an ESC directly followed by another ESC is emitted as is, and
// emitted text is never rescanned.
func StripSequences(s string) string {
	if !containsESC(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == esc {
			if end, ok := sequenceEnd(s, i); ok {
				i = end
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// ExtractSequences returns the recognised escape sequences in s, in order.
func ExtractSequences(s string) []string {
	if !containsESC(s) {
		return nil
	}
	var seqs []string
	i := 0
	for i < len(s) {
		if s[i] == esc {
			if end, ok := sequenceEnd(s, i); ok {
				seqs = append(seqs, s[i:end])
				i = end
				continue
			}
		}
		i++
	}
	return seqs
}

// containsESC is a fast check for the presence of ESC (0x1B).
func containsESC(s string) bool {
	return strings.IndexByte(s, esc) >= 0
}

// sequenceEnd reports the index just past the escape sequence starting at
// s[i], and whether a complete sequence was recognised there.
func sequenceEnd(s string, i int) (int, bool) {
	if i+1 >= len(s) || s[i] != esc {
		return i, false
	}
	b := s[i+1]
	switch {
	case b == '[':
		// CSI: parameters 0x30-0x3F, intermediates 0x20-0x2F, final 0x40-0x7E.
		j := i + 2
		for j < len(s) && s[j] >= 0x30 && s[j] <= 0x3F {
			j++
		}
		for j < len(s) && s[j] >= 0x20 && s[j] <= 0x2F {
			j++
		}
		if j < len(s) && s[j] >= 0x40 && s[j] <= 0x7E {
			return j + 1, true
		}
		return i, false
	case b == ']':
		// OSC: terminated by BEL or ST.
		for j := i + 2; j < len(s); j++ {
			switch s[j] {
			case '\x07':
				return j + 1, true
			case esc:
				if j+1 < len(s) && s[j+1] == '\\' {
					return j + 2, true
				}
				return i, false
			}
		}
		return i, false
	case b == 'P' || b == 'X' || b == '^' || b == '_':
		// DCS, SOS, PM, APC: terminated by ST.
		for j := i + 2; j < len(s); j++ {
			if s[j] == esc {
				if j+1 < len(s) && s[j+1] == '\\' {
					return j + 2, true
				}
				return i, false
			}
		}
		return i, false
	case b >= 0x20 && b <= 0x2F:
		// nF: charset designation and friends, e.g. ESC ( B.
		j := i + 1
		for j < len(s) && s[j] >= 0x20 && s[j] <= 0x2F {
			j++
		}
		if j < len(s) && s[j] >= 0x30 && s[j] <= 0x7E {
			return j + 1, true
		}
		return i, false
	case b >= 0x30 && b <= 0x7E:
		// Two-byte Fp, Fe and Fs forms (ESC 7, ESC M, ESC c).
		return i + 2, true
	}
	return i, false
}
