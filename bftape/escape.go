package bftape

const hexDigits = "0123456789abcdef"

// appendEscaped renders b as printable ASCII: common control bytes and quoting
// characters get a backslash form, other non-printables become \xNN.
func appendEscaped(dst []byte, b byte) []byte {
	switch b {
	case '\t':
		return append(dst, '\\', 't')
	case '\r':
		return append(dst, '\\', 'r')
	case '\n':
		return append(dst, '\\', 'n')
	case '\\', '\'', '"':
		return append(dst, '\\', b)
	}
	if b >= 0x20 && b <= 0x7e {
		return append(dst, b)
	}
	return append(dst, '\\', 'x', hexDigits[b>>4], hexDigits[b&0xf])
}

func Escape(bs []byte) string {
	var ret []byte
	for _, b := range bs {
		ret = appendEscaped(ret, b)
	}
	return string(ret)
}
