package logging

// IssuerName resolves the display name of an issuer.
// A nil issuer, or one whose Tag panics, resolves to the empty name.
func IssuerName(issuer Loggable) (name string) {
	switch v := issuer.(type) {
	case nil:
		return ""
	case Name:
		return string(v)
	default:
		defer func() {
			if recover() != nil {
				name = ""
			}
		}()
		return v.Tag()
	}
}

// Format renders the line handed to every sink: "[" + name + "] " + msg.
// No line ending is added.
func Format(issuer Loggable, msg string) string {
	name := IssuerName(issuer)

	buf := make([]byte, 0, len(name)+len(msg)+3)
	buf = append(buf, '[')
	buf = append(buf, name...)
	buf = append(buf, "] "...)
	buf = append(buf, msg...)
	return string(buf)
}
