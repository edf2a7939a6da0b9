package signature

import "strings"

// ExtractIdentifier derives the fully qualified identifier from a raw
// signature.
//
// The signature is truncated at the first parameter list, then
// tokenized with angle bracket awareness. If the truncated signature is a
// single token the declaration is a constructor or destructor and the
// token is the identifier. Otherwise the first token is the return type or
// declaration keyword and the identifier is the token after it.
//
// Operator overloads: a first token ending in the word "operator" marks a
// conversion operator ("operator bool" and friends); the identifier is
// that token as written, without the target type. Symbol operators such as
// "operator==" tokenize together with the operator keyword and come out
// whole.
//
// One leading '*' or '&' sigil is stripped from the result.
func ExtractIdentifier(raw string) string {
	s, _ := stripTemplate(raw)
	s = strings.TrimRight(truncateAtParams(s), " \t\n")

	token, rest := firstToken(s)

	// "enum class"/"enum struct" is one atomic keyword, not a keyword
	// followed by the declared name
	if token == "enum" {
		if second, after := firstToken(rest); second == "class" || second == "struct" {
			token, rest = token+" "+second, after
		}
	}

	if rest == "" {
		// Constructor or destructor: no return type, the token is the name
		return stripSigil(token)
	}

	if endsWithOperator(token) {
		return stripSigil(token)
	}

	id, _ := firstToken(rest)
	return stripSigil(id)
}

// truncateAtParams cuts the signature at the first '(' that is not nested
// inside a template argument list.
func truncateAtParams(s string) string {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		case '(':
			if depth == 0 {
				return s[:i]
			}
		}
	}
	return s
}

// endsWithOperator reports whether the token ends in the keyword
// "operator" (as a whole word, so "cooperator" does not match).
func endsWithOperator(token string) bool {
	const kw = "operator"
	if !strings.HasSuffix(token, kw) {
		return false
	}
	if len(token) == len(kw) {
		return true
	}
	return !isIdentChar(token[len(token)-len(kw)-1])
}

// stripSigil removes one leading pointer or reference sigil
func stripSigil(id string) string {
	if len(id) > 1 && (id[0] == '*' || id[0] == '&') {
		return id[1:]
	}
	return id
}
