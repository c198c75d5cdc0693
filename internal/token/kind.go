package token

// Kind represents the category of a filter token.
type Kind uint8

const (
	// Invalid marks text skipped by a resilient consumer after a lexical error.
	// The lexer itself never produces it.
	Invalid Kind = iota
	// EOF marks the end of the input.
	EOF

	// Operator is a comparison operator: == != <> >= <= < >.
	Operator
	// And is the group operator &&.
	And
	// Or is the group operator ||.
	Or
	// GroupOpen is '('.
	GroupOpen
	// GroupClose is ')'.
	GroupClose
	// Number is a decimal literal with optional fraction and exponent.
	Number
	// String is a double-quoted literal.
	String
	// Column is a bracketed column reference.
	Column
	// Ident is a bare identifier.
	Ident
	// Whitespace is a run of space, tab, CR or LF.
	Whitespace

	kindCount
)

// Channel separates tokens a parser consumes from those it skips.
type Channel uint8

const (
	// ChannelDefault carries grammar-relevant tokens.
	ChannelDefault Channel = iota
	// ChannelHidden carries tokens kept only for positions and round trips.
	ChannelHidden
)

// имена совпадают со словарём исходной грамматики
var kindNames = [kindCount]string{
	Invalid:    "INVALID",
	EOF:        "EOF",
	Operator:   "OPERATOR",
	And:        "GROUP_OPERATOR_AND",
	Or:         "GROUP_OPERATOR_OR",
	GroupOpen:  "GROUP_OPEN",
	GroupClose: "GROUP_CLOSE",
	Number:     "NUMBER",
	String:     "STRING",
	Column:     "COLUMN",
	Ident:      "IDENTIFIER",
	Whitespace: "WHITESPACE",
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// LookupKind maps a grammar name such as "GROUP_OPEN" back to its Kind.
func LookupKind(name string) (Kind, bool) {
	k, ok := kindByName[name]
	return k, ok
}

// IsEOF reports whether the kind terminates the stream.
func (k Kind) IsEOF() bool { return k == EOF }

// Channel returns the channel the kind is emitted on.
func (k Kind) Channel() Channel {
	if k == Whitespace {
		return ChannelHidden
	}
	return ChannelDefault
}
