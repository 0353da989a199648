package tagsoup

import "unicode"

// effect is a set of actions the tokenizer performs for one character.
// Effects are applied in declaration order.
type effect uint32

const (
	fxSlashName        effect = 1 << iota // name += "/"
	fxDashName                            // name += "-"
	fxName                                // name += c
	fxFlushDashes                         // value += all pending dashes
	fxFlushExtraDashes                    // value += pending dashes less the two closing ones
	fxLtValue                             // value += "<"
	fxValue                               // value += c
	fxCommitAttr                          // append the pending attribute
	fxNewAttr                             // start a new attribute at c
	fxQuote                               // c opens a quoted value
	fxSlashAttrValue                      // attribute value += "/"
	fxAttrName                            // attribute name += c
	fxAttrValue                           // attribute value += c
	fxCountDash                           // one more pending dash
	fxEnd                                 // the node is complete
	fxReturn                              // the node type is known
)

var stateNames = [...]string{
	stBetweenNodes:          "BetweenNodes",
	stBeginTag:              "BeginTag",
	stBang:                  "Bang",
	stBangDash:              "BangDash",
	stText:                  "Text",
	stTag:                   "Tag",
	stTagSlash:              "TagSlash",
	stEndTag:                "EndTag",
	stBetweenAttributes:     "BetweenAttributes",
	stAttributeName:         "AttributeName",
	stAttributeBeforeEquals: "AttributeBeforeEquals",
	stAttributeAfterEquals:  "AttributeAfterEquals",
	stAttributeValue:        "AttributeValue",
	stAttributeValueSlash:   "AttributeValueSlash",
	stQuotedAttributeValue:  "QuotedAttributeValue",
	stCommentStart:          "CommentStart",
	stComment:               "Comment",
	stCommentDash:           "CommentDash",
	stCommentDashes:         "CommentDashes",
	stIdentifier:            "Identifier",
}

func (s parseState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

func isSpace(c rune) bool {
	return unicode.IsSpace(c)
}

// step computes what to do with c in state st. quote is the character
// that opened the current quoted attribute value.
//
// Text is not terminated here: the tokenizer peeks for '<' before it
// consumes the next character of a text node.
func step(st parseState, c rune, quote rune) transition {
	ws := isSpace(c)
	switch st {
	case stBetweenNodes:
		if c == '<' {
			return transition{next: stBeginTag}
		}
		return transition{next: stText, start: TextNode, fx: fxValue | fxReturn}
	case stBeginTag:
		switch {
		case c == '!':
			return transition{next: stBang}
		case c == '/':
			return transition{next: stEndTag, start: EndElementNode}
		case unicode.IsLetter(c):
			return transition{next: stTag, start: ElementNode, fx: fxName}
		}
		return transition{next: stText, start: TextNode, fx: fxLtValue | fxValue | fxReturn}
	case stBang:
		switch {
		case c == '-':
			return transition{next: stBangDash}
		case c == '>':
			return transition{next: stBetweenNodes, start: IdentifierNode, fx: fxEnd}
		case ws:
			return transition{next: stBetweenAttributes, start: IdentifierNode, fx: fxReturn}
		}
		return transition{next: stIdentifier, start: IdentifierNode, fx: fxName}
	case stBangDash:
		switch {
		case c == '-':
			return transition{next: stCommentStart, start: CommentNode, fx: fxReturn}
		case c == '>':
			return transition{next: stBetweenNodes, start: IdentifierNode, fx: fxDashName | fxEnd}
		case ws:
			return transition{next: stBetweenAttributes, start: IdentifierNode, fx: fxDashName | fxReturn}
		}
		return transition{next: stIdentifier, start: IdentifierNode, fx: fxDashName | fxName}
	case stTag:
		switch {
		case c == '>':
			return transition{next: stBetweenNodes, fx: fxEnd}
		case ws:
			return transition{next: stBetweenAttributes, fx: fxReturn}
		case c == '/':
			return transition{next: stTagSlash}
		}
		return transition{next: stTag, fx: fxName}
	case stTagSlash:
		switch {
		case c == '>':
			return transition{next: stBetweenNodes, fx: fxEnd}
		case ws:
			return transition{next: stBetweenAttributes, fx: fxReturn}
		case c == '/':
			return transition{next: stTagSlash, fx: fxSlashName}
		}
		return transition{next: stTag, fx: fxSlashName | fxName}
	case stEndTag:
		switch {
		case c == '>':
			return transition{next: stBetweenNodes, fx: fxEnd}
		case ws:
			return transition{next: stBetweenAttributes, fx: fxReturn}
		}
		return transition{next: stEndTag, fx: fxName}
	case stIdentifier:
		switch {
		case c == '>':
			return transition{next: stBetweenNodes, fx: fxEnd}
		case ws:
			return transition{next: stBetweenAttributes, fx: fxReturn}
		}
		return transition{next: stIdentifier, fx: fxName}
	case stBetweenAttributes:
		switch {
		case ws, c == '/':
			return transition{next: stBetweenAttributes}
		case c == '>':
			return transition{next: stBetweenNodes, fx: fxEnd}
		}
		return transition{next: stAttributeName, fx: fxNewAttr | fxAttrName}
	case stAttributeName:
		switch {
		case ws:
			return transition{next: stAttributeBeforeEquals}
		case c == '=':
			return transition{next: stAttributeAfterEquals}
		case c == '>':
			return transition{next: stBetweenNodes, fx: fxCommitAttr | fxEnd}
		case c == '/':
			return transition{next: stBetweenAttributes, fx: fxCommitAttr}
		}
		return transition{next: stAttributeName, fx: fxAttrName}
	case stAttributeBeforeEquals:
		switch {
		case ws:
			return transition{next: stAttributeBeforeEquals}
		case c == '=':
			return transition{next: stAttributeAfterEquals}
		case c == '>':
			return transition{next: stBetweenNodes, fx: fxCommitAttr | fxEnd}
		case c == '/':
			return transition{next: stBetweenAttributes, fx: fxCommitAttr}
		}
		return transition{next: stAttributeName, fx: fxCommitAttr | fxNewAttr | fxAttrName}
	case stAttributeAfterEquals:
		switch {
		case ws:
			return transition{next: stAttributeAfterEquals}
		case c == '>':
			return transition{next: stBetweenNodes, fx: fxCommitAttr | fxEnd}
		case c == '"', c == '\'':
			return transition{next: stQuotedAttributeValue, fx: fxQuote}
		}
		return transition{next: stAttributeValue, fx: fxAttrValue}
	case stAttributeValue:
		switch {
		case ws:
			return transition{next: stBetweenAttributes, fx: fxCommitAttr}
		case c == '>':
			return transition{next: stBetweenNodes, fx: fxCommitAttr | fxEnd}
		case c == '/':
			return transition{next: stAttributeValueSlash}
		}
		return transition{next: stAttributeValue, fx: fxAttrValue}
	case stAttributeValueSlash:
		switch {
		case ws:
			return transition{next: stBetweenAttributes, fx: fxSlashAttrValue | fxCommitAttr}
		case c == '>':
			return transition{next: stBetweenNodes, fx: fxCommitAttr | fxEnd}
		case c == '/':
			return transition{next: stAttributeValueSlash, fx: fxSlashAttrValue}
		}
		return transition{next: stAttributeValue, fx: fxSlashAttrValue | fxAttrValue}
	case stQuotedAttributeValue:
		if c == quote {
			return transition{next: stBetweenAttributes, fx: fxCommitAttr}
		}
		return transition{next: stQuotedAttributeValue, fx: fxAttrValue}
	case stCommentStart:
		if c == '>' {
			return transition{next: stBetweenNodes, fx: fxEnd}
		}
		return step(stComment, c, quote)
	case stComment:
		if c == '-' {
			return transition{next: stCommentDash, fx: fxCountDash}
		}
		return transition{next: stComment, fx: fxValue}
	case stCommentDash:
		if c == '-' {
			return transition{next: stCommentDashes, fx: fxCountDash}
		}
		return transition{next: stComment, fx: fxFlushDashes | fxValue}
	case stCommentDashes:
		switch c {
		case '-':
			return transition{next: stCommentDashes, fx: fxCountDash}
		case '>':
			return transition{next: stBetweenNodes, fx: fxFlushExtraDashes | fxEnd}
		}
		return transition{next: stComment, fx: fxFlushDashes | fxValue}
	}
	// stText
	return transition{next: stText, fx: fxValue}
}
