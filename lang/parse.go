package lang

// Parser consumes the token stream per the fixed LL(1) grammar in the
// package documentation and produces a parse tree. It fails fast on the
// first structural mismatch: there is no error recovery mode, so a
// document reports at most one ParseError per invocation.

// Property shape tables, one per grammar context. The parser checks only
// the shape of each value; resolving enum keywords against their
// vocabularies is the builder's job.
//
//nolint:gochecknoglobals
var (
	configProps = map[string]ValueKind{
		"description": ValueString,
		"currency":    ValueEnum,
		"min_amount":  ValueNumber,
		"max_amount":  ValueNumber,
	}

	beneficiaryProps = map[string]ValueKind{
		"email":       ValueString,
		"github":      ValueString,
		"website":     ValueString,
		"description": ValueString,
	}

	sourceProps = map[string]ValueKind{
		"type":   ValueEnum,
		"active": ValueBool,
		"url":    ValueString,
		"config": ValueMap,
	}

	tierProps = map[string]ValueKind{
		"amount":       ValueAmount,
		"description":  ValueString,
		"max_sponsors": ValueNumber,
		"benefits":     ValueList,
	}

	goalProps = map[string]ValueKind{
		"target":      ValueAmount,
		"current":     ValueAmount,
		"deadline":    ValueString,
		"description": ValueString,
	}
)

// container describes one of the four singular container blocks.
type container struct {
	element string               // fixed element keyword, or "" for platform keywords
	props   map[string]ValueKind // property shapes of one element
	label   string               // for error messages
}

//nolint:gochecknoglobals
var containers = map[string]container{
	"beneficiaries": {
		element: "beneficiary",
		props:   beneficiaryProps,
		label:   "beneficiary property",
	},
	"sources": {
		element: "", // any platform keyword
		props:   sourceProps,
		label:   "source property",
	},
	"tiers": {
		element: "tier",
		props:   tierProps,
		label:   "tier property",
	},
	"goals": {
		element: "goal",
		props:   goalProps,
		label:   "goal property",
	},
}

// parser holds the token cursor.
type parser struct {
	tokens []Token
	index  int
}

// Parse consumes the token stream and returns the parse tree.
func Parse(tokens []Token) (*ConfigurationNode, error) {
	p := &parser{tokens: tokens}

	node, err := p.parseConfiguration()
	if err != nil {
		return nil, err
	}

	if tok := p.cur(); tok.Kind != KindEOF {
		return nil, p.fail("end of input", tok)
	}

	return node, nil
}

// parseConfiguration parses: 'funding' STRING '{' ConfigEntry* '}'.
func (p *parser) parseConfiguration() (*ConfigurationNode, error) {
	pos := p.cur().Pos

	if err := p.expectKeyword("funding"); err != nil {
		return nil, err
	}

	name, err := p.expect(KindString, "configuration name string")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(KindLBrace, `"{"`); err != nil {
		return nil, err
	}

	node := &ConfigurationNode{Name: name, Pos: pos}

	for {
		tok := p.cur()

		if tok.Kind == KindRBrace {
			p.next()

			return node, nil
		}

		if tok.Kind != KindKeyword {
			return nil, p.fail("configuration property or block", tok)
		}

		if _, ok := containers[tok.Text]; ok {
			if node.Block(tok.Text) != nil {
				return nil, p.fail(`at most one "`+tok.Text+`" block`, tok)
			}

			block, err := p.parseBlock()
			if err != nil {
				return nil, err
			}

			node.Blocks = append(node.Blocks, block)

			continue
		}

		if _, ok := configProps[tok.Text]; ok {
			prop, err := p.parseProperty(configProps)
			if err != nil {
				return nil, err
			}

			node.Props = append(node.Props, prop)

			continue
		}

		return nil, p.fail("configuration property or block", tok)
	}
}

// parseBlock parses: keyword '{' Element* '}'. The current token is the
// container keyword, already verified by the caller.
func (p *parser) parseBlock() (*BlockNode, error) {
	keyword := p.next()
	spec := containers[keyword.Text]

	block := &BlockNode{Keyword: keyword, Pos: keyword.Pos}

	if _, err := p.expect(KindLBrace, `"{"`); err != nil {
		return nil, err
	}

	for {
		tok := p.cur()

		if tok.Kind == KindRBrace {
			p.next()

			return block, nil
		}

		elem, err := p.parseElement(spec)
		if err != nil {
			return nil, err
		}

		block.Elements = append(block.Elements, elem)
	}
}

// parseElement parses: keyword STRING '{' Property* '}'.
func (p *parser) parseElement(spec container) (*ElementNode, error) {
	tok := p.cur()

	if tok.Kind != KindKeyword {
		return nil, p.fail(p.elementExpectation(spec), tok)
	}

	// Beneficiaries, tiers, and goals use one fixed element keyword.
	// Sources accept any keyword here; the builder resolves it against
	// the platform vocabulary so typos get suggestions instead of a bare
	// grammar mismatch.
	if spec.element != "" && tok.Text != spec.element {
		return nil, p.fail(p.elementExpectation(spec), tok)
	}

	keyword := p.next()

	name, err := p.expect(KindString, "element name string")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(KindLBrace, `"{"`); err != nil {
		return nil, err
	}

	elem := &ElementNode{Keyword: keyword, Name: name, Pos: keyword.Pos}

	for {
		tok := p.cur()

		if tok.Kind == KindRBrace {
			p.next()

			return elem, nil
		}

		if tok.Kind != KindKeyword {
			return nil, p.fail(spec.label, tok)
		}

		if _, ok := spec.props[tok.Text]; !ok {
			return nil, p.fail(spec.label, tok)
		}

		prop, err := p.parseProperty(spec.props)
		if err != nil {
			return nil, err
		}

		elem.Props = append(elem.Props, prop)
	}
}

func (p *parser) elementExpectation(spec container) string {
	if spec.element != "" {
		return `"` + spec.element + `" element`
	}

	return "platform keyword"
}

// parseProperty parses: keyword value, where the value shape is
// determined by the keyword's entry in the shape table. The current
// token is a keyword known to be in the table.
func (p *parser) parseProperty(props map[string]ValueKind) (*PropertyNode, error) {
	keyword := p.next()

	value, err := p.parseValue(props[keyword.Text])
	if err != nil {
		return nil, err
	}

	return &PropertyNode{Keyword: keyword, Value: value, Pos: keyword.Pos}, nil
}

func (p *parser) parseValue(shape ValueKind) (*ValueNode, error) {
	pos := p.cur().Pos

	switch shape {
	case ValueString:
		tok, err := p.expect(KindString, "string literal")
		if err != nil {
			return nil, err
		}

		return &ValueNode{Kind: ValueString, Token: tok, Pos: pos}, nil

	case ValueNumber:
		tok, err := p.expect(KindNumber, "number literal")
		if err != nil {
			return nil, err
		}

		return &ValueNode{Kind: ValueNumber, Token: tok, Pos: pos}, nil

	case ValueBool:
		tok, err := p.expect(KindBool, "boolean literal")
		if err != nil {
			return nil, err
		}

		return &ValueNode{Kind: ValueBool, Token: tok, Pos: pos}, nil

	case ValueEnum:
		tok, err := p.expect(KindKeyword, "enumeration keyword")
		if err != nil {
			return nil, err
		}

		return &ValueNode{Kind: ValueEnum, Token: tok, Pos: pos}, nil

	case ValueAmount:
		return p.parseAmount(pos)

	case ValueList:
		return p.parseList(pos)

	case ValueMap:
		return p.parseMap(pos)

	default:
		return nil, p.fail("value", p.cur())
	}
}

// parseAmount parses the compound form: NUMBER CURRENCY.
func (p *parser) parseAmount(pos Position) (*ValueNode, error) {
	num, err := p.expect(KindNumber, "amount number")
	if err != nil {
		return nil, err
	}

	unit, err := p.expect(KindKeyword, "currency code")
	if err != nil {
		return nil, err
	}

	return &ValueNode{Kind: ValueAmount, Token: num, Unit: unit, Pos: pos}, nil
}

// parseList parses: '[' (STRING (',' STRING)*)? ']'.
func (p *parser) parseList(pos Position) (*ValueNode, error) {
	if _, err := p.expect(KindLBracket, `"["`); err != nil {
		return nil, err
	}

	node := &ValueNode{Kind: ValueList, Pos: pos}

	if p.cur().Kind == KindRBracket {
		p.next()

		return node, nil
	}

	for {
		tok, err := p.expect(KindString, "string literal")
		if err != nil {
			return nil, err
		}

		node.List = append(node.List, tok)

		switch p.cur().Kind {
		case KindComma:
			p.next()

		case KindRBracket:
			p.next()

			return node, nil

		default:
			return nil, p.fail(`"," or "]"`, p.cur())
		}
	}
}

// parseMap parses: '{' (STRING STRING)* '}'.
func (p *parser) parseMap(pos Position) (*ValueNode, error) {
	if _, err := p.expect(KindLBrace, `"{"`); err != nil {
		return nil, err
	}

	node := &ValueNode{Kind: ValueMap, Pos: pos}

	for {
		tok := p.cur()

		if tok.Kind == KindRBrace {
			p.next()

			return node, nil
		}

		key, err := p.expect(KindString, "config key string")
		if err != nil {
			return nil, err
		}

		value, err := p.expect(KindString, "config value string")
		if err != nil {
			return nil, err
		}

		node.Pairs = append(node.Pairs, &PairNode{Key: key, Value: value})
	}
}

// Cursor helpers

func (p *parser) cur() Token {
	if p.index >= len(p.tokens) {
		// Lex always terminates the stream with EOF; this is a guard for
		// hand-constructed token slices.
		return Token{Kind: KindEOF}
	}

	return p.tokens[p.index]
}

func (p *parser) next() Token {
	tok := p.cur()

	if p.index < len(p.tokens) {
		p.index++
	}

	return tok
}

func (p *parser) expect(kind Kind, expected string) (Token, error) {
	tok := p.cur()

	if tok.Kind != kind {
		return Token{}, p.fail(expected, tok)
	}

	return p.next(), nil
}

func (p *parser) expectKeyword(word string) error {
	tok := p.cur()

	if tok.Kind != KindKeyword || tok.Text != word {
		return p.fail(`"`+word+`"`, tok)
	}

	p.next()

	return nil
}

func (p *parser) fail(expected string, actual Token) error {
	return &ParseError{
		Expected: expected,
		Actual:   actual,
		Pos:      actual.Pos,
	}
}
