package lang

// The parse tree mirrors the grammar's non-terminals. It is a concrete,
// short-lived structure: the model builder walks it once to produce the
// entity graph and then discards it. Nothing outside this package ever
// sees a node.

// ConfigurationNode is the root of the parse tree, produced from the
// top-level 'funding' block.
type ConfigurationNode struct {
	Name   Token           // STRING label of the funding block
	Props  []*PropertyNode // description, currency, min_amount, max_amount
	Blocks []*BlockNode    // container blocks in declaration order
	Pos    Position
}

// Block returns the container block with the given keyword, or nil.
func (n *ConfigurationNode) Block(keyword string) *BlockNode {
	for _, b := range n.Blocks {
		if b.Keyword.Text == keyword {
			return b
		}
	}

	return nil
}

// BlockNode is one of the four singular container blocks: beneficiaries,
// sources, tiers, or goals.
type BlockNode struct {
	Keyword  Token
	Elements []*ElementNode
	Pos      Position
}

// ElementNode is one repeatable child of a container block: a
// beneficiary, a source (keyed by its platform keyword), a tier, or a
// goal. Every element has the form: keyword STRING '{' property* '}'.
type ElementNode struct {
	Keyword Token // "beneficiary", a platform keyword, "tier", or "goal"
	Name    Token // STRING label
	Props   []*PropertyNode
	Pos     Position
}

// Describe names the element for error messages, e.g. `tier "Gold"`.
func (n *ElementNode) Describe() string {
	return n.Keyword.Text + " " + `"` + n.Name.Text + `"`
}

// PropertyNode is a 'keyword value' pair within a block or element.
type PropertyNode struct {
	Keyword Token
	Value   *ValueNode
	Pos     Position
}

// ValueKind discriminates the shapes a property value can take.
type ValueKind int

const (
	// ValueString is a string literal.
	ValueString ValueKind = iota

	// ValueNumber is a numeric literal.
	ValueNumber

	// ValueBool is a boolean literal.
	ValueBool

	// ValueEnum is a bare keyword resolved against a closed vocabulary by
	// the builder (currency codes, funding types).
	ValueEnum

	// ValueAmount is the compound 'NUMBER CURRENCY' form.
	ValueAmount

	// ValueList is a bracketed, comma-separated list of string literals.
	ValueList

	// ValueMap is a braced block of ordered 'STRING STRING' pairs.
	ValueMap
)

// ValueNode is a property value. Exactly the fields implied by Kind are
// populated.
type ValueNode struct {
	Kind  ValueKind
	Token Token       // scalar literal or enum keyword
	Unit  Token       // currency keyword of a ValueAmount
	List  []Token     // string tokens of a ValueList
	Pairs []*PairNode // entries of a ValueMap
	Pos   Position
}

// PairNode is one ordered key/value entry of a source config block.
type PairNode struct {
	Key   Token
	Value Token
}
