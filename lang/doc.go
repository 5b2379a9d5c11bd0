// Package lang implements the textual funding configuration language:
// a lexer, a recursive descent parser, and a model builder that together
// turn a source document into a validated-ready [model.Configuration].
//
// The pipeline is strictly linear and synchronous:
//
//	text → tokens → parse tree → entity graph
//
// Every stage is a pure function of its input. No stage retains state
// between invocations, so independent documents may be parsed fully in
// parallel without locking.
//
// # Grammar
//
// Informal EBNF (LL(1), no left recursion, no operator precedence):
//
//	Configuration → 'funding' STRING '{' ConfigEntry* '}'
//	ConfigEntry   → 'description' STRING
//	              | 'currency' CURRENCY
//	              | 'min_amount' NUMBER
//	              | 'max_amount' NUMBER
//	              | Beneficiaries | Sources | Tiers | Goals
//	Beneficiaries → 'beneficiaries' '{' Beneficiary* '}'
//	Beneficiary   → 'beneficiary' STRING '{' BeneficiaryProp* '}'
//	Sources       → 'sources' '{' Source* '}'
//	Source        → PLATFORM STRING '{' SourceProp* '}'
//	Tiers         → 'tiers' '{' Tier* '}'
//	Tier          → 'tier' STRING '{' TierProp* '}'
//	Goals         → 'goals' '{' Goal* '}'
//	Goal          → 'goal' STRING '{' GoalProp* '}'
//
// Element properties are 'keyword value' pairs. Amounts are compound
// values of the form 'NUMBER CURRENCY'. Benefits are bracketed,
// comma-separated string lists. Source config blocks hold ordered
// 'STRING STRING' pairs. The four container blocks are each optional and
// may appear at most once; their child elements repeat freely.
//
// Comments use '//' to end of line or '/* ... */' (possibly spanning
// lines) and are discarded by the lexer together with whitespace.
//
// # Example
//
//	funding "my-project" {
//	    description "Support my open source work"
//	    currency USD
//
//	    beneficiaries {
//	        beneficiary "Alice Dev" {
//	            email "alice@example.com"
//	            github "alice"
//	        }
//	    }
//
//	    sources {
//	        github_sponsors "alice" {
//	            type both
//	            active true
//	        }
//	    }
//
//	    tiers {
//	        tier "Supporter" {
//	            amount 5 USD
//	            benefits ["Sponsor badge", "Monthly newsletter"]
//	        }
//	    }
//
//	    goals {
//	        goal "Server costs" {
//	            target 1200 USD
//	            current 300 USD
//	        }
//	    }
//	}
//
// # Errors
//
// Failures are typed by pipeline stage, and each carries the position
// needed to locate the offending text:
//
//   - [LexError]: malformed token (unterminated string or comment,
//     unrecognized character)
//   - [ParseError]: token stream does not match the grammar; reports the
//     expected versus actual token
//   - [BuildError]: single-element malformation (missing required
//     property, wrong literal kind, unknown enumeration value)
//
// All three abort immediately; there is no error recovery or
// resynchronization, so only the first error in a document is reported.
// Semantic rules spanning multiple entities (name uniqueness, required
// active sources) are not errors at this layer; they are reported by
// [model.Validate] as data.
package lang
