package lang

import (
	"errors"
	"testing"
)

func TestLex_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Kind // excluding trailing EOF
	}{
		{
			name:  "punctuation",
			input: "{ } [ ] ,",
			want:  []Kind{KindLBrace, KindRBrace, KindLBracket, KindRBracket, KindComma},
		},
		{
			name:  "string literal",
			input: `"hello world"`,
			want:  []Kind{KindString},
		},
		{
			name:  "integer and decimal",
			input: "42 3.14",
			want:  []Kind{KindNumber, KindNumber},
		},
		{
			name:  "negative number",
			input: "-5.0",
			want:  []Kind{KindNumber},
		},
		{
			name:  "booleans",
			input: "true false",
			want:  []Kind{KindBool, KindBool},
		},
		{
			name:  "structural keywords",
			input: "funding tier goal beneficiary",
			want:  []Kind{KindKeyword, KindKeyword, KindKeyword, KindKeyword},
		},
		{
			name:  "platform keywords",
			input: "github_sponsors open_collective custom",
			want:  []Kind{KindKeyword, KindKeyword, KindKeyword},
		},
		{
			name:  "currency and funding type keywords",
			input: "USD EUR one_time recurring both",
			want:  []Kind{KindKeyword, KindKeyword, KindKeyword, KindKeyword, KindKeyword},
		},
		{
			name:  "empty input",
			input: "",
			want:  []Kind{},
		},
		{
			name:  "comments are discarded",
			input: "// line comment\nfunding /* block */ tier",
			want:  []Kind{KindKeyword, KindKeyword},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			if err != nil {
				t.Fatalf("lex error: %v", err)
			}

			if tokens[len(tokens)-1].Kind != KindEOF {
				t.Fatalf("stream does not end with EOF: %v", tokens[len(tokens)-1])
			}

			got := tokens[:len(tokens)-1]
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d tokens, got %d: %v", len(tt.want), len(got), got)
			}

			for i, tok := range got {
				if tok.Kind != tt.want[i] {
					t.Errorf("token %d: expected %v, got %v", i, tt.want[i], tok.Kind)
				}
			}
		})
	}
}

func TestLex_StringText(t *testing.T) {
	tokens, err := Lex(`"My Project"`)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}

	if tokens[0].Text != "My Project" {
		t.Errorf("expected unquoted text, got %q", tokens[0].Text)
	}
}

func TestLex_Positions(t *testing.T) {
	tokens, err := Lex("funding\n  tier")
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}

	first := tokens[0]
	if first.Pos.Line != 1 || first.Pos.Column != 1 {
		t.Errorf("first token at %v, expected 1:1", first.Pos)
	}

	second := tokens[1]
	if second.Pos.Line != 2 || second.Pos.Column != 3 {
		t.Errorf("second token at %v, expected 2:3", second.Pos)
	}
}

func TestLex_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		line  int
	}{
		{
			name:  "unterminated string at newline",
			input: "funding \"oops\ntier",
			want:  ErrUnterminatedString,
			line:  1,
		},
		{
			name:  "unterminated string at eof",
			input: `"oops`,
			want:  ErrUnterminatedString,
			line:  1,
		},
		{
			name:  "unterminated block comment",
			input: "funding /* never closed",
			want:  ErrUnterminatedComment,
			line:  1,
		},
		{
			name:  "unexpected character",
			input: "funding @",
			want:  ErrUnexpectedRune,
			line:  1,
		},
		{
			name:  "unknown bare word",
			input: "funding\nnonsense",
			want:  ErrUnknownWord,
			line:  2,
		},
		{
			name:  "dangling minus",
			input: "- tier",
			want:  ErrUnexpectedRune,
			line:  1,
		},
		{
			name:  "number with trailing dot",
			input: "5.",
			want:  ErrUnexpectedRune,
			line:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Lex(tt.input)
			if err == nil {
				t.Fatal("expected lex error, got none")
			}

			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}

			le := &LexError{}
			if !errors.As(err, &le) {
				t.Fatalf("expected *LexError, got %T", err)
			}

			if le.Pos.Line != tt.line {
				t.Errorf("expected error at line %d, got %d", tt.line, le.Pos.Line)
			}
		})
	}
}

func TestLex_UnknownWordCarriesText(t *testing.T) {
	_, err := Lex("bogus_word")

	le := &LexError{}
	if !errors.As(err, &le) {
		t.Fatalf("expected *LexError, got %T", err)
	}

	if le.Word != "bogus_word" {
		t.Errorf("expected offending word %q, got %q", "bogus_word", le.Word)
	}
}

func TestLex_CommentsDoNotNestButTerminate(t *testing.T) {
	tokens, err := Lex("/* outer /* still inside */ funding")
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}

	if len(tokens) != 2 || tokens[0].Text != "funding" {
		t.Errorf("block comment should end at first */, got %v", tokens)
	}
}
