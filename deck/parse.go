package deck

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

//go:embed default.deck
var defaultDeck string

// MaxCount is the largest number of copies one deck-list line may ask for.
const MaxCount = 100

// Entry is one line of a deck list: `[<count> x] <name> <value>`.
type Entry struct {
	Pos   lexer.Position
	Count int    `( @Int "x" )?`
	Name  string `@( Ident | String )`
	Value int    `@Int`
}

type list struct {
	Entries []Entry `@@*`
}

type ListParser struct {
	parser *participle.Parser[list]
}

func NewListParser() *ListParser {
	parser := participle.MustBuild[list](
		participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
			{"Comment", `#[^\n]*`},
			{"String", `"(\\"|[^"])*"`},
			{"Int", `\d+`},
			{"Ident", `[a-zA-Z]\w*`},
			{"Whitespace", `\s+`},
		})),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
		participle.UseLookahead(2),
	)
	return &ListParser{parser}
}

// Parse reads a deck list. name is only used in error positions.
func (p *ListParser) Parse(name, txt string) ([]Entry, error) {
	l, err := p.parser.ParseString(name, txt)
	if err != nil {
		return nil, fmt.Errorf("parse deck list: %w", err)
	}
	for _, e := range l.Entries {
		if e.Count > MaxCount {
			return nil, fmt.Errorf("parse deck list: %s: %d copies of %q, at most %d allowed",
				e.Pos, e.Count, e.Name, MaxCount)
		}
	}
	return l.Entries, nil
}

var listParser = NewListParser()

func Parse(name, txt string) ([]Entry, error) {
	return listParser.Parse(name, txt)
}

// Load parses the deck list at path, or the built-in list when path is empty.
func Load(path string) ([]Entry, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck list: %w", err)
	}
	return Parse(path, string(data))
}

// Default returns the built-in deck list.
func Default() ([]Entry, error) {
	return Parse("default.deck", defaultDeck)
}
