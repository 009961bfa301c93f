package parser

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Parser parses game records into Game values.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
	cfg          *config.Config
}

// NewParser creates a new parser for the given reader. A nil cfg is silent.
func NewParser(r io.Reader, cfg *config.Config) *Parser {
	return &Parser{
		lexer: NewLexer(r, cfg),
		cfg:   cfg,
	}
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// ParseGame parses a single game from the input.
// Returns nil if no more games are available.
func (p *Parser) ParseGame() (*Game, error) {
	if p.currentToken == nil {
		p.nextToken()
	}

	game := NewGame()
	game.StartLine = p.currentToken.Line
	game.PrefixComments = p.parseOptCommentList()

	if err := p.parseOptTagList(game); err != nil {
		return nil, err
	}
	p.parseMoveList(game)

	if p.currentToken.Type == TerminatingResult {
		game.Result = p.currentToken.Text
		p.nextToken()
	}

	if p.currentToken.Type == EOFToken && len(game.Moves) == 0 && len(game.Tags) == 0 && game.Result == "" {
		return nil, nil
	}
	return game, nil
}

// ParseAll parses every game in the input.
func (p *Parser) ParseAll() ([]*Game, error) {
	var games []*Game
	for {
		game, err := p.ParseGame()
		if err != nil {
			return games, err
		}
		if game == nil {
			return games, nil
		}
		games = append(games, game)
	}
}

// parseOptTagList parses zero or more [Name "value"] pairs.
func (p *Parser) parseOptTagList(game *Game) error {
	for p.currentToken.Type == TagToken {
		name := p.currentToken.Text
		line := p.currentToken.Line
		p.nextToken()
		if p.currentToken.Type != StringToken {
			return &errors.ParseError{
				Err:      errors.ErrInvalidRecord,
				Field:    "tag " + name,
				Expected: "quoted value",
				Got:      p.currentToken.Type.String(),
			}
		}
		game.SetTag(name, p.currentToken.Text)
		p.cfg.Logf(2, "tag %s on line %d", name, line)
		p.nextToken()
		p.parseOptCommentList()
	}
	return nil
}

// parseMoveList parses move numbers, moves and comments up to a result,
// the next game's tags or the end of input.
func (p *Parser) parseMoveList(game *Game) {
	for {
		switch p.currentToken.Type {
		case MoveNumber:
			p.nextToken()
		case MoveToken:
			game.Moves = append(game.Moves, p.currentToken.Text)
			p.nextToken()
		case CommentToken:
			game.Comments = append(game.Comments, Comment{Ply: len(game.Moves), Text: p.currentToken.Text})
			p.nextToken()
		case StringToken:
			p.cfg.Logf(1, "Stray string on line %d.", p.currentToken.Line)
			p.nextToken()
		default:
			return
		}
	}
}

// parseOptCommentList collects consecutive comments.
func (p *Parser) parseOptCommentList() []string {
	var comments []string
	for p.currentToken.Type == CommentToken {
		comments = append(comments, p.currentToken.Text)
		p.nextToken()
	}
	return comments
}
