// Package almanac reads the puzzle's plain-text almanac format into the
// format-agnostic config.Model:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// The first section lists the seeds; every following blank-line separated
// section is a "<name> map:" header followed by "destination source length"
// triples.
package almanac

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vk/almanacgo/internal/config"
	"github.com/vk/almanacgo/internal/ctxlog"
	"github.com/vk/almanacgo/internal/rangemap"
)

const (
	seedsPrefix  = "seeds:"
	headerSuffix = " map:"
	maxLineBytes = 1 << 20
)

// ParseError reports malformed almanac text. Line is 1-based; 0 means the
// problem is with the input as a whole.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Line == 0 {
		return msg
	}
	return fmt.Sprintf("line %d: %s", e.Line, msg)
}

// Unwrap returns the underlying error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Loader is the text-format implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new text almanac loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, name string, r io.Reader) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Text almanac loader started.", "source", name)

	model, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse almanac %s: %w", name, err)
	}

	logger.Debug("Text almanac parsed.", "source", name, "seeds", len(model.Seeds), "stages", len(model.Order))
	return model, nil
}

// Parse reads a whole almanac from r.
func Parse(r io.Reader) (*config.Model, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	model := config.NewModel()
	p := &parser{model: model}
	for sc.Scan() {
		p.line++
		if err := p.feed(strings.TrimRight(sc.Text(), "\r")); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Line: p.line, Msg: "read failed", Err: err}
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return model, nil
}

type parser struct {
	model     *config.Model
	line      int
	seenSeeds bool
	// stage is the name of the section being read; empty between sections.
	stage string
	rules []rangemap.Rule
}

func (p *parser) feed(raw string) error {
	text := strings.TrimSpace(raw)
	if text == "" {
		p.closeSection()
		return nil
	}

	if !p.seenSeeds {
		return p.parseSeeds(text)
	}
	if p.stage == "" {
		return p.parseHeader(text)
	}
	return p.parseRule(text)
}

func (p *parser) parseSeeds(text string) error {
	rest, ok := strings.CutPrefix(text, seedsPrefix)
	if !ok {
		return &ParseError{Line: p.line, Msg: fmt.Sprintf("missing %q prefix", seedsPrefix)}
	}
	for _, tok := range strings.Fields(rest) {
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return &ParseError{Line: p.line, Msg: fmt.Sprintf("invalid seed %q", tok), Err: err}
		}
		p.model.Seeds = append(p.model.Seeds, v)
	}
	p.seenSeeds = true
	return nil
}

func (p *parser) parseHeader(text string) error {
	if text == strings.TrimSpace(headerSuffix) {
		return &ParseError{Line: p.line, Msg: "empty map name"}
	}
	name, ok := strings.CutSuffix(text, headerSuffix)
	if !ok {
		return &ParseError{Line: p.line, Msg: fmt.Sprintf("expected \"<name>%s\" header, got %q", headerSuffix, text)}
	}
	p.stage = strings.TrimSpace(name)
	p.rules = []rangemap.Rule{}
	return nil
}

func (p *parser) parseRule(text string) error {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return &ParseError{Line: p.line, Msg: fmt.Sprintf("expected \"destination source length\", got %d fields", len(fields))}
	}
	var nums [3]uint64
	for i, tok := range fields {
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return &ParseError{Line: p.line, Msg: fmt.Sprintf("invalid number %q in %s map", tok, p.stage), Err: err}
		}
		nums[i] = v
	}
	p.rules = append(p.rules, rangemap.Rule{Destination: nums[0], Source: nums[1], Length: nums[2]})
	return nil
}

func (p *parser) closeSection() {
	if p.stage == "" {
		return
	}
	p.model.AddStage(p.stage, p.rules)
	p.stage = ""
	p.rules = nil
}

func (p *parser) finish() error {
	if !p.seenSeeds {
		return &ParseError{Msg: "missing seeds"}
	}
	p.closeSection()
	return nil
}
