package gitattributes

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/npillmayer/gitattributes/attr"
	"github.com/npillmayer/gitattributes/internal/linescan"
)

// Rule is a single line of a gitattributes file: a pattern and the
// attributes to apply to paths matching it.
//
// Quoted patterns have already been decoded. Attributes is never nil.
type Rule struct {
	Pattern    string
	Attributes *attr.Set
}

// Parser parses gitattributes documents. The zero value is not usable;
// clients call NewParser. A Parser is not modified by Parse and may be
// shared between goroutines.
type Parser struct {
	detectBOM bool
	tracer    func() tracing.Trace
}

// NewParser creates a new Parser with default configuration: content is
// taken as given, i.e. a byte order mark is not treated specially, and tracing
// goes to the core-tracer.
func NewParser() *Parser {
	return &Parser{
		tracer: CT,
	}
}

// WithBOMDetection configures whether a byte order mark at the start of
// the input is honoured. If enabled, a UTF-8 BOM is dropped and a UTF-16 BOM
// switches decoding to UTF-16. If disabled (the default), U+FEFF is part of
// the first line, where it counts as a blank.
func (p *Parser) WithBOMDetection(enable bool) *Parser {
	p.detectBOM = enable
	return p
}

// WithTracer configures the tracer to use. A nil tracer selects the
// core-tracer.
func (p *Parser) WithTracer(t tracing.Trace) *Parser {
	if t == nil {
		p.tracer = CT
	} else {
		p.tracer = func() tracing.Trace { return t }
	}
	return p
}

// Parse parses a gitattributes document with a default parser.
// See Parser.Parse.
func Parse(content string) ([]Rule, error) {
	return NewParser().Parse(content)
}

// Parse returns the rules of a gitattributes document, one for each line
// which is neither blank nor a comment, in document order.
//
// Lines starting with a quote which is never closed are dropped. If a quoted
// pattern cannot be decoded, Parse returns a *PatternDecodeError and no rules.
func (p *Parser) Parse(content string) ([]Rule, error) {
	if p.detectBOM {
		content = p.dropBOM(content)
	}
	var rules []Rule
	for i, line := range strings.Split(content, "\n") {
		if linescan.IsEmpty(line) || linescan.IsComment(line) {
			continue
		}
		rule, ok, err := p.parseLine(line)
		if err != nil {
			err.Line = i + 1
			p.tracer().Errorf("%v", err)
			return nil, err
		}
		if !ok {
			p.tracer().P("line", strconv.Itoa(i+1)).Debugf("no pattern, line dropped: %q", line)
			continue
		}
		rules = append(rules, rule)
	}
	p.tracer().Debugf("parsed %d rules", len(rules))
	return rules, nil
}

func (p *Parser) parseLine(line string) (Rule, bool, *PatternDecodeError) {
	var pattern, attrs string
	if strings.HasPrefix(line, `"`) {
		literal, rest, ok := linescan.SplitQuoted(line)
		if !ok {
			return Rule{}, false, nil
		}
		var err error
		if pattern, err = unquotePattern(literal); err != nil {
			return Rule{}, false, &PatternDecodeError{Literal: literal, Cause: err}
		}
		attrs = rest
	} else {
		pattern, attrs = linescan.SplitPattern(line)
	}
	rule := Rule{Pattern: pattern}
	if attrs != "" {
		rule.Attributes = attr.Parse(attrs)
	} else {
		rule.Attributes = attr.NewSet()
	}
	return rule, true, nil
}

func (p *Parser) dropBOM(content string) string {
	decoded, _, err := transform.String(unicode.BOMOverride(transform.Nop), content)
	if err != nil {
		p.tracer().Errorf("cannot decode input: %v; continuing without BOM detection", err)
		return content
	}
	return decoded
}
