package scenario

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Limits bounds the number of classes and objects in one data file.
// Zero means unlimited.
type Limits struct {
	Classes int
	Objects int
}

// Parse reads a data file. Errors name the line they occurred on.
func Parse(r io.Reader, lim Limits) (*Scenario, error) {
	p := &parser{sc: bufio.NewScanner(r)}
	p.sc.Buffer(make([]byte, 0, 4096), 1<<20)

	s := &Scenario{}
	if err := p.header(&s.Header); err != nil {
		return nil, err
	}
	if err := p.classes(s, lim.Classes); err != nil {
		return nil, err
	}
	if err := p.objects(s, lim.Objects); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseString is Parse over in-memory text.
func ParseString(data string, lim Limits) (*Scenario, error) {
	return Parse(strings.NewReader(data), lim)
}

type parser struct {
	sc   *bufio.Scanner
	line int
	rest string
	eof  bool
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s", p.line, fmt.Sprintf(format, args...))
}

func (p *parser) next() bool {
	if p.eof || !p.sc.Scan() {
		p.eof = true
		return false
	}
	p.line++
	p.rest = strings.TrimRight(p.sc.Text(), "\r")
	return true
}

// token returns the next whitespace separated field, crossing lines.
func (p *parser) token(what string) (string, error) {
	for {
		p.rest = strings.TrimLeft(p.rest, " \t")
		if p.rest != "" {
			end := strings.IndexAny(p.rest, " \t")
			if end < 0 {
				end = len(p.rest)
			}
			tok := p.rest[:end]
			p.rest = p.rest[end:]
			return tok, nil
		}
		if !p.next() {
			if err := p.sc.Err(); err != nil {
				return "", fmt.Errorf("reading %s: %w", what, err)
			}
			return "", p.errorf("unexpected end of file reading %s", what)
		}
	}
}

// lineText returns the rest of the current line if anything is left on it,
// otherwise the whole next line.
func (p *parser) lineText() (string, bool) {
	if s := strings.TrimSpace(p.rest); s != "" {
		p.rest = ""
		return s, true
	}
	if !p.next() {
		return "", false
	}
	s := strings.TrimSpace(p.rest)
	p.rest = ""
	return s, true
}

func (p *parser) number(what string) (float64, error) {
	tok, err := p.token(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, p.errorf("invalid %s %q", what, tok)
	}
	return v, nil
}

func (p *parser) integer(what string) (int, error) {
	tok, err := p.token(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, p.errorf("invalid %s %q", what, tok)
	}
	return v, nil
}

func (p *parser) header(h *Header) error {
	title, ok := p.lineText()
	if !ok {
		return p.errorf("missing title")
	}
	h.Title = title

	bg, err := p.token("background")
	if err != nil {
		return err
	}
	h.Background = bg

	tracking, err := p.integer("tracking flag")
	if err != nil {
		return err
	}
	h.Tracking = tracking != 0

	for _, f := range []struct {
		what string
		dst  *float64
	}{
		{"min x", &h.MinX},
		{"min y", &h.MinY},
		{"max x", &h.MaxX},
		{"max y", &h.MaxY},
		{"pixels per unit", &h.PPU},
	} {
		if *f.dst, err = p.number(f.what); err != nil {
			return err
		}
	}

	if h.MaxX <= h.MinX || h.MaxY <= h.MinY {
		return p.errorf("empty map extent %g,%g to %g,%g", h.MinX, h.MinY, h.MaxX, h.MaxY)
	}
	if h.PPU <= 0 {
		return p.errorf("pixels per unit must be positive, got %g", h.PPU)
	}
	return nil
}

func (p *parser) classes(s *Scenario, limit int) error {
	for {
		name, err := p.token("class name")
		if err != nil {
			return err
		}
		if name == "*" {
			return nil
		}
		if limit > 0 && len(s.Classes) == limit {
			return fmt.Errorf("line %d: class %s: more than %d classes: %w", p.line, name, limit, ErrLimit)
		}
		if s.ClassIndex(name) >= 0 {
			return p.errorf("duplicate class %s", name)
		}

		c := Class{Name: name}
		if c.Image, err = p.token("class image"); err != nil {
			return err
		}
		if c.Scale, err = p.number("class scale"); err != nil {
			return err
		}
		if c.Scale <= 0 {
			return p.errorf("class %s: scale must be positive, got %g", name, c.Scale)
		}
		legend, err := p.integer("legend flag")
		if err != nil {
			return err
		}
		c.Legend = legend != 0
		s.Classes = append(s.Classes, c)
	}
}

func (p *parser) objects(s *Scenario, limit int) error {
	for {
		name, ok := p.lineText()
		if !ok {
			if err := p.sc.Err(); err != nil {
				return fmt.Errorf("reading objects: %w", err)
			}
			// A missing terminator at the end of the file is tolerated.
			return nil
		}
		if name == "*" {
			return nil
		}
		if limit > 0 && len(s.Objects) == limit {
			return fmt.Errorf("line %d: more than %d objects: %w", p.line, limit, ErrLimit)
		}

		o := Object{Name: name}
		var err error
		if o.Class, err = p.token("object class"); err != nil {
			return err
		}
		if s.ClassIndex(o.Class) < 0 {
			return p.errorf("object %q: unknown class %s", name, o.Class)
		}
		if o.X, err = p.number("x"); err != nil {
			return err
		}
		if o.Y, err = p.number("y"); err != nil {
			return err
		}
		if o.Heading, err = p.integer("heading"); err != nil {
			return err
		}
		if o.Facing, err = p.integer("facing"); err != nil {
			return err
		}
		if o.Speed, err = p.number("speed"); err != nil {
			return err
		}
		if o.Delta, err = p.integer("turn"); err != nil {
			return err
		}
		s.Objects = append(s.Objects, o)
	}
}
