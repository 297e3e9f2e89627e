package main

import (
	"fmt"
	"strconv"
)

// cursor splits a command line into space separated tokens.
type cursor struct {
	line string
	pos  int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// next returns the next token or empty string if line is exhausted.
func (c *cursor) next() string {
	for c.pos < len(c.line) && isSpace(c.line[c.pos]) {
		c.pos++
	}
	start := c.pos
	for c.pos < len(c.line) && !isSpace(c.line[c.pos]) {
		c.pos++
	}
	return c.line[start:c.pos]
}

// arg returns the next token or an error if there is none.
func (c *cursor) arg(name string) (string, error) {
	s := c.next()
	if s == "" {
		return "", fmt.Errorf("missing %s argument", name)
	}
	return s, nil
}

func (c *cursor) number(name string) (int, error) {
	s, err := c.arg(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("malformed %s argument %q: %v", name, s, err)
	}
	return n, nil
}
