package syntax

import (
	"strconv"
	"strings"
)

// Parse interprets a UTF-8 text block describing an ASCII-art indented
// tree into a Tree.
//
// Grammar, informally: the first non-empty line holds the root
// identifier at column 0. A child is any identifier placed on a line
// whose column sits directly right of a "|---" connector whose '|'
// character is in the same column as its parent's starting column.
// Children are ordered by line number.
//
// Identifiers match `[A-Za-z][A-Za-z0-9]*`; wrapping one in brackets
// (`[Name]`) marks it as an orthogonal region. Tabs and spaces are
// interchangeable whitespace when trimming, but the '|' and '-'
// connector glyphs must sit at exact column positions.
func Parse(text string) (*Tree, error) {
	grid := makeGrid(text)
	if len(grid) == 0 {
		return nil, &ParseError{Kind: EmptyInput, Detail: "input contains no non-empty lines"}
	}

	seen := make(map[string]int) // name -> line it was first seen on
	root, err := parseSubtree(grid, 0, 0, seen)
	if err != nil {
		return nil, err
	}
	return &Tree{Root: root}, nil
}

func makeGrid(text string) []string {
	var grid []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := rtrim(line)
		if trimmed != "" {
			grid = append(grid, trimmed)
		}
	}
	return grid
}

func validCoord(grid []string, row, col int) bool {
	return row >= 0 && col >= 0 && row < len(grid) && col < len(grid[row])
}

func parseSubtree(grid []string, row, col int, seen map[string]int) (*Node, error) {
	identifier := trim(grid[row][col:])

	if !isIdentifier(identifier) {
		return nil, &ParseError{
			Kind:   Malformed,
			Line:   row,
			Col:    col,
			Detail: "expected a state or [region] identifier, got " + quote(identifier),
		}
	}

	name := getName(identifier)
	if firstLine, dup := seen[name]; dup {
		return nil, &ParseError{
			Kind:   DuplicateName,
			Line:   row,
			Col:    col,
			Detail: "identifier " + quote(name) + " already used at line " + strconv.Itoa(firstLine),
		}
	}
	seen[name] = row

	node := &Node{Name: name, IsRegion: isRegionIdentifier(identifier)}

	if !validCoord(grid, row+1, col) {
		return node, nil
	}

	childCol := strings.IndexByte(grid[row+1][col:], '|')
	if childCol == -1 {
		return node, nil
	}
	childCol += col

	for validCoord(grid, row+1, childCol) && grid[row+1][childCol] == '|' {
		row++
		if validCoord(grid, row, childCol+1) && grid[row][childCol+1] == '-' {
			afterDash := indexFirstNotOf(grid[row], childCol+1, '-')
			child, err := parseSubtree(grid, row, afterDash, seen)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		}
	}

	return node, nil
}

// indexFirstNotOf returns the index of the first byte at or after start
// that is not b, or len(s) if every remaining byte equals b.
func indexFirstNotOf(s string, start int, b byte) int {
	i := start
	for i < len(s) && s[i] == b {
		i++
	}
	return i
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func ltrim(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

func rtrim(s string) string {
	j := len(s)
	for j > 0 && isSpace(s[j-1]) {
		j--
	}
	return s[:j]
}

func trim(s string) string {
	return rtrim(ltrim(s))
}

func isStateIdentifier(s string) bool {
	s = trim(s)
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isAlpha(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return isAlpha(s[0])
}

func isRegionIdentifier(s string) bool {
	s = trim(s)
	return len(s) > 2 && s[0] == '[' && s[len(s)-1] == ']' && isStateIdentifier(s[1:len(s)-1])
}

func isIdentifier(s string) bool {
	return isStateIdentifier(s) || isRegionIdentifier(s)
}

func getName(identifier string) string {
	identifier = trim(identifier)
	if isRegionIdentifier(identifier) {
		return identifier[1 : len(identifier)-1]
	}
	return identifier
}

func quote(s string) string { return "\"" + s + "\"" }
