package qmap

import (
	"regexp"
	"strings"
)

var textureRe = regexp.MustCompile(`^[A-Z0-9\-+{_~]+$`)

// Parse reads a textual map and returns its structured form. Structure is
// a sequence of top-level entity blocks delimited by lone "{"/"}" lines;
// inside an entity, "key" "value" lines are followed optionally by nested
// brush blocks of face lines.
func Parse(data string) (*Map, error) {
	lines := strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n")

	blocks, err := splitBlocks(lines)
	if err != nil {
		return nil, err
	}

	entities := make([]*Entity, 0, len(blocks))
	for _, block := range blocks {
		ent, err := parseEntity(block)
		if err != nil {
			return nil, err
		}
		entities = append(entities, ent)
	}

	return NewMap(entities)
}

// splitBlocks partitions lines into maximal balanced "{"/"}" groups, each
// returned with its delimiting brace lines included. Braces are
// recognized only as lone-token lines (after trimming), matching the
// format's line-oriented structure; a line is otherwise either inside the
// current block or, outside any block, must be blank.
func splitBlocks(lines []string) ([][]string, error) {
	var blocks [][]string
	var cur []string
	depth := 0

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case line == "{":
			depth++
			cur = append(cur, raw)
		case line == "}":
			depth--
			if depth < 0 {
				return nil, &ParseError{Reason: "unbalanced closing brace"}
			}
			cur = append(cur, raw)
			if depth == 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
		case depth > 0:
			cur = append(cur, raw)
		case line != "":
			return nil, &ParseError{Reason: "unexpected content outside any block: " + line}
		}
	}
	if depth != 0 {
		return nil, &ParseError{Reason: "unbalanced braces: unterminated block"}
	}
	return blocks, nil
}

// parseEntity parses one balanced block (including its delimiting braces)
// into an Entity.
func parseEntity(block []string) (*Entity, error) {
	if len(block) < 2 || strings.TrimSpace(block[0]) != "{" || strings.TrimSpace(block[len(block)-1]) != "}" {
		return nil, &ParseError{Reason: "entity block missing delimiting braces"}
	}
	inner := block[1 : len(block)-1]

	ent := &Entity{Params: make(map[string]string)}

	for i, raw := range inner {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if line == "{" {
			brushLines := inner[i:]
			brushBlocks, err := splitBlocks(brushLines)
			if err != nil {
				return nil, err
			}
			for _, bb := range brushBlocks {
				brush, err := parseBrush(bb)
				if err != nil {
					return nil, err
				}
				ent.Brushes = append(ent.Brushes, brush)
			}
			return ent, nil
		}

		key, value, err := parseKV(line)
		if err != nil {
			return nil, err
		}
		ent.SetParam(key, value)
	}

	return ent, nil
}

// parseKV parses a `"key" "value"` line.
func parseKV(line string) (string, string, error) {
	if len(line) < 2 || line[0] != '"' || line[len(line)-1] != '"' {
		return "", "", &ParseError{Reason: "malformed key/value line: " + line}
	}
	body := line[1 : len(line)-1]
	parts := strings.Split(body, `" "`)
	if len(parts) != 2 {
		return "", "", &ParseError{Reason: "malformed key/value line: " + line}
	}
	return parts[0], parts[1], nil
}

// parseBrush parses one balanced brush block (including its delimiting
// braces) into a Brush: every inner line is a face line.
func parseBrush(block []string) (*Brush, error) {
	if len(block) < 2 || strings.TrimSpace(block[0]) != "{" || strings.TrimSpace(block[len(block)-1]) != "}" {
		return nil, &ParseError{Reason: "brush block missing delimiting braces"}
	}
	inner := block[1 : len(block)-1]

	brush := &Brush{}
	for _, raw := range inner {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		face, err := parseFace(line)
		if err != nil {
			return nil, err
		}
		brush.Faces = append(brush.Faces, face)
	}
	if len(brush.Faces) < 4 {
		return nil, &ParseError{Reason: "brush has fewer than 4 faces"}
	}
	return brush, nil
}

// parseFace parses a single face line: 21 whitespace-separated tokens
// after stripping "()[]" brackets.
func parseFace(line string) (Face, error) {
	stripped := strings.NewReplacer("(", "", ")", "", "[", "", "]", "").Replace(line)
	tokens := strings.Fields(stripped)
	if len(tokens) != 21 {
		return Face{}, &ParseError{Reason: "face line has wrong token count"}
	}

	nums := make([]Num, 0, 20)
	for i, tok := range tokens {
		if i == 9 {
			continue // texture name token, handled separately
		}
		n, err := ParseNum(tok)
		if err != nil {
			return Face{}, &ParseError{Reason: "bad numeric token " + tok}
		}
		nums = append(nums, n)
	}

	texture := tokens[9]
	if !textureRe.MatchString(texture) {
		return Face{}, &ParseError{Reason: "invalid texture name " + texture}
	}

	f := Face{
		Points: [3]Triple{
			{X: nums[0], Y: nums[1], Z: nums[2]},
			{X: nums[3], Y: nums[4], Z: nums[5]},
			{X: nums[6], Y: nums[7], Z: nums[8]},
		},
		Texture: texture,
		U:       Triple{X: nums[9], Y: nums[10], Z: nums[11]},
		OffsetU: nums[12],
		V:       Triple{X: nums[13], Y: nums[14], Z: nums[15]},
		OffsetV: nums[16],
		Degree:  nums[17],
		ScaleU:  nums[18],
		ScaleV:  nums[19],
	}
	return f, nil
}
