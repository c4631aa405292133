package stl

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/stlquote/pkg/geometry"
)

var vertexKeyword = []byte("vertex")

// decodeASCII scans an ASCII STL buffer word by word. Every "vertex" keyword
// followed by three words counts as one vertex; the facet/loop structure
// around it is not validated.
func decodeASCII(data []byte, acc *accumulator) error {
	acc.name = solidName(data)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 4096), len(data)+1)
	scanner.Split(bufio.ScanWords)

	var (
		coords  [3]float64
		pending int
		valid   bool
		matches int
	)

	for scanner.Scan() {
		word := scanner.Bytes()

		if bytes.EqualFold(word, vertexKeyword) {
			// A keyword inside an incomplete vertex restarts the match
			pending = 3
			valid = true
			continue
		}
		if pending == 0 {
			continue
		}

		value, err := strconv.ParseFloat(string(word), 64)
		if err != nil {
			valid = false
		}
		coords[3-pending] = value
		pending--

		if pending == 0 {
			matches++
			if !valid || !acc.addVertex(geometry.NewVector3(coords[0], coords[1], coords[2])) {
				acc.malformed++
			}
		}
	}

	acc.triangles = matches / 3

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading ASCII STL: %w", err)
	}
	return nil
}

// solidName returns the text after "solid" on the first line
func solidName(data []byte) string {
	line, _, _ := bytes.Cut(data, []byte("\n"))
	name := strings.TrimSpace(string(line))
	name = strings.TrimPrefix(name, string(solidKeyword))
	return strings.TrimSpace(name)
}
