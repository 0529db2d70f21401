package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadOBJ reads a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}

// ParseOBJ reads vertex ("v x y z") and face ("f a b c ...") records. Face
// indices are 1-based and may carry /vt/vn suffixes, which are ignored.
// Negative indices count back from the latest vertex. Vertex records with
// fewer than three coordinates are skipped, as are face references that do
// not parse. Malformed coordinates read as 0 and every other record type is
// ignored.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	mesh := NewMesh("")
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				continue
			}
			var xyz [3]float32
			for i := range xyz {
				xyz[i] = parseFloat(fields[i+1])
			}
			mesh.Vertices = append(mesh.Vertices, vec3(xyz))

		case "f":
			face := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				if idx, ok := parseIndex(tok, len(mesh.Vertices)); ok {
					face = append(face, idx)
				}
			}
			if len(face) > 0 {
				mesh.AddFace(face...)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	mesh.CalculateBounds()
	return mesh, nil
}

func parseFloat(s string) float32 {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0
	}
	return float32(f)
}

// parseIndex converts an OBJ vertex reference like "7", "7/2" or "7/2/5" to a
// 0-based index. ok is false when the reference does not parse.
func parseIndex(tok string, count int) (int, bool) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	if n < 0 {
		return count + n, true
	}
	return n - 1, true
}
