package tcx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads and parses a TCX file and returns a Workout view over the
// document tree.
func Load(path string) (*Workout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	w, err := Parse(f)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return w, nil
}

// Parse builds the document tree from a TCX byte stream.
func Parse(r io.Reader) (*Workout, error) {
	dec := xml.NewDecoder(r)

	var root *Node
	var stack []*Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &Node{Name: t.Name.Local}
			for _, a := range t.Attr {
				// Prefix declarations are dropped; output carries
				// local names only.
				if a.Name.Space == "xmlns" {
					continue
				}
				node.Attrs = append(node.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("failed to parse document: multiple root elements")
				}
				root = node
			} else {
				stack[len(stack)-1].Append(node)
			}
			stack = append(stack, node)

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			if text := strings.TrimSpace(string(t)); text != "" {
				stack[len(stack)-1].Text += text
			}

		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, fmt.Errorf("failed to parse document: empty input")
	}
	return NewWorkout(root), nil
}

// Save serializes the workout document to a file, XML declaration included
// and namespace prefixes stripped.
func (w *Workout) Save(path string) error {
	var buf bytes.Buffer
	if err := w.Write(&buf); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Write serializes the workout document to a writer.
func (w *Workout) Write(out io.Writer) error {
	bw := &errWriter{w: out}
	bw.writeString(xml.Header)
	writeNode(bw, w.node, 0)
	return bw.err
}

// Bytes returns the serialized document.
func (w *Workout) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := w.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeNode(w *errWriter, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)

	w.writeString(indent + "<" + n.Name)
	for _, a := range n.Attrs {
		w.writeString(" " + a.Name + `="`)
		w.escape(a.Value)
		w.writeString(`"`)
	}

	switch {
	case len(n.Children) == 0 && n.Text == "":
		w.writeString("/>\n")
	case len(n.Children) == 0:
		w.writeString(">")
		w.escape(n.Text)
		w.writeString("</" + n.Name + ">\n")
	default:
		w.writeString(">\n")
		if n.Text != "" {
			w.writeString(indent + "  ")
			w.escape(n.Text)
			w.writeString("\n")
		}
		for _, c := range n.Children {
			writeNode(w, c, depth+1)
		}
		w.writeString(indent + "</" + n.Name + ">\n")
	}
}

// errWriter collects the first write failure so serialization code stays
// free of per-write error checks.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) writeString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *errWriter) escape(s string) {
	if w.err != nil {
		return
	}
	w.err = xml.EscapeText(writerFunc(func(p []byte) (int, error) {
		return w.w.Write(p)
	}), []byte(s))
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
