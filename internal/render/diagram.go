// Package render draws a kdtree for humans. It only reads the tree through
// its level-order traversal.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-sod/kdtree/internal/byteutil"
	"github.com/go-sod/kdtree/pkg/container/kdtree"
)

const (
	valWidth = 13
	dimWidth = 2
	// value, a space, dimension
	nodeWidth = valWidth + 1 + dimWidth

	// MaxDiagramHeight bounds Diagram: the bottom line is
	// 2^(height-1) * nodeWidth columns wide.
	MaxDiagramHeight = 16
)

var ErrTooTall = errors.New("render: tree is too tall to draw")

// FormatFn turns a stored value into a label.
type FormatFn[T any] func(v T) string

// Diagram writes one line per level of the tree. Every level is split into
// 2^level equal slots and a node is centered in the slot matching its heap
// position, so children sit under their parent.
func Diagram[T any, C kdtree.Scalar](w io.Writer, tree *kdtree.Tree[T, C], format FormatFn[T]) error {
	if tree.Empty() {
		_, err := io.WriteString(w, "<empty tree>\n")
		return err
	}
	height := tree.Height()
	if height > MaxDiagramHeight {
		return fmt.Errorf("%w: height %d", ErrTooTall, height)
	}
	lineWidth := (1 << (height - 1)) * nodeWidth
	levelWidth := len(strconv.Itoa(height - 1))

	line := byteutil.GetBytesBuf()
	defer byteutil.PutBytesBuf(line)
	var (
		level  = -1
		cursor int
		err    error
	)
	flush := func() {
		if level < 0 || err != nil {
			return
		}
		_, err = io.WriteString(w, strings.TrimRight(line.String(), " ")+"\n")
	}
	tree.LevelOrder(func(v kdtree.Visit[T]) bool {
		if v.Level != level {
			flush()
			line.Reset()
			level = v.Level
			cursor = 0
			fmt.Fprintf(line, "%*d: ", levelWidth, level)
		}
		slotWidth := lineWidth >> uint(level)
		slot := int(v.Pos - (uint64(1)<<uint(level) - 1))
		start := slot*slotWidth + (slotWidth-nodeWidth)/2

		line.WriteString(strings.Repeat(" ", start-cursor))
		line.WriteString(center(label(format(*v.Value), v.Dim), nodeWidth))
		cursor = start + nodeWidth
		return err == nil
	})
	flush()
	return err
}

func label(val string, dim int) string {
	return truncate(val, valWidth) + " " + truncate(strconv.Itoa(dim), dimWidth)
}

// truncate and center count runes, so labels keep whole characters.
func truncate(s string, size int) string {
	if utf8.RuneCountInString(s) <= size {
		return s
	}
	return string([]rune(s)[:size-3]) + "..."
}

func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2)
}
