// Package palette reduces a map image to the 256 colours a GIF can hold.
//
// Colours are accumulated in an octree whose nodes live in one flat slice
// and refer to each other by index. Whenever the tree holds more leaves than
// the requested palette size, the most recently created node on the deepest
// level that still has children is folded into a single leaf carrying the
// summed colour of its children.
package palette

import (
	"image"
	"image/color"
)

const (
	// Size is the number of entries in a GIF palette.
	Size = 256

	// Reserved is the number of palette entries kept for the map's own
	// drawing colours (text, axes, courses and so on).
	Reserved = 12

	// ImageColors is the number of entries left for background and sprite
	// colours.
	ImageColors = Size - Reserved

	colorBits = 8
)

// none marks an absent child. The root lives at index 0 and is never
// anyone's child, so the zero value is free to mean "no node".
const none int32 = 0

type node struct {
	leaf     bool
	count    int
	r, g, b  int
	children [8]int32
}

// Octree is a colour quantization tree bounded to a maximum number of
// leaves. The zero value is not usable; create trees with New.
type Octree struct {
	nodes     []node
	free      []int32
	reducible [colorBits][]int32
	leaves    int
	max       int
}

// New returns an empty tree that keeps at most maxColors leaves. Values
// below one select ImageColors.
func New(maxColors int) *Octree {
	if maxColors < 1 {
		maxColors = ImageColors
	}
	t := &Octree{max: maxColors}
	t.alloc(0)
	return t
}

// Add records one pixel of colour c.
func (t *Octree) Add(c color.Color) {
	r16, g16, b16, _ := c.RGBA()
	r, g, b := int(r16>>8), int(g16>>8), int(b16>>8)

	idx := int32(0)
	for level := 0; ; level++ {
		if n := &t.nodes[idx]; n.leaf {
			n.count++
			n.r += r
			n.g += g
			n.b += b
			break
		}
		shift := 7 - level
		ci := ((r>>shift)&1)<<2 | ((g>>shift)&1)<<1 | (b>>shift)&1
		child := t.nodes[idx].children[ci]
		if child == none {
			child = t.alloc(level + 1)
			t.nodes[idx].children[ci] = child
		}
		idx = child
	}

	for t.leaves > t.max {
		if !t.reduce() {
			break
		}
	}
}

// AddImage records every pixel of img, column by column.
func (t *Octree) AddImage(img image.Image) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			t.Add(img.At(x, y))
		}
	}
}

// Leaves returns the number of colours the tree currently holds.
func (t *Octree) Leaves() int { return t.leaves }

// Palette returns the average colour of every leaf in child order.
func (t *Octree) Palette() color.Palette {
	p := make(color.Palette, 0, t.leaves)
	var walk func(idx int32)
	walk = func(idx int32) {
		n := &t.nodes[idx]
		if n.leaf {
			if n.count > 0 {
				p = append(p, color.RGBA{
					R: uint8(n.r / n.count),
					G: uint8(n.g / n.count),
					B: uint8(n.b / n.count),
					A: 255,
				})
			}
			return
		}
		for _, c := range n.children {
			if c != none {
				walk(c)
			}
		}
	}
	walk(0)
	return p
}

func (t *Octree) alloc(level int) int32 {
	n := node{leaf: level == colorBits}

	var idx int32
	if k := len(t.free); k > 0 {
		idx = t.free[k-1]
		t.free = t.free[:k-1]
		t.nodes[idx] = n
	} else {
		idx = int32(len(t.nodes))
		t.nodes = append(t.nodes, n)
	}

	if n.leaf {
		t.leaves++
	} else {
		t.reducible[level] = append(t.reducible[level], idx)
	}
	return idx
}

// reduce folds the children of one node into it. It reports false when no
// node is left to fold.
func (t *Octree) reduce() bool {
	level := colorBits - 1
	for level > 0 && len(t.reducible[level]) == 0 {
		level--
	}
	stack := t.reducible[level]
	if len(stack) == 0 {
		return false
	}
	idx := stack[len(stack)-1]
	t.reducible[level] = stack[:len(stack)-1]

	n := &t.nodes[idx]
	children := 0
	for i, c := range n.children {
		if c == none {
			continue
		}
		child := t.nodes[c]
		n.r += child.r
		n.g += child.g
		n.b += child.b
		n.count += child.count
		n.children[i] = none
		t.free = append(t.free, c)
		children++
	}
	n.leaf = true
	t.leaves -= children - 1
	return true
}
