// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rlpview

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"

	"github.com/exfinen/eth-rlp/lib/rlp"
)

// Theme holds the colours used when Options.Color is set.
type Theme struct {
	Offset lipgloss.Color
	List   lipgloss.Color
	Hex    lipgloss.Color
	Text   lipgloss.Color
	Size   lipgloss.Color
}

// DefaultTheme suits a dark 256-colour terminal.
var DefaultTheme = Theme{
	Offset: lipgloss.Color("240"),
	List:   lipgloss.Color("141"),
	Hex:    lipgloss.Color("75"),
	Text:   lipgloss.Color("114"),
	Size:   lipgloss.Color("245"),
}

// Options controls rendering.
type Options struct {
	// Color enables ANSI styling.
	Color bool

	// Width truncates each line to this many terminal cells. Zero
	// disables truncation.
	Width int

	// Offsets prefixes each line with the node's byte offset in hex.
	Offsets bool

	// Theme overrides DefaultTheme when Color is set.
	Theme *Theme
}

// Render writes the tree of item as laid out in its canonical
// encoding.
func Render(w io.Writer, item rlp.Item, opts Options) error {
	nodes, err := Layout(item)
	if err != nil {
		return err
	}
	return RenderNodes(w, nodes, opts)
}

// RenderNodes writes nodes one per line.
func RenderNodes(w io.Writer, nodes []Node, opts Options) error {
	styles := newPalette(w, opts)
	var line strings.Builder
	for _, node := range nodes {
		line.Reset()
		if opts.Offsets {
			line.WriteString(styles.offset(fmt.Sprintf("%06x", node.Offset)))
			line.WriteString("  ")
		}
		line.WriteString(strings.Repeat("  ", node.Depth))
		writeNode(&line, node, styles)

		text := line.String()
		if opts.Width > 0 {
			text = ansi.Truncate(text, opts.Width, "…")
		}
		if _, err := io.WriteString(w, text+"\n"); err != nil {
			return err
		}
	}
	return nil
}

type paint func(string) string

type palette struct {
	offset, list, hex, text, size paint
}

func newPalette(w io.Writer, opts Options) palette {
	if !opts.Color {
		plain := func(text string) string { return text }
		return palette{offset: plain, list: plain, hex: plain, text: plain, size: plain}
	}
	theme := DefaultTheme
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	// The profile is fixed: callers have already decided colour is
	// wanted, so lipgloss must not re-detect and strip it.
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(termenv.ANSI256))
	renderer.SetColorProfile(termenv.ANSI256)
	return palette{
		offset: styled(renderer.NewStyle().Foreground(theme.Offset)),
		list:   styled(renderer.NewStyle().Foreground(theme.List).Bold(true)),
		hex:    styled(renderer.NewStyle().Foreground(theme.Hex)),
		text:   styled(renderer.NewStyle().Foreground(theme.Text)),
		size:   styled(renderer.NewStyle().Foreground(theme.Size)),
	}
}

func styled(style lipgloss.Style) paint {
	return func(text string) string { return style.Render(text) }
}

func writeNode(line *strings.Builder, node Node, styles palette) {
	switch item := node.Item.(type) {
	case rlp.List:
		line.WriteString(styles.list("list"))
		line.WriteString("  ")
		line.WriteString(styles.size(countItems(len(item)) + ", " + countBytes(node.PayloadLen)))

	case rlp.String:
		if len(item) == 0 {
			line.WriteString(styles.hex("0x"))
			line.WriteString("  ")
			line.WriteString(styles.size("empty"))
			return
		}
		line.WriteString(styles.hex("0x" + hex.EncodeToString(item)))
		if isPrintable(item) {
			line.WriteString(" ")
			line.WriteString(styles.text(strconv.Quote(string(item))))
		}
		line.WriteString("  ")
		line.WriteString(styles.size(countBytes(uint64(len(item)))))
	}
}

func countItems(n int) string {
	if n == 1 {
		return "1 item"
	}
	return humanize.Comma(int64(n)) + " items"
}

func countBytes(n uint64) string {
	if n == 1 {
		return "1 byte"
	}
	return humanize.Comma(int64(n)) + " bytes"
}

func isPrintable(value []byte) bool {
	for _, b := range value {
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}
