package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/wavl"
	"golang.org/x/term"
)

const (
	defaultLineWidth = 65
	defaultIndent    = 4
	ellipsis         = "…"
)

// Config represents a set of configuration parameters for printing trees.
type Config struct {
	LineWidth int            // in fixed width ‘en’s
	Indent    int            // indentation per tree level; default is 4
	NoColor   bool           // suppress highlighting
	Context   *uax11.Context // for measuring display width; default is uax11.LatinContext
}

// palette holds the colors for highlighting nodes.
type palette struct {
	diff2 *color.Color // node with a child at rank difference 2
	leaf  *color.Color
}

func makeDefaultPalette() palette {
	return palette{
		diff2: color.New(color.FgRed),
		leaf:  color.New(color.FgBlue),
	}
}

var setupGraphemes sync.Once

// Print outputs a tree sideways to w, one node per line.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func Print[K, V any](tree *wavl.Tree[K, V], w io.Writer, config *Config) error {
	if w == nil {
		return wavl.ErrIllegalArguments
	}
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	p := newPrinter(config)
	return printTree(p, tree, w)
}

// Println outputs a tree to stdout, using a configuration derived from the
// terminal.
func Println[K, V any](tree *wavl.Tree[K, V]) error {
	return Print(tree, os.Stdout, nil)
}

type printer struct {
	config Config
	colors palette
}

func newPrinter(config *Config) *printer {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p := &printer{config: *config, colors: makeDefaultPalette()}
	if p.config.Context == nil {
		p.config.Context = uax11.LatinContext
	}
	if p.config.LineWidth <= 0 {
		p.config.LineWidth = defaultLineWidth
	}
	if p.config.Indent <= 0 {
		p.config.Indent = defaultIndent
	}
	return p
}

func printTree[K, V any](p *printer, tree *wavl.Tree[K, V], w io.Writer) error {
	if tree.IsEmpty() {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	// Inspect delivers nodes in key order, we need them reversed
	nodes := make([]wavl.NodeInfo[K, V], 0, tree.Size())
	tree.Inspect(func(n wavl.NodeInfo[K, V]) bool {
		nodes = append(nodes, n)
		return true
	})
	var b strings.Builder
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		indent := n.Depth * p.config.Indent
		label := fmt.Sprintf("%v: %v", n.Key, n.Value)
		annotation := fmt.Sprintf(" [r=%d s=%d]", n.Rank, n.Size)
		room := p.config.LineWidth - indent - p.width(annotation)
		b.Reset()
		b.WriteString(strings.Repeat(" ", indent))
		p.styled(&b, p.truncate(label, room)+annotation, p.colorFor(n.IsLeaf(), n.LeftDiff, n.RightDiff))
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	tracer().Debugf("printed %d nodes at line width %d", len(nodes), p.config.LineWidth)
	return nil
}

func (p *printer) colorFor(leaf bool, ldiff, rdiff int) *color.Color {
	if p.config.NoColor {
		return nil
	}
	if ldiff == 2 || rdiff == 2 {
		return p.colors.diff2
	} else if leaf {
		return p.colors.leaf
	}
	return nil
}

func (p *printer) styled(w io.Writer, s string, c *color.Color) {
	if c != nil {
		c.Fprint(w, s)
		return
	}
	io.WriteString(w, s)
}

// width returns the number of display cells s occupies.
func (p *printer) width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), p.config.Context)
}

// truncate shortens s to at most room display cells, marking the cut with
// an ellipsis.
func (p *printer) truncate(s string, room int) string {
	if p.width(s) <= room {
		return s
	}
	room -= p.width(ellipsis)
	runes := []rune(s)
	for len(runes) > 0 && p.width(string(runes)) > room {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Highlighting is
// switched off for non-interactive output.
func ConfigFromTerminal() *Config {
	config := &Config{Indent: defaultIndent}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = defaultLineWidth
		} else {
			if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = defaultLineWidth
		config.NoColor = true
	}
	tracer().Infof("setting line length to %d en", config.LineWidth)
	return config
}
