package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/wavl"
)

// Some defaults for the prefetch pipeline
const (
	defaultBatchSize = 64 // lines per batch
	defaultPrefetch  = 4  // batches buffered ahead of insertion
	maxLineLength    = 1 << 20
)

// ErrInterrupted is returned if loading stopped before the end of the file
// has been reached.
var ErrInterrupted = errors.New("textfile: loading interrupted")

// LineParser splits a line of text into a key and a value.
type LineParser[K, V any] func(line string) (K, V, error)

// Options tune the loading of files. A nil *Options selects defaults.
type Options struct {
	BatchSize int    // number of lines broadcast at once
	Prefetch  int    // number of batches the reader may run ahead
	Separator string // separates key from value for LoadStrings; default is TAB
}

func (opts *Options) normalized() Options {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.BatchSize <= 0 {
		o.BatchSize = defaultBatchSize
	}
	if o.Prefetch <= 0 {
		o.Prefetch = defaultPrefetch
	}
	if o.Separator == "" {
		o.Separator = "\t"
	}
	return o
}

// line is a line of text together with its 1-based line number.
type line struct {
	no   int
	text string
}

// batch is a message from the reader goroutine.
type batch struct {
	seq   int
	lines []line
}

// endOfFile is the final message from the reader goroutine. It tells how
// many batches have been published before.
type endOfFile struct {
	batches int
	err     error
}

// textFile represents a OS file which will be loaded into a tree.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async file loading
}

// Load reads a file, which must be a text file, and inserts an entry for
// every line into a new tree configured by cfg. Lines are split into key
// and value by parse. Blank lines and lines starting with '#' are skipped.
//
// Loading fails if a line cannot be parsed or holds a key which has been
// loaded before; the error names the offending line.
func Load[K, V any](name string, parse LineParser[K, V], cfg wavl.Config[K], opts *Options) (*wavl.Tree[K, V], error) {
	if parse == nil {
		return nil, fmt.Errorf("%w: line parser is nil", wavl.ErrIllegalArguments)
	}
	tree, err := wavl.New[K, V](cfg)
	if err != nil {
		return nil, err
	}
	o := opts.normalized()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tf, err := openFile(ctx, name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	// subscribe before the reader starts, so no batch gets lost
	sub, ok := tf.cast.Sub(ctx, uint(o.Prefetch))
	if !ok {
		return nil, fmt.Errorf("textfile: cannot subscribe to loader of %s", name)
	}
	// the broadcaster blocks on sending to sub until it is drained
	defer func() {
		cancel()
		go func() {
			for range sub {
			}
		}()
	}()
	tracer().Debugf("loading %s (%d bytes)", name, tf.info.Size())
	go readBatches(tf, o.BatchSize)
	received, expected := 0, -1
	for msg := range sub {
		switch m := msg.(type) {
		case batch:
			if m.seq != received {
				return nil, fmt.Errorf("textfile: %s: batch %d received out of order", name, m.seq)
			}
			for _, l := range m.lines {
				k, v, err := parse(l.text)
				if err != nil {
					return nil, fmt.Errorf("textfile: %s:%d: %w", name, l.no, err)
				}
				if _, err := tree.Insert(k, v); err != nil {
					return nil, fmt.Errorf("textfile: %s:%d: %w", name, l.no, err)
				}
			}
			received++
		case endOfFile:
			if m.err != nil {
				return nil, fmt.Errorf("textfile: error reading %s: %w", name, m.err)
			}
			expected = m.batches
		}
		if received == expected {
			tracer().Debugf("loaded %d entries in %d batches from %s", tree.Size(), received, name)
			tf.cast.Close()
			return tree, nil
		}
	}
	tracer().Errorf("loading of %s stopped after %d batches", name, received)
	return nil, ErrInterrupted
}

// LoadStrings loads a file of lines of the form
//
//	key <separator> value
//
// into a tree of strings. Keys and values are trimmed of surrounding white
// space. A line without a separator holds a key with an empty value.
func LoadStrings(name string, opts *Options) (*wavl.Tree[string, string], error) {
	sep := opts.normalized().Separator
	parse := func(text string) (string, string, error) {
		k, v, _ := strings.Cut(text, sep)
		k = strings.TrimSpace(k)
		if k == "" {
			return "", "", fmt.Errorf("%w: empty key", wavl.ErrIllegalArguments)
		}
		return k, strings.TrimSpace(v), nil
	}
	return Load(name, parse, wavl.OrderedConfig[string](), opts)
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(ctx context.Context, name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("textfile: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(ctx), // we will broadcast batches of lines when read
	}
	return tf, nil
}

// --- File loading goroutine ------------------------------------------------

// readBatches scans the lines of tf and publishes them in batches. It stops
// early if the broadcaster has been closed.
func readBatches(tf *textFile, size int) {
	scanner := bufio.NewScanner(tf.file)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	seq, no := 0, 0
	lines := make([]line, 0, size)
	for scanner.Scan() {
		no++
		text := scanner.Text()
		if t := strings.TrimSpace(text); t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		lines = append(lines, line{no: no, text: text})
		if len(lines) == size {
			if !tf.cast.Pub(batch{seq: seq, lines: lines}) {
				tracer().Debugf("reader for %s: broadcaster closed", tf.path)
				return
			}
			seq++
			lines = make([]line, 0, size)
		}
	}
	if len(lines) > 0 {
		if !tf.cast.Pub(batch{seq: seq, lines: lines}) {
			return
		}
		seq++
	}
	tf.cast.Pub(endOfFile{batches: seq, err: scanner.Err()})
}
