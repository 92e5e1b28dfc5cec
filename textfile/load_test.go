package textfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wavl"
)

func TestLoadStrings(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// small batches force several broadcasts
	tree, err := LoadStrings("testdata/capitals.txt", &Options{BatchSize: 2, Prefetch: 1})
	if err != nil {
		t.Fatal(err)
	}
	if tree.Size() != 7 {
		t.Fatalf("expected 7 entries, have %d", tree.Size())
	}
	want := []string{"Austria", "Chile", "Egypt", "France", "Japan", "Kenya", "Peru"}
	if keys := tree.Keys(); !slices.Equal(keys, want) {
		t.Errorf("unexpected keys %v", keys)
	}
	if v, ok := tree.Search("Japan"); !ok || v != "Tokyo" {
		t.Errorf("expected capital of Japan to be Tokyo, is %q", v)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	tree, err := LoadStrings("testdata/capitals.txt", nil)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := tree.Select(1); v != "Vienna" {
		t.Errorf("expected first entry to be Vienna, is %q", v)
	}
}

func TestLoadRejectsDuplicates(t *testing.T) {
	_, err := LoadStrings("testdata/duplicates.txt", &Options{BatchSize: 1})
	if !errors.Is(err, wavl.ErrDuplicateKey) {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
	if !strings.Contains(err.Error(), ":3:") {
		t.Errorf("expected error to name line 3, is %q", err.Error())
	}
}

func TestLoadWithParser(t *testing.T) {
	parse := func(line string) (int, string, error) {
		k, v, _ := strings.Cut(line, " ")
		n, err := strconv.Atoi(k)
		return n, v, err
	}
	_, err := Load("testdata/numbers.txt", parse, wavl.OrderedConfig[int](), nil)
	if err == nil || !strings.Contains(err.Error(), ":4:") {
		t.Fatalf("expected parse error in line 4, got %v", err)
	}
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Errorf("expected wrapped strconv error, got %T", errors.Unwrap(err))
	}
}

func TestLoadIllegalInput(t *testing.T) {
	if _, err := LoadStrings("testdata/does-not-exist.txt", nil); err == nil {
		t.Errorf("expected error for missing file")
	}
	if _, err := LoadStrings("testdata", nil); err == nil {
		t.Errorf("expected error for directory")
	}
	_, err := Load[int, int]("testdata/numbers.txt", nil, wavl.OrderedConfig[int](), nil)
	if !errors.Is(err, wavl.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for nil parser, got %v", err)
	}
	_, err = Load("testdata/numbers.txt", func(string) (int, int, error) { return 0, 0, nil },
		wavl.Config[int]{}, nil)
	if !errors.Is(err, wavl.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestFailedLoadsReleaseGoroutines(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 1000; i++ {
		fmt.Fprintf(&sb, "%d\tvalue %d\n", i, i)
	}
	name := filepath.Join(t.TempDir(), "large.txt")
	if err := os.WriteFile(name, []byte(sb.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	// fail on the second line, giving the reader time to run ahead
	parse := func(line string) (int, string, error) {
		k, v, _ := strings.Cut(line, "\t")
		if k == "2" {
			time.Sleep(10 * time.Millisecond)
			return 0, "", errors.New("bad line")
		}
		n, err := strconv.Atoi(k)
		return n, v, err
	}
	before := runtime.NumGoroutine()
	for i := 0; i < 10; i++ {
		_, err := Load(name, parse, wavl.OrderedConfig[int](), &Options{BatchSize: 1, Prefetch: 1})
		if err == nil || !strings.Contains(err.Error(), ":2:") {
			t.Fatalf("expected error in line 2, got %v", err)
		}
	}
	after := runtime.NumGoroutine()
	for deadline := time.Now().Add(5 * time.Second); after > before && time.Now().Before(deadline); {
		time.Sleep(20 * time.Millisecond)
		after = runtime.NumGoroutine()
	}
	if after > before {
		t.Errorf("goroutines leaked by failed loads: before=%d, after=%d", before, after)
	}
}
