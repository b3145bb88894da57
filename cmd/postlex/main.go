// Command postlex analyses posts read from a file or stdin (one per
// line), records term frequencies into a store, and prints a JSON report
// of the top terms.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/coinsight/postlex/pkg/postlex"
	"github.com/coinsight/postlex/pkg/postlex/store"
	"github.com/coinsight/postlex/pkg/postlex/store/memstore"
	"github.com/coinsight/postlex/pkg/postlex/store/sqlite"
)

type report struct {
	TotalPosts   int64       `json:"total_posts"`
	ChinesePosts int64       `json:"chinese_posts"`
	TopTerms     []termEntry `json:"top_terms"`
}

type termEntry struct {
	Term  string `json:"term"`
	Count int64  `json:"count"`
}

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML configuration (required)")
		input      = flag.String("input", "-", "Posts file, one post per line ('-' for stdin)")
		dbPath     = flag.String("db", "", "Optional: SQLite database for persistent counts")
		noFilter   = flag.Bool("no-filter", false, "Skip the exclusion pipeline")
		top        = flag.Int("top", 50, "Number of top terms in the report")
	)
	flag.Parse()

	if *configPath == "" {
		log.Fatal("--config required")
	}

	engine, err := postlex.FromConfig(*configPath)
	if err != nil {
		log.Fatalf("build engine: %v", err)
	}

	ctx := context.Background()

	var st store.Store
	if *dbPath != "" {
		st, err = sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
	} else {
		st = memstore.New()
	}
	defer st.Close()

	var in io.Reader = os.Stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatalf("open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	opts := postlex.AnalyseOptions{NoFilter: *noFilter}

	var chinese int64
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		res := engine.Analyse(line, opts)
		if res.IsChinese {
			chinese++
		}
		rec := store.Analysis{
			ID:         store.NewID(),
			IsChinese:  res.IsChinese,
			Words:      res.Words,
			AnalyzedAt: time.Now(),
		}
		if err := st.RecordAnalysis(ctx, rec); err != nil {
			log.Fatalf("record analysis: %v", err)
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("read input: %v", err)
	}

	total, err := st.TotalPosts(ctx)
	if err != nil {
		log.Fatalf("count posts: %v", err)
	}
	counts, err := st.TermCounts(ctx, *top)
	if err != nil {
		log.Fatalf("term counts: %v", err)
	}

	rep := report{TotalPosts: total, ChinesePosts: chinese}
	for _, tc := range counts {
		rep.TopTerms = append(rep.TopTerms, termEntry{Term: tc.Term, Count: tc.Count})
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))
}
