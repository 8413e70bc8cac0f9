// Package report runs every structure and algorithm over a dataset and
// writes the console report, one labeled section per line group.
//
// Section order:
//
//	BST Inorder, BST Height, AVL Inorder, AVL Height, Adj List, Adj Matrix,
//	BFS, DFS, Dijkstra, MST, MST Weight, Expr, Expr Value
//
// The first failure aborts the run; nothing after it is printed.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/campusgraph/bfs"
	"github.com/katalvlaran/campusgraph/dataset"
	"github.com/katalvlaran/campusgraph/dfs"
	"github.com/katalvlaran/campusgraph/dijkstra"
	"github.com/katalvlaran/campusgraph/expr"
	"github.com/katalvlaran/campusgraph/graph"
	"github.com/katalvlaran/campusgraph/prim_kruskal"
)

// printer remembers the first write error so sections can print unconditionally.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, a...)
}

// Run writes the full report for ds to w. A nil logger falls back to slog.Default().
func Run(w io.Writer, ds *dataset.Dataset, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	p := &printer{w: w}

	if err := trees(p, ds, logger); err != nil {
		return err
	}
	g, err := ds.Graph()
	if err != nil {
		return fmt.Errorf("report: build graph: %w", err)
	}
	logger.Debug("graph built",
		slog.Int("nodes", g.NodeCount()),
		slog.Int("edges", g.EdgeCount()),
	)
	if err := graphs(p, g, ds.Start, logger); err != nil {
		return err
	}
	if err := expression(p, ds.Expression, logger); err != nil {
		return err
	}

	return p.err
}

func trees(p *printer, ds *dataset.Dataset, logger *slog.Logger) error {
	b, err := ds.BST()
	if err != nil {
		return fmt.Errorf("report: bst: %w", err)
	}
	p.println("BST Inorder:", b.InOrder())
	p.println("BST Height:", b.Height())

	a, err := ds.AVL()
	if err != nil {
		return fmt.Errorf("report: avl: %w", err)
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("report: avl: %w", err)
	}
	p.println("AVL Inorder:", a.InOrder())
	p.println("AVL Height:", a.Height())

	logger.Debug("trees built",
		slog.Int("keys", a.Len()),
		slog.Int("bst_height", b.Height()),
		slog.Int("avl_height", a.Height()),
	)

	return nil
}

func graphs(p *printer, g *graph.Graph, start int, logger *slog.Logger) error {
	p.println("Adj List:")
	for _, id := range g.NodeIDs() {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("report: adjacency: %w", err)
		}
		p.println(strconv.Itoa(id)+":", nbrs)
	}

	p.println("Adj Matrix:")
	for _, row := range g.Matrix() {
		p.println(row)
	}

	br, err := bfs.BFS(g, start)
	if err != nil {
		return fmt.Errorf("report: bfs: %w", err)
	}
	p.println("BFS:", br.Order)

	dr, err := dfs.DFS(g, start)
	if err != nil {
		return fmt.Errorf("report: dfs: %w", err)
	}
	p.println("DFS:", dr.Order)

	dist, _, err := dijkstra.Dijkstra(g, start)
	if err != nil {
		return fmt.Errorf("report: dijkstra: %w", err)
	}
	p.println("Dijkstra:", formatDistances(g.NodeIDs(), dist))

	mst, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return fmt.Errorf("report: kruskal: %w", err)
	}
	p.println("MST:", mst)
	p.println("MST Weight:", total)

	logger.Debug("graph algorithms done",
		slog.Int("start", start),
		slog.Int("bfs_visited", len(br.Order)),
		slog.Int("dfs_pushes", dr.Pushes),
		slog.Int("mst_edges", len(mst)),
		slog.Int64("mst_weight", total),
	)

	return nil
}

// formatDistances renders dist as "{id: d, ...}" in node order.
func formatDistances(ids []int, dist map[int]int64) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, id := range ids {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d: %d", id, dist[id])
	}
	sb.WriteByte('}')

	return sb.String()
}

func expression(p *printer, tokens []string, logger *slog.Logger) error {
	t, err := expr.Build(tokens)
	if err != nil {
		return fmt.Errorf("report: expression: %w", err)
	}
	v, err := t.Eval()
	if err != nil {
		return fmt.Errorf("report: expression: %w", err)
	}
	p.println("Expr:", t)
	p.println("Expr Value:", strconv.FormatFloat(v, 'g', -1, 64))

	logger.Debug("expression evaluated",
		slog.Int("tokens", len(tokens)),
		slog.Float64("value", v),
	)

	return nil
}
