// Package lockcheck defines an analyzer that verifies lock acquisitions
// against the declared lock-order relation before the program runs.
//
// The analyzer collects the relation edges declared through
// lockorder.Declare and lockorder.DeclareTransitive, exports them as package
// facts, and reports every Lock/WithLock (and the read/write variants) call
// whose instantiated held and requested levels lack a declared edge.
//
// Edges are visible to the analyzer if they are declared in the package under
// analysis or in any package it (transitively) imports. Edges declared in
// unrelated packages of the final binary are not, so a program that splits
// declarations away from acquisition sites may see false positives; the
// runtime check in the root package has no such blind spot.
package lockcheck

import (
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const corePkg = "github.com/ezraisw/lockorder"

var Analyzer = &analysis.Analyzer{
	Name:      "lockcheck",
	Doc:       "check lock acquisitions against the declared lock-order relation",
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	FactTypes: []analysis.Fact{(*declaredEdges)(nil)},
	Run:       run,
}

// edge is one declared "Before before After" pair, with levels keyed by their
// fully qualified type strings.
type edge struct {
	Before, After string
}

// declaredEdges is the package fact carrying the edges a package declares.
type declaredEdges struct {
	Edges []edge
}

func (*declaredEdges) AFact() {}

func (f *declaredEdges) String() string {
	return fmt.Sprintf("declares %d lock-order edges", len(f.Edges))
}

// acquisitionFuncs maps the acquisition entry points to the positions of the
// held level (L) and requested level (N) in their type argument lists.
var acquisitionFuncs = map[string]struct{ held, requested int }{
	"Lock":          {0, 1},
	"WithLock":      {0, 1},
	"ReadLock":      {0, 1},
	"WithReadLock":  {0, 1},
	"WriteLock":     {0, 1},
	"WithWriteLock": {0, 1},
}

func run(pass *analysis.Pass) (any, error) {
	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	edges := map[edge]bool{}
	for _, pf := range pass.AllPackageFacts() {
		if f, ok := pf.Fact.(*declaredEdges); ok {
			for _, e := range f.Edges {
				edges[e] = true
			}
		}
	}

	filter := []ast.Node{(*ast.CallExpr)(nil)}

	// First pass: gather the edges this package declares, so declaration and
	// acquisition order within the package does not matter.
	var local []edge
	ins.Preorder(filter, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		fn, targs := calleeInstance(pass, call)
		if fn == nil || fn.Pkg() == nil || fn.Pkg().Path() != corePkg {
			return
		}

		switch fn.Name() {
		case "Declare":
			if targs.Len() == 2 {
				local = append(local, edge{typeKey(targs.At(0)), typeKey(targs.At(1))})
			}
		case "DeclareTransitive":
			if targs.Len() == 3 {
				local = append(local, edge{typeKey(targs.At(0)), typeKey(targs.At(2))})
			}
		}
	})
	for _, e := range local {
		edges[e] = true
	}
	if len(local) > 0 {
		pass.ExportPackageFact(&declaredEdges{Edges: local})
	}

	// Second pass: check every acquisition against the assembled relation.
	ins.Preorder(filter, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		fn, targs := calleeInstance(pass, call)
		if fn == nil || fn.Pkg() == nil || fn.Pkg().Path() != corePkg {
			return
		}

		pos, ok := acquisitionFuncs[fn.Name()]
		if !ok || targs == nil || targs.Len() < 2 {
			return
		}

		held := targs.At(pos.held)
		requested := targs.At(pos.requested)
		if types.Identical(held, requested) {
			pass.Reportf(call.Pos(), "cannot acquire %s while %s is already held: a lock level never precedes itself",
				typeKey(requested), typeKey(held))
			return
		}
		if !edges[edge{typeKey(held), typeKey(requested)}] {
			pass.Reportf(call.Pos(), "cannot acquire %s while %s is held: relation %q is not declared",
				typeKey(requested), typeKey(held), typeKey(held)+" before "+typeKey(requested))
		}
	})

	return nil, nil
}

// calleeInstance resolves the called function and the type arguments of its
// instantiation at this call site.
func calleeInstance(pass *analysis.Pass, call *ast.CallExpr) (*types.Func, *types.TypeList) {
	fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
	if !ok {
		return nil, nil
	}

	var id *ast.Ident
	switch f := astutil.Unparen(call.Fun).(type) {
	case *ast.Ident:
		id = f
	case *ast.SelectorExpr:
		id = f.Sel
	case *ast.IndexExpr:
		id = identOf(f.X)
	case *ast.IndexListExpr:
		id = identOf(f.X)
	}
	if id == nil {
		return fn, nil
	}

	inst, ok := pass.TypesInfo.Instances[id]
	if !ok {
		return fn, nil
	}
	return fn, inst.TypeArgs
}

func identOf(e ast.Expr) *ast.Ident {
	switch f := astutil.Unparen(e).(type) {
	case *ast.Ident:
		return f
	case *ast.SelectorExpr:
		return f.Sel
	}
	return nil
}

func typeKey(t types.Type) string {
	return types.TypeString(t, nil)
}
