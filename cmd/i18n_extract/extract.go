// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// trArgs describes where the Tr family keeps its constant arguments.
type trArgs struct {
	ctx, id, plural int // argument positions, -1 when absent
}

var trFuncs = map[string]trArgs{
	"Tr":  {ctx: -1, id: 1, plural: -1},
	"TrC": {ctx: 1, id: 2, plural: -1},
	"TrN": {ctx: -1, id: 1, plural: 2},
}

// extractor collects msgid references from the packages it inspects.
type extractor struct {
	refs        map[key][]ref
	projectRoot string
	fset        *token.FileSet
	info        *types.Info
	i18nPkgs    map[string]struct{}
}

// extractRefs finds every msgid passed to the Tr family and every constant
// converted, explicitly or implicitly, to i18n.MsgKey.
func extractRefs(pkgs []*packages.Package, projectRoot string, i18nPkgs map[string]struct{}) map[key][]ref {
	refs := map[key][]ref{}

	for _, p := range pkgs {
		if p.TypesInfo == nil {
			continue
		}

		e := &extractor{
			refs:        refs,
			projectRoot: projectRoot,
			fset:        p.Fset,
			info:        p.TypesInfo,
			i18nPkgs:    i18nPkgs,
		}

		for _, f := range p.Syntax {
			ast.Inspect(f, func(n ast.Node) bool {
				switch x := n.(type) {
				case *ast.CallExpr:
					e.call(x)
				case *ast.CompositeLit:
					e.structLit(x)
				}

				return true
			})
		}
	}

	return refs
}

// findI18nPkgPaths returns the paths of packages named i18n that define a
// MsgKey string type.
func findI18nPkgPaths(pkgs []*packages.Package) map[string]struct{} {
	out := make(map[string]struct{})

	for _, p := range pkgs {
		if p.Name != "i18n" || p.Types == nil {
			continue
		}

		tn, ok := p.Types.Scope().Lookup("MsgKey").(*types.TypeName)
		if !ok {
			continue
		}

		if basic, ok := tn.Type().Underlying().(*types.Basic); ok && basic.Kind() == types.String {
			out[p.PkgPath] = struct{}{}
		}
	}

	return out
}

// constString evaluates expr to a constant string if possible.
func (e *extractor) constString(expr ast.Expr) (string, bool) {
	tv, ok := e.info.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}

	return constant.StringVal(tv.Value), true
}

// isMsgKey reports whether t is i18n.MsgKey.
func (e *extractor) isMsgKey(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	if obj == nil || obj.Pkg() == nil || obj.Name() != "MsgKey" {
		return false
	}

	_, ok = e.i18nPkgs[obj.Pkg().Path()]

	return ok
}

// structLit records constants assigned to MsgKey fields, as in
// checks.Meta{Name: "Not translated"}.
func (e *extractor) structLit(x *ast.CompositeLit) {
	tv, ok := e.info.Types[x]
	if !ok || tv.Type == nil {
		return
	}

	st, ok := tv.Type.Underlying().(*types.Struct)
	if !ok {
		return
	}

	for i, elt := range x.Elts {
		var (
			field types.Type
			value = elt
		)

		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			id, ok := kv.Key.(*ast.Ident)
			if !ok {
				continue
			}

			for j := range st.NumFields() {
				if st.Field(j).Name() == id.Name {
					field = st.Field(j).Type()
				}
			}

			value = kv.Value
		} else if i < st.NumFields() {
			field = st.Field(i).Type()
		}

		if field != nil && e.isMsgKey(field) {
			e.addConst(value)
		}
	}
}

// call handles MsgKey conversions, the Tr family, and any other call that
// passes a constant for a MsgKey parameter.
func (e *extractor) call(x *ast.CallExpr) {
	if tv, ok := e.info.Types[x.Fun]; ok && tv.IsType() {
		if len(x.Args) == 1 && e.isMsgKey(tv.Type) {
			e.addConst(x.Args[0])
		}

		return
	}

	if sel, ok := x.Fun.(*ast.SelectorExpr); ok {
		if fn, ok := e.info.Uses[sel.Sel].(*types.Func); ok && fn.Pkg() != nil {
			if _, ours := e.i18nPkgs[fn.Pkg().Path()]; ours {
				if args, ok := trFuncs[fn.Name()]; ok {
					e.trCall(x, args)

					return
				}
			}
		}
	}

	sig, ok := e.info.TypeOf(x.Fun).(*types.Signature)
	if !ok || sig.Params().Len() == 0 {
		return
	}

	params := sig.Params()
	last := params.Len() - 1

	for i, arg := range x.Args {
		var pt types.Type

		switch {
		case sig.Variadic() && i >= last:
			if x.Ellipsis != token.NoPos {
				continue
			}

			pt = params.At(last).Type().(*types.Slice).Elem()
		case i <= last:
			pt = params.At(i).Type()
		default:
			return
		}

		if e.isMsgKey(pt) {
			e.addConst(arg)
		}
	}
}

func (e *extractor) trCall(x *ast.CallExpr, args trArgs) {
	at := func(i int) (string, bool) {
		if i < 0 {
			return "", true
		}

		if i >= len(x.Args) {
			return "", false
		}

		return e.constString(x.Args[i])
	}

	ctx, ok1 := at(args.ctx)
	id, ok2 := at(args.id)
	plural, ok3 := at(args.plural)

	if ok1 && ok2 && ok3 {
		e.addRef(x.Args[args.id].Pos(), id, ctx, plural)
	}
}

func (e *extractor) addConst(expr ast.Expr) {
	if msg, ok := e.constString(expr); ok {
		e.addRef(expr.Pos(), msg, "", "")
	}
}

// addRef records a reference to a msgid, with the file path relative to the
// project root.
func (e *extractor) addRef(pos token.Pos, msg, ctx, plural string) {
	p := e.fset.Position(pos)

	file := p.Filename
	if rel, err := filepath.Rel(e.projectRoot, file); err == nil {
		file = rel
	}

	k := key{ctx: ctx, id: msg, plural: plural}

	e.refs[k] = append(e.refs[k], ref{file: filepath.ToSlash(file), line: p.Line})
}
