package ast

// Walker is invoked once per node during a Walk, before that node's
// children are visited. Returning false skips the node's children.
type Walker func(Node) bool

// walkVisitor adapts a Walker function into the Visitor interface so
// Walk can reuse every node's existing Accept method instead of a
// parallel type switch, grounded on original_source/fons/radix-rs/src/
// syntax/visit.rs (SPEC_FULL.md supplemented feature #5) and the
// teacher's own Accept(v Visitor) convention.
type walkVisitor struct {
	BaseVisitor
	fn Walker
}

// Walk performs a pre-order traversal of n and its descendants, calling
// fn on every node reached. Used by the driver's "check --stats" node
// accounting and by tree-shaped property tests; the semantic passes walk
// the lowered HIR with their own typed traversals instead.
func Walk(n Node, fn Walker) {
	if n == nil {
		return
	}
	wv := &walkVisitor{fn: fn}
	n.Accept(wv)
}

func (w *walkVisitor) VisitProgram(p *Program) {
	if !w.fn(p) {
		return
	}
	if p.Package != nil {
		Walk(p.Package, w.fn)
	}
	for _, imp := range p.Imports {
		Walk(imp, w.fn)
	}
	for _, s := range p.Statements {
		Walk(s, w.fn)
	}
}

func (w *walkVisitor) VisitPackageDecl(d *PackageDecl) {
	if !w.fn(d) {
		return
	}
	Walk(d.Name, w.fn)
}

func (w *walkVisitor) VisitImportDecl(d *ImportDecl) {
	if !w.fn(d) {
		return
	}
	Walk(d.Path, w.fn)
}

func (w *walkVisitor) VisitVarDecl(d *VarDecl) {
	if !w.fn(d) {
		return
	}
	if d.Value != nil {
		Walk(d.Value, w.fn)
	}
}

func (w *walkVisitor) VisitFunctionDecl(d *FunctionDecl) {
	if !w.fn(d) {
		return
	}
	if d.Body != nil {
		Walk(d.Body, w.fn)
	}
}

func (w *walkVisitor) VisitStructDecl(d *StructDecl) {
	if !w.fn(d) {
		return
	}
	for _, m := range d.Methods {
		Walk(m, w.fn)
	}
}

func (w *walkVisitor) VisitEnumDecl(d *EnumDecl) { w.fn(d) }

func (w *walkVisitor) VisitInterfaceDecl(d *InterfaceDecl) { w.fn(d) }

func (w *walkVisitor) VisitTypeAliasDecl(d *TypeAliasDecl) { w.fn(d) }

func (w *walkVisitor) VisitEntryDecl(d *EntryDecl) {
	if !w.fn(d) {
		return
	}
	Walk(d.Body, w.fn)
}

func (w *walkVisitor) VisitBlockStmt(s *BlockStmt) {
	if !w.fn(s) {
		return
	}
	for _, st := range s.Statements {
		Walk(st, w.fn)
	}
}

func (w *walkVisitor) VisitExprStmt(s *ExprStmt) {
	if !w.fn(s) {
		return
	}
	Walk(s.Expr, w.fn)
}

func (w *walkVisitor) VisitReturnStmt(s *ReturnStmt) {
	if !w.fn(s) {
		return
	}
	if s.Value != nil {
		Walk(s.Value, w.fn)
	}
}

func (w *walkVisitor) VisitBreakStmt(s *BreakStmt)       { w.fn(s) }
func (w *walkVisitor) VisitContinueStmt(s *ContinueStmt) { w.fn(s) }

func (w *walkVisitor) VisitThrowStmt(s *ThrowStmt) {
	if !w.fn(s) {
		return
	}
	Walk(s.Value, w.fn)
}

func (w *walkVisitor) VisitIfStmt(s *IfStmt) {
	if !w.fn(s) {
		return
	}
	Walk(s.Cond, w.fn)
	Walk(s.Then, w.fn)
	if s.Else != nil {
		Walk(s.Else, w.fn)
	}
}

func (w *walkVisitor) VisitWhileStmt(s *WhileStmt) {
	if !w.fn(s) {
		return
	}
	Walk(s.Cond, w.fn)
	Walk(s.Body, w.fn)
}

func (w *walkVisitor) VisitForInStmt(s *ForInStmt) {
	if !w.fn(s) {
		return
	}
	Walk(s.Iter, w.fn)
	Walk(s.Body, w.fn)
}

func (w *walkVisitor) VisitMatchExpr(s *MatchExpr) {
	if !w.fn(s) {
		return
	}
	for _, subj := range s.Subjects {
		Walk(subj, w.fn)
	}
	for _, arm := range s.Arms {
		if arm.Guard != nil {
			Walk(arm.Guard, w.fn)
		}
		Walk(arm.Body, w.fn)
	}
	if s.DefaultArm != nil {
		Walk(s.DefaultArm, w.fn)
	}
}

func (w *walkVisitor) VisitDirectiveStmt(s *DirectiveStmt) { w.fn(s) }

func (w *walkVisitor) VisitBinaryExpr(e *BinaryExpr) {
	if !w.fn(e) {
		return
	}
	Walk(e.Left, w.fn)
	Walk(e.Right, w.fn)
}

func (w *walkVisitor) VisitUnaryExpr(e *UnaryExpr) {
	if !w.fn(e) {
		return
	}
	Walk(e.Operand, w.fn)
}

func (w *walkVisitor) VisitTernaryExpr(e *TernaryExpr) {
	if !w.fn(e) {
		return
	}
	Walk(e.Cond, w.fn)
	Walk(e.Then, w.fn)
	Walk(e.Else, w.fn)
}

func (w *walkVisitor) VisitRangeExpr(e *RangeExpr) {
	if !w.fn(e) {
		return
	}
	if e.Start != nil {
		Walk(e.Start, w.fn)
	}
	if e.End != nil {
		Walk(e.End, w.fn)
	}
	if e.Step != nil {
		Walk(e.Step, w.fn)
	}
}

func (w *walkVisitor) VisitCallExpr(e *CallExpr) {
	if !w.fn(e) {
		return
	}
	Walk(e.Callee, w.fn)
	for _, a := range e.Args {
		Walk(a.Value, w.fn)
	}
}

func (w *walkVisitor) VisitMemberExpr(e *MemberExpr) {
	if !w.fn(e) {
		return
	}
	Walk(e.Object, w.fn)
}

func (w *walkVisitor) VisitIndexExpr(e *IndexExpr) {
	if !w.fn(e) {
		return
	}
	Walk(e.Object, w.fn)
	Walk(e.Index, w.fn)
}

func (w *walkVisitor) VisitChainExpr(e *ChainExpr) {
	if !w.fn(e) {
		return
	}
	Walk(e.Object, w.fn)
	if e.Index != nil {
		Walk(e.Index, w.fn)
	}
	for _, a := range e.Args {
		Walk(a.Value, w.fn)
	}
}

func (w *walkVisitor) VisitCastExpr(e *CastExpr) {
	if !w.fn(e) {
		return
	}
	Walk(e.Value, w.fn)
}

func (w *walkVisitor) VisitAssignExpr(e *AssignExpr) {
	if !w.fn(e) {
		return
	}
	Walk(e.Target, w.fn)
	Walk(e.Value, w.fn)
}

func (w *walkVisitor) VisitFunctionLiteral(e *FunctionLiteral) {
	if !w.fn(e) {
		return
	}
	Walk(e.Body, w.fn)
}

func (w *walkVisitor) VisitIdentifier(e *Identifier)           { w.fn(e) }
func (w *walkVisitor) VisitIntegerLiteral(e *IntegerLiteral)   { w.fn(e) }
func (w *walkVisitor) VisitFloatLiteral(e *FloatLiteral)       { w.fn(e) }
func (w *walkVisitor) VisitBigIntLiteral(e *BigIntLiteral)     { w.fn(e) }
func (w *walkVisitor) VisitBooleanLiteral(e *BooleanLiteral)   { w.fn(e) }
func (w *walkVisitor) VisitNilLiteral(e *NilLiteral)           { w.fn(e) }
func (w *walkVisitor) VisitStringLiteral(e *StringLiteral)     { w.fn(e) }

func (w *walkVisitor) VisitTemplateStringLiteral(e *TemplateStringLiteral) {
	if !w.fn(e) {
		return
	}
	for _, p := range e.Parts {
		Walk(p, w.fn)
	}
}

func (w *walkVisitor) VisitListLiteral(e *ListLiteral) {
	if !w.fn(e) {
		return
	}
	for _, el := range e.Elements {
		Walk(el, w.fn)
	}
}

func (w *walkVisitor) VisitSetLiteral(e *SetLiteral) {
	if !w.fn(e) {
		return
	}
	for _, el := range e.Elements {
		Walk(el, w.fn)
	}
}

func (w *walkVisitor) VisitTupleLiteral(e *TupleLiteral) {
	if !w.fn(e) {
		return
	}
	for _, el := range e.Elements {
		Walk(el, w.fn)
	}
}

func (w *walkVisitor) VisitMapLiteral(e *MapLiteral) {
	if !w.fn(e) {
		return
	}
	for _, p := range e.Entries {
		Walk(p.Key, w.fn)
		Walk(p.Value, w.fn)
	}
}

func (w *walkVisitor) VisitRecordLiteral(e *RecordLiteral) {
	if !w.fn(e) {
		return
	}
	for _, v := range e.Fields {
		Walk(v, w.fn)
	}
}

func (w *walkVisitor) VisitExportSpec(*ExportSpec)       {}
func (w *walkVisitor) VisitNamedType(*NamedType)         {}
func (w *walkVisitor) VisitArrayType(*ArrayType)         {}
func (w *walkVisitor) VisitFuncType(*FuncType)           {}
func (w *walkVisitor) VisitOptionType(*OptionType)       {}
func (w *walkVisitor) VisitRefType(*RefType)             {}
func (w *walkVisitor) VisitIdentPattern(*IdentPattern)       {}
func (w *walkVisitor) VisitWildcardPattern(*WildcardPattern) {}
func (w *walkVisitor) VisitLiteralPattern(*LiteralPattern)   {}
func (w *walkVisitor) VisitPathPattern(*PathPattern)         {}
func (w *walkVisitor) VisitTuplePattern(*TuplePattern)       {}
