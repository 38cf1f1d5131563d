package ast

// Walk performs a preorder traversal of node and its children, calling
// visit on each one (node itself first). If visit returns false, Walk does
// not descend into that node's children.
//
// This is the sum type's one visitor: every node kind is matched
// exhaustively below — a closed sum type with visitors as functions over
// it, in place of open tagged dispatch. NamePos values — every captured
// name reference in the tree — are visited as leaf nodes in their own
// right, since NamePos implements Node via its value-receiver Pos method;
// callers that care about name references type-switch for NamePos
// specifically.
func Walk(node Node, visit func(Node) bool) {
	if node == nil || !visit(node) {
		return
	}

	switch n := node.(type) {
	case *Module:
		Walk(n.Name, visit)
		for _, imp := range n.Imports {
			Walk(imp, visit)
		}
		for _, d := range n.Consts {
			Walk(d, visit)
		}
		for _, d := range n.Types {
			Walk(d, visit)
		}
		for _, d := range n.Vars {
			Walk(d, visit)
		}
		for _, d := range n.Routines {
			Walk(d, visit)
		}
		for _, d := range n.Tests {
			Walk(d, visit)
		}
		if n.Body != nil {
			Walk(n.Body, visit)
		}

	case *ConstDecl:
		Walk(n.Name, visit)
		if n.Type != nil {
			Walk(n.Type, visit)
		}
		if n.Value != nil {
			Walk(n.Value, visit)
		}

	case *VarDecl:
		Walk(n.Name, visit)
		if n.Type != nil {
			Walk(n.Type, visit)
		}

	case *TypeDecl:
		Walk(n.Name, visit)
		if n.Type != nil {
			Walk(n.Type, visit)
		}

	case *RoutineDecl:
		Walk(n.Name, visit)
		if n.ReceiverType != nil {
			Walk(*n.ReceiverType, visit)
		}
		for _, p := range n.Params {
			Walk(p, visit)
		}
		if n.ReturnType != nil {
			Walk(*n.ReturnType, visit)
		}
		for _, d := range n.LocalConsts {
			Walk(d, visit)
		}
		for _, d := range n.LocalVars {
			Walk(d, visit)
		}
		if n.Body != nil {
			Walk(n.Body, visit)
		}

	case *TestDecl:
		Walk(n.Name, visit)
		if n.Body != nil {
			Walk(n.Body, visit)
		}

	case *FieldDecl:
		Walk(n.Name, visit)
		if n.Type != nil {
			Walk(n.Type, visit)
		}

	case *Param:
		Walk(n.Name, visit)
		if n.Type != nil {
			Walk(n.Type, visit)
		}

	case *NamedType:
		Walk(n.Name, visit)

	case *RecordType:
		if n.Parent != nil {
			Walk(*n.Parent, visit)
		}
		for _, f := range n.Fields {
			Walk(f, visit)
		}

	case *ArrayType:
		if n.LowBound != nil {
			Walk(n.LowBound, visit)
		}
		if n.HighBound != nil {
			Walk(n.HighBound, visit)
		}
		Walk(n.Elem, visit)

	case *SetType:
		Walk(n.Elem, visit)

	case *PointerType:
		Walk(n.Elem, visit)

	case *RoutineType:
		for _, p := range n.Params {
			Walk(p, visit)
		}
		if n.ReturnType != nil {
			Walk(*n.ReturnType, visit)
		}

	case *Block:
		for _, s := range n.Stmts {
			Walk(s, visit)
		}

	case *AssignStmt:
		Walk(n.Target, visit)
		Walk(n.Value, visit)

	case *ExprStmt:
		Walk(n.Expr, visit)

	case *IfStmt:
		Walk(n.Cond, visit)
		Walk(n.Then, visit)
		if n.Else != nil {
			Walk(n.Else, visit)
		}

	case *WhileStmt:
		Walk(n.Cond, visit)
		Walk(n.Body, visit)

	case *ForStmt:
		Walk(n.LoopVar, visit)
		Walk(n.Start, visit)
		Walk(n.End, visit)
		if n.Step != nil {
			Walk(n.Step, visit)
		}
		Walk(n.Body, visit)

	case *RepeatStmt:
		for _, s := range n.Stmts {
			Walk(s, visit)
		}
		Walk(n.Cond, visit)

	case *CaseStmt:
		Walk(n.Selector, visit)
		for _, b := range n.Branches {
			for _, v := range b.Values {
				if v.Single != nil {
					Walk(v.Single, visit)
				} else {
					Walk(v.RangeLow, visit)
					Walk(v.RangeHi, visit)
				}
			}
			Walk(b.Body, visit)
		}
		for _, s := range n.Else {
			Walk(s, visit)
		}

	case *TryStmt:
		for _, s := range n.Stmts {
			Walk(s, visit)
		}
		for _, eb := range n.ExceptBranches {
			Walk(eb.ExceptionType, visit)
			if eb.VarName != nil {
				Walk(*eb.VarName, visit)
			}
			for _, s := range eb.Body {
				Walk(s, visit)
			}
		}
		for _, s := range n.ExceptElse {
			Walk(s, visit)
		}
		for _, s := range n.Finally {
			Walk(s, visit)
		}

	case *ReturnStmt:
		if n.Value != nil {
			Walk(n.Value, visit)
		}

	case *NewStmt:
		Walk(n.Target, visit)
		if n.AsType != nil {
			Walk(*n.AsType, visit)
		}

	case *DisposeStmt:
		Walk(n.Target, visit)

	case *SetLengthStmt:
		Walk(n.Target, visit)
		Walk(n.Length, visit)

	case *Identifier:
		Walk(n.Name, visit)

	case *QualifiedIdentifier:
		Walk(n.Module, visit)
		Walk(n.Name, visit)

	case *BinaryExpr:
		Walk(n.Left, visit)
		Walk(n.Right, visit)

	case *UnaryExpr:
		Walk(n.Operand, visit)

	case *CallExpr:
		if n.Qualifier != nil {
			Walk(*n.Qualifier, visit)
		}
		if n.Receiver != nil {
			Walk(n.Receiver, visit)
		}
		Walk(n.Callee, visit)
		for _, a := range n.Args {
			Walk(a, visit)
		}

	case *FieldAccess:
		Walk(n.Receiver, visit)
		Walk(n.Field, visit)

	case *IndexExpr:
		Walk(n.Receiver, visit)
		for _, idx := range n.Indices {
			Walk(idx, visit)
		}

	case *DerefExpr:
		Walk(n.Operand, visit)

	case *RangeExpr:
		Walk(n.Low, visit)
		Walk(n.High, visit)

	case *SetLiteral:
		for _, el := range n.Elements {
			Walk(el, visit)
		}

	case *CastExpr:
		Walk(n.Operand, visit)
		Walk(n.Target, visit)

	case *TypeTestExpr:
		Walk(n.Operand, visit)
		Walk(n.Target, visit)

	case *InheritedCall:
		Walk(n.Method, visit)
		for _, a := range n.Args {
			Walk(a, visit)
		}

	case NamePos, *IntLiteral, *FloatLiteral, *StringLiteral, *CharLiteral,
		*BoolLiteral, *NilLiteral:
		// Leaves: no children beyond what was already visited above.
	}
}
