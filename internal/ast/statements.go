package ast

import "github.com/vexlang/vexls/internal/lexer"

// Block is a `begin ... end` statement sequence. Block endings never rely
// on dedentation: a Block always terminates at an explicit `end`, so
// EndLine is always meaningful.
type Block struct {
	P       lexer.Position
	Stmts   []Stmt
	EndLine int
}

func (b *Block) Pos() lexer.Position { return b.P }
func (b *Block) stmtNode()           {}

// AssignStmt is `Target := Value;`.
type AssignStmt struct {
	P      lexer.Position
	Target Expr
	Value  Expr
}

func (s *AssignStmt) Pos() lexer.Position { return s.P }
func (s *AssignStmt) stmtNode()           {}

// ExprStmt wraps an expression used in statement position (a bare call).
type ExprStmt struct {
	P    lexer.Position
	Expr Expr
}

func (s *ExprStmt) Pos() lexer.Position { return s.P }
func (s *ExprStmt) stmtNode()           {}

// IfStmt is `if Cond then Then [else Else]`.
type IfStmt struct {
	P    lexer.Position
	Cond Expr
	Then Stmt
	Else Stmt // nil when there is no else branch
}

func (s *IfStmt) Pos() lexer.Position { return s.P }
func (s *IfStmt) stmtNode()           {}

// WhileStmt is `while Cond do Body`.
type WhileStmt struct {
	P    lexer.Position
	Cond Expr
	Body Stmt
}

func (s *WhileStmt) Pos() lexer.Position { return s.P }
func (s *WhileStmt) stmtNode()           {}

// ForStmt is `for LoopVar := Start to|downto End [step Step] do Body`. The
// loop variable introduces a scope that covers only Body.
type ForStmt struct {
	P       lexer.Position
	LoopVar NamePos
	Start   Expr
	End     Expr
	Down    bool
	Step    Expr // nil when no explicit step
	Body    Stmt
}

func (s *ForStmt) Pos() lexer.Position { return s.P }
func (s *ForStmt) stmtNode()           {}

// RepeatStmt is `repeat Stmts until Cond`.
type RepeatStmt struct {
	P       lexer.Position
	Stmts   []Stmt
	Cond    Expr
	EndLine int
}

func (s *RepeatStmt) Pos() lexer.Position { return s.P }
func (s *RepeatStmt) stmtNode()           {}

// CaseValue is one comma-separated entry in a case branch: either a single
// constant expression, or a range Low..High.
type CaseValue struct {
	Single   Expr // nil when this is a range
	RangeLow Expr
	RangeHi  Expr
}

// CaseBranch is `Values: Body`.
type CaseBranch struct {
	P      lexer.Position
	Values []CaseValue
	Body   Stmt
}

// CaseStmt is `case Selector of Branches [else Else] end`.
type CaseStmt struct {
	P        lexer.Position
	Selector Expr
	Branches []*CaseBranch
	Else     []Stmt
	EndLine  int
}

func (s *CaseStmt) Pos() lexer.Position { return s.P }
func (s *CaseStmt) stmtNode()           {}

// ExceptBranch is one `on E: ExceptionType do Body` clause.
type ExceptBranch struct {
	P             lexer.Position
	ExceptionType NamePos
	VarName       *NamePos // nil when the exception value is not bound
	Body          []Stmt
}

// TryStmt is `try Stmts except ExceptBranches [else ExceptElse] finally
// Finally end`. Except and Finally are each optional, but at least one
// must be present for the construct to be well-formed (checked by the
// parser, not the AST).
type TryStmt struct {
	P              lexer.Position
	Stmts          []Stmt
	ExceptBranches []*ExceptBranch
	ExceptElse     []Stmt
	HasExcept      bool
	Finally        []Stmt
	HasFinally     bool
	EndLine        int
}

func (s *TryStmt) Pos() lexer.Position { return s.P }
func (s *TryStmt) stmtNode()           {}

// ReturnStmt is `return [Value];`.
type ReturnStmt struct {
	P     lexer.Position
	Value Expr // nil for a bare return
}

func (s *ReturnStmt) Pos() lexer.Position { return s.P }
func (s *ReturnStmt) stmtNode()           {}

// NewStmt is `new(Target)` or `new(Target as T)`.
type NewStmt struct {
	P      lexer.Position
	Target Expr
	AsType *NamePos // nil for plain new(Target)
}

func (s *NewStmt) Pos() lexer.Position { return s.P }
func (s *NewStmt) stmtNode()           {}

// DisposeStmt is `dispose(Target)`.
type DisposeStmt struct {
	P      lexer.Position
	Target Expr
}

func (s *DisposeStmt) Pos() lexer.Position { return s.P }
func (s *DisposeStmt) stmtNode()           {}

// SetLengthStmt is `setlength(Target, Length)`.
type SetLengthStmt struct {
	P      lexer.Position
	Target Expr
	Length Expr
}

func (s *SetLengthStmt) Pos() lexer.Position { return s.P }
func (s *SetLengthStmt) stmtNode()           {}
