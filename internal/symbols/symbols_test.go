package symbols

import "testing"

func TestScopeResolveIsCaseInsensitive(t *testing.T) {
	s := NewScope()
	s.Define(&Symbol{Name: "Count", Kind: KindVar})

	if _, ok := s.Resolve("count"); !ok {
		t.Fatalf("expected case-insensitive lookup to find Count")
	}
	if _, ok := s.Resolve("COUNT"); !ok {
		t.Fatalf("expected case-insensitive lookup to find Count")
	}
	sym, ok := s.Resolve("Count")
	if !ok || sym.Name != "Count" {
		t.Fatalf("expected Resolve to preserve original case, got %+v", sym)
	}
}

func TestScopeResolveWalksOuterChain(t *testing.T) {
	outer := NewScope()
	outer.Define(&Symbol{Name: "Global", Kind: KindVar})
	inner := NewEnclosedScope(outer)
	inner.Define(&Symbol{Name: "Local", Kind: KindVar})

	if _, ok := inner.Resolve("Global"); !ok {
		t.Fatalf("expected inner scope to resolve outer symbol")
	}
	if _, ok := outer.Resolve("Local"); ok {
		t.Fatalf("expected outer scope not to see inner symbol")
	}
	if _, ok := inner.ResolveLocal("Global"); ok {
		t.Fatalf("expected ResolveLocal not to walk outward")
	}
}

func TestScopeDefineOverloadBuildsSharedGroup(t *testing.T) {
	s := NewScope()
	s.DefineOverload(&Symbol{Name: "Add", Kind: KindRoutine})
	s.DefineOverload(&Symbol{Name: "Add", Kind: KindRoutine})
	s.DefineOverload(&Symbol{Name: "Add", Kind: KindRoutine})

	sym, ok := s.Resolve("Add")
	if !ok {
		t.Fatalf("expected Add to resolve")
	}
	if len(sym.Overloads) != 3 {
		t.Fatalf("expected overload group of 3, got %d", len(sym.Overloads))
	}
	for _, member := range sym.Overloads {
		if len(member.Overloads) != 3 {
			t.Fatalf("expected every member to see the full group, got %d", len(member.Overloads))
		}
	}
}

func TestScopeAllListsOnlyLocalSymbols(t *testing.T) {
	outer := NewScope()
	outer.Define(&Symbol{Name: "Global", Kind: KindVar})
	inner := NewEnclosedScope(outer)
	inner.Define(&Symbol{Name: "Local", Kind: KindVar})

	all := inner.All()
	if len(all) != 1 || all[0].Name != "Local" {
		t.Fatalf("expected All to return only Local, got %+v", all)
	}
}

func TestSymbolIsCallable(t *testing.T) {
	cases := []struct {
		kind Kind
		want bool
	}{
		{KindRoutine, true},
		{KindMethod, true},
		{KindVar, false},
		{KindType, false},
	}
	for _, c := range cases {
		sym := &Symbol{Kind: c.kind}
		if got := sym.IsCallable(); got != c.want {
			t.Errorf("Kind %v: IsCallable() = %v, want %v", c.kind, got, c.want)
		}
	}
}
