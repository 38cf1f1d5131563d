package query

import (
	"github.com/vexlang/vexls/internal/resolver"
	"github.com/vexlang/vexls/internal/symbols"
)

// References collects every recorded name-reference position across every
// module in prog that resolved to word's symbol, plus that symbol's own
// declaration site. Because Program.Uses records a position for every
// captured name reference — including, per the resolver's
// self-registration, every declaration's own name — a plain scan of the
// map already finds method binders, parent types, routine-return types,
// cast targets, inherited call targets, and loop variables without any
// special-casing here.
func References(prog *resolver.Program, file string, word Word) []Location {
	target, ok := prog.UseAt(file, word.Start)
	if !ok {
		return nil
	}
	return collectUsesOf(prog, target, nil)
}

// DocumentHighlight is References narrowed to a single file, for the
// same-file-only highlight request.
func DocumentHighlight(prog *resolver.Program, file string, word Word) []Location {
	target, ok := prog.UseAt(file, word.Start)
	if !ok {
		return nil
	}
	return collectUsesOf(prog, target, &file)
}

// collectUsesOf walks prog.Uses for every entry whose resolved symbol is
// target, optionally restricted to onlyFile, and returns one Location per
// hit sorted by (file, line, column) so callers get deterministic output.
func collectUsesOf(prog *resolver.Program, target *symbols.Symbol, onlyFile *string) []Location {
	var out []Location
	for ref, sym := range prog.Uses {
		if sym != target {
			continue
		}
		if onlyFile != nil && ref.File != *onlyFile {
			continue
		}
		end := ref.Pos.Column
		for range target.Name {
			end++
		}
		out = append(out, Location{
			File: ref.File,
			Range: Range{
				Start: ref.Pos,
				End:   positionWithColumn(ref.Pos, end),
			},
		})
	}
	sortLocations(out)
	return out
}

func sortLocations(locs []Location) {
	for i := 1; i < len(locs); i++ {
		for j := i; j > 0 && locationLess(locs[j], locs[j-1]); j-- {
			locs[j], locs[j-1] = locs[j-1], locs[j]
		}
	}
}

func locationLess(a, b Location) bool {
	if a.File != b.File {
		return a.File < b.File
	}
	if a.Range.Start.Line != b.Range.Start.Line {
		return a.Range.Start.Line < b.Range.Start.Line
	}
	return a.Range.Start.Column < b.Range.Start.Column
}
