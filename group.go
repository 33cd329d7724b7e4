package tasrif

// Group reshapes a flat paradigm into person/gender × number cells.
// Every cell keeps its source rows separate; in particular the two
// 2nd-person dual rows stay distinct even though they share a pronoun.
// Aggregation policy belongs to the presentation layer.
func Group(forms []Form) map[PersonGender]map[Number][]string {
	out := make(map[PersonGender]map[Number][]string)
	for _, f := range forms {
		spec := f.Spec()
		cells, ok := out[spec.PersonGender]
		if !ok {
			cells = make(map[Number][]string)
			out[spec.PersonGender] = cells
		}
		cells[spec.Number] = append(cells[spec.Number], f.Surface)
	}
	return out
}

// GroupJoined is Group with each cell's rows concatenated using the
// caller's joiner, for presentation variants that merge rows sharing a
// cell.
func GroupJoined(forms []Form, joiner string) map[PersonGender]map[Number]string {
	out := make(map[PersonGender]map[Number]string)
	for pg, cells := range Group(forms) {
		joined := make(map[Number]string, len(cells))
		for n, ss := range cells {
			s := ss[0]
			for _, extra := range ss[1:] {
				s += joiner + extra
			}
			joined[n] = s
		}
		out[pg] = joined
	}
	return out
}
