package metadata

// Canonicalize brings rec to its normal form in place:
//   - the record date becomes a YYYY-MM-DD string, read in UTC
//   - paper volume and number become strings
//   - legacy protein shapes collapse to {molecule_id_type, molecule_id}
//   - misplaced v1 initial.ligands/initial.solvents move to the ligand list
//   - empty optional collections become absent
//
// A date that cannot be parsed fails with a DateParseError before anything
// is modified.
func Canonicalize(rec Record) error {
	return rec.Canonicalize()
}

func canonicalDate(d Datelike, field string) (Datelike, error) {
	c, err := d.Canonical()
	if err != nil {
		return d, &DateParseError{Field: field, Value: d.String(), Err: err}
	}
	return c, nil
}

func canonicalNumber(n *Numlike) *Numlike {
	if n == nil {
		return nil
	}
	c := n.Canonical()
	return &c
}

func (m *MetaV1) Canonicalize() error {
	date, err := canonicalDate(m.Initial.Date, "initial.date")
	if err != nil {
		return err
	}
	m.Initial.Date = date

	for i := range m.Papers {
		m.Papers[i].Volume = m.Papers[i].Volume.Canonical()
		m.Papers[i].Number = canonicalNumber(m.Papers[i].Number)
	}

	for i := range m.Proteins {
		m.Proteins[i].collapse()
	}

	for _, name := range m.Initial.Ligands {
		m.Ligands = append(m.Ligands, Ligand{Name: name})
	}
	for _, name := range m.Initial.Solvents {
		m.Ligands = append(m.Ligands, Ligand{Name: name})
	}
	m.Initial.Ligands = nil
	m.Initial.Solvents = nil

	m.AdditionalFiles = nilIfEmpty(m.AdditionalFiles)
	m.Proteins = nilIfEmpty(m.Proteins)
	m.Ligands = nilIfEmpty(m.Ligands)
	m.Solvents = nilIfEmpty(m.Solvents)
	m.Papers = nilIfEmpty(m.Papers)
	m.Contributors = nilIfEmpty(m.Contributors)
	m.SimulationPermissions = nilIfEmpty(m.SimulationPermissions)
	return nil
}

func (m *MetaLegacy) Canonicalize() error {
	date, err := canonicalDate(m.Initial.Date, "initial.date")
	if err != nil {
		return err
	}
	m.Initial.Date = date

	for i := range m.Papers {
		m.Papers[i].Volume = m.Papers[i].Volume.Canonical()
		m.Papers[i].Number = canonicalNumber(m.Papers[i].Number)
	}

	for i := range m.Proteins {
		m.Proteins[i].collapse()
	}

	m.AdditionalFiles = nilIfEmpty(m.AdditionalFiles)
	m.Proteins = nilIfEmpty(m.Proteins)
	m.Ligands = nilIfEmpty(m.Ligands)
	m.Solvents = nilIfEmpty(m.Solvents)
	m.Papers = nilIfEmpty(m.Papers)
	m.Contributors = nilIfEmpty(m.Contributors)
	m.SimulationPermissions = nilIfEmpty(m.SimulationPermissions)
	return nil
}

func (m *MetaV2) Canonicalize() error {
	date, err := canonicalDate(m.Date, "date")
	if err != nil {
		return err
	}
	m.Date = date

	for i := range m.Papers {
		p := &m.Papers[i]
		p.Volume = p.Volume.Canonical()
		p.Number = canonicalNumber(p.Number)
		if p.Primary != nil {
			if p.IsPrimary == nil {
				p.IsPrimary = p.Primary
			}
			p.Primary = nil
		}
	}

	for i := range m.Ligands {
		l := &m.Ligands[i]
		if l.Primary != nil {
			if l.IsPrimary == nil {
				l.IsPrimary = l.Primary
			}
			l.Primary = nil
		}
	}

	m.AdditionalFiles = nilIfEmpty(m.AdditionalFiles)
	m.Proteins = nilIfEmpty(m.Proteins)
	m.Ligands = nilIfEmpty(m.Ligands)
	m.Solvents = nilIfEmpty(m.Solvents)
	m.Papers = nilIfEmpty(m.Papers)
	m.Contributors = nilIfEmpty(m.Contributors)
	m.SimulationPermissions = nilIfEmpty(m.SimulationPermissions)
	return nil
}

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}
